// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ProfileHandler      *handler.ProfileHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	profileHandler      *handler.ProfileHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		profileHandler:      params.ProfileHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/users")
	{
		// Public routes
		users.POST("", r.userHandler.Signup)
		users.POST("/login", r.userHandler.Login)
		users.GET("/:id/avatar", r.profileHandler.GetAvatar)

		// Session routes
		users.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
		users.POST("/logoutAll", r.userHandler.LogoutAll, r.authMiddleware.Authenticate)

		// Profile routes
		me := users.Group("/me")
		me.Use(r.authMiddleware.Authenticate)
		{
			me.GET("", r.profileHandler.GetMe)
			me.PATCH("", r.profileHandler.UpdateMe)
			me.DELETE("", r.profileHandler.DeleteMe)
			me.POST("/avatar", r.profileHandler.UploadAvatar)
			me.DELETE("/avatar", r.profileHandler.DeleteAvatar)
		}
	}
}
