package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/delivery/http/response"
	"roster/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// allowedUpdateFields is the closed set of properties a profile patch may touch.
var allowedUpdateFields = map[string]struct{}{
	"name":     {},
	"email":    {},
	"password": {},
	"age":      {},
}

// avatarFormField is the multipart form field carrying the image upload.
const avatarFormField = "avatar"

// maxAvatarUploadBytes bounds how much of an upload is read into memory.
// One byte past the 1 MiB limit is enough for the usecase to reject it.
const maxAvatarUploadBytes = 1 << 20

// ProfileHandler holds dependencies for the authenticated profile handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profileUC usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// GetMe returns the authenticated user's profile.
func (h *ProfileHandler) GetMe(c echo.Context) error {
	user, err := h.profileUC.GetProfile(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserResponse(user)}, "Profile retrieved successfully")
}

// UpdateMe applies a partial update to the authenticated user's profile.
// Any property outside the allowed set rejects the whole request.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Failed to read request body")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	var disallowed []string
	for field := range raw {
		if _, ok := allowedUpdateFields[field]; !ok {
			disallowed = append(disallowed, field)
		}
	}
	if len(disallowed) > 0 {
		return response.Error(c, http.StatusBadRequest, "DISALLOWED_FIELD",
			"Invalid updates", "disallowed fields: "+strings.Join(disallowed, ", "))
	}

	var input usecase.UpdateProfileInput
	if err := json.Unmarshal(body, &input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), deliverycontext.GetUserID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserResponse(user)}, "Profile updated successfully")
}

// DeleteMe removes the authenticated user's account.
func (h *ProfileHandler) DeleteMe(c echo.Context) error {
	if err := h.profileUC.DeleteAccount(c.Request().Context(), deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

// UploadAvatar stores the uploaded profile image.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	fileHeader, err := c.FormFile(avatarFormField)
	if err != nil {
		return response.BadRequest(c, "AVATAR_INVALID", "Please upload an avatar file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "AVATAR_INVALID", "Failed to open uploaded file")
	}
	defer src.Close()

	avatar, err := io.ReadAll(io.LimitReader(src, maxAvatarUploadBytes+1))
	if err != nil {
		return response.BadRequest(c, "AVATAR_INVALID", "Failed to read uploaded file")
	}

	if err := h.profileUC.SetAvatar(c.Request().Context(), deliverycontext.GetUserID(c), avatar); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Avatar uploaded")
}

// DeleteAvatar clears the authenticated user's profile image.
func (h *ProfileHandler) DeleteAvatar(c echo.Context) error {
	if err := h.profileUC.RemoveAvatar(c.Request().Context(), deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Avatar removed")
}

// GetAvatar serves any user's profile image by ID. This route is public.
func (h *ProfileHandler) GetAvatar(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	avatar, err := h.profileUC.GetAvatar(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, mimetype.Detect(avatar).String(), avatar)
}
