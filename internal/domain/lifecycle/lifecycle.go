// Package lifecycle holds shared constants for process start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful-shutdown steps.
const DefaultTimeout = 10 * time.Second
