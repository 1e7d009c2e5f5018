// Package lifecycle holds shared timeouts for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a lifecycle hook may take before it is
// abandoned during startup or graceful shutdown.
const DefaultTimeout = 10 * time.Second
