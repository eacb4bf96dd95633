// Package lifecycle holds shared process start/stop constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown.
const DefaultTimeout = 10 * time.Second
