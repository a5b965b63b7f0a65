// Package lifecycle holds shared limits for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook.
const DefaultTimeout = 10 * time.Second

// DetachedTimeout bounds work that outlives the request that started it.
const DetachedTimeout = 30 * time.Second
