package cli

import "time"

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 5 * time.Second
