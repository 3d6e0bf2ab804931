// Package blocking implements the central mutation point of the engine:
// per-obstacle blocked-edge lists and per-edge blocking counts, from which
// the free/blocked partition is derived.
package blocking

import "errors"

// ErrUnknownObstacle indicates RemoveObstacle was called with an id not
// present in the obstacle set. The caller (engine) logs this and treats
// it as a no-op with an empty delta.
var ErrUnknownObstacle = errors.New("blocking: unknown obstacle")

// ErrWorkerFailed indicates a parallel blocked-edge scan task terminated
// abnormally; the enclosing call fails and leaves the index untouched.
var ErrWorkerFailed = errors.New("blocking: worker task failed")
