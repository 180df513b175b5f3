package go_vendra

import "github.com/google/uuid"

// NewSessionID returns a caller-side identifier for one logical shopping
// session. The backend requires it to be unique per session; a UUID v4
// satisfies that without coordination.
func NewSessionID() string {
	return uuid.NewString()
}
