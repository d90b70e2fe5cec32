package utils

import "github.com/google/uuid"

// GenerateID returns a random 128-bit identifier. Sequential counters are
// unsafe here because persisted collections can be edited out of band.
func GenerateID() string {
	return uuid.NewString()
}
