package logging

import "github.com/google/uuid"

// GenerateRequestID returns a random version-4 UUID for request correlation:
// 36 characters in the canonical 8-4-4-4-12 form.
func GenerateRequestID() string {
	return uuid.New().String()
}
