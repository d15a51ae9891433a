package uid

import "github.com/google/uuid"

// GenerateGameID returns a random (v4) UUID string
func GenerateGameID() string {
	return uuid.NewString()
}

// IsGameID reports whether s looks like an ID produced by GenerateGameID.
func IsGameID(s string) bool {
	id, err := uuid.Parse(s)
	return err == nil && id.Version() == 4
}
