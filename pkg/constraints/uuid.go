package constraints

import (
	"strings"

	"github.com/google/uuid"
)

// UUID validates the canonical 36-character form and rejects the nil UUID.
// Accepts uuid.UUID values as well as strings.
func UUID(value any, _ ...any) bool {
	if id, ok := value.(uuid.UUID); ok {
		return id != uuid.Nil
	}

	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	// cheap shape check before parsing
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	id, err := uuid.Parse(s)
	return err == nil && id != uuid.Nil
}
