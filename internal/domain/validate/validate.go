package validate

import (
	"fmt"
	"strings"
)

// Error reports the required fields a write was rejected over. The write is
// aborted as a whole; there is no partial save.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("required fields missing or invalid: %s", strings.Join(e.Fields, ", "))
}

// Check returns nil when no fields were collected.
func Check(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &Error{Fields: fields}
}
