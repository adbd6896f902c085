package service

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/charak7/Heart-care/internal/errdefs"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var requiredFields = []string{"name", "email"}

// validatePayload checks required fields in order, then the email shape.
// Values are used as submitted, without trimming or case folding.
func validatePayload(payload map[string]any) error {
	for _, field := range requiredFields {
		if isFalsy(payload[field]) {
			return errdefs.BadRequest(fmt.Sprintf("Missing required field: %s", field))
		}
	}
	if !emailPattern.MatchString(stringify(payload["email"])) {
		return errdefs.BadRequest("Invalid email format")
	}
	return nil
}

// isFalsy reports whether a decoded body value counts as missing: absent,
// null, empty string, false, zero, or an empty array/object.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// stringify renders a body value the way it is persisted.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
