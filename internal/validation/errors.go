package validation

import (
	"strings"

	"github.com/userhub/userhub-api/internal/domain"
)

// Violation is one failed rule on one field. Field is the JSON name of the
// offending field, or empty for rules that apply to the whole payload.
type Violation struct {
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error carries every violation found in a payload.
type Error struct {
	Violations []Violation
}

// Error joins all violation messages with ", ".
func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, ", ")
}

// Unwrap lets errors.Is(err, domain.ErrValidation) match every validation failure.
func (e *Error) Unwrap() error {
	return domain.ErrValidation
}
