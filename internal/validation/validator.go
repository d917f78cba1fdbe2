package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
)

// Custom rule tags.
const (
	TagPhone      = "phone"
	TagZipCode    = "zipcode"
	TagAtLeastOne = "atleastone"
)

const (
	phoneMessage      = "Phone number must be 10-15 digits and can start with + for international format"
	zipCodeMessage    = "Zip Code must be a number with 4-10 digits"
	atLeastOneMessage = "At least one field must be provided"
)

var (
	phonePattern   = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	zipCodePattern = regexp.MustCompile(`^\d{4,10}$`)
)

// Normalizer is implemented by request types that clean their input (for
// example trimming whitespace) before rules are checked.
type Normalizer interface {
	Normalize()
}

// Partial is implemented by update payloads in which every field is optional
// but at least one must be present.
type Partial interface {
	IsEmpty() bool
}

// Validator checks request structs against their `validate` tags.
type Validator struct {
	validate *validator.Validate
	labels   map[string]string
}

// New creates a Validator. labels maps JSON field names to the names used in
// messages ("firstName" → "First name"); unmapped fields use the JSON name.
func New(labels map[string]string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation(TagPhone, validatePhone)
	_ = v.RegisterValidation(TagZipCode, validateZipCode)
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	if labels == nil {
		labels = map[string]string{}
	}
	return &Validator{validate: v, labels: labels}
}

// RegisterPartial enables the "at least one field" rule for the given update
// payload types. Pass zero values, e.g. RegisterPartial(UpdateUserRequest{}).
func (v *Validator) RegisterPartial(types ...Partial) {
	ifaces := make([]interface{}, 0, len(types))
	for _, t := range types {
		ifaces = append(ifaces, t)
	}
	v.validate.RegisterStructValidation(func(sl validator.StructLevel) {
		if p, ok := sl.Current().Interface().(Partial); ok && p.IsEmpty() {
			sl.ReportError(sl.Current().Interface(), "", "", TagAtLeastOne, "")
		}
	}, ifaces...)
}

// Check normalizes value (when it implements Normalizer) and validates it,
// collecting every violation.
func Check[T any](v *Validator, value T) Result[T] {
	if n, ok := any(&value).(Normalizer); ok {
		n.Normalize()
	}

	err := v.validate.Struct(value)
	if err == nil {
		return Accept(value)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Reject[T]([]Violation{{Rule: "invalid", Message: "Invalid input data"}})
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, v.violation(fe))
	}
	return Reject[T](violations)
}

// ParseID validates a path identifier as a version 4 UUID, ignoring hex case. label names the
// identifier in messages, e.g. "User ID" → "Invalid User ID format".
func (v *Validator) ParseID(raw, label string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, &Error{Violations: []Violation{{
			Field: "id", Rule: "required", Message: label + " is required",
		}}}
	}
	raw = strings.ToLower(raw)
	if err := v.validate.Var(raw, "uuid4"); err != nil {
		return uuid.Nil, &Error{Violations: []Violation{{
			Field: "id", Rule: "uuid4", Message: fmt.Sprintf("Invalid %s format", label),
		}}}
	}
	return uuid.MustParse(raw), nil
}

func (v *Validator) violation(fe validator.FieldError) Violation {
	field := fe.Field()
	label, ok := v.labels[field]
	if !ok {
		label = field
	}

	var msg string
	switch fe.Tag() {
	case "required":
		msg = label + " is required"
	case "notblank":
		msg = label + " cannot be empty"
	case "min":
		msg = fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		msg = fmt.Sprintf("%s must be at most %s characters long", label, fe.Param())
	case "email":
		msg = "Invalid email format"
	case TagPhone:
		msg = phoneMessage
	case TagZipCode:
		msg = zipCodeMessage
	case "uuid4":
		msg = fmt.Sprintf("Invalid %s format", label)
	case TagAtLeastOne:
		field = ""
		msg = atLeastOneMessage
	default:
		msg = label + " is invalid"
	}

	return Violation{Field: field, Rule: fe.Tag(), Message: msg}
}

// validatePhone accepts the empty string, which clears a stored number.
func validatePhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || phonePattern.MatchString(s)
}

func validateZipCode(fl validator.FieldLevel) bool {
	return zipCodePattern.MatchString(fl.Field().String())
}
