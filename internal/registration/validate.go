package registration

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Message keys for the fixed per-field validation messages. The texts live in
// the locale catalogs.
const (
	MsgFirstName = "register.error.first_name"
	MsgLastName  = "register.error.last_name"
	MsgEmail     = "register.error.email"
	MsgPhone     = "register.error.phone"
	MsgBirthDate = "register.error.birth_date"
	MsgEvent     = "register.error.event"
)

var fieldMessages = map[string]string{
	FieldFirstName: MsgFirstName,
	FieldLastName:  MsgLastName,
	FieldEmail:     MsgEmail,
	FieldPhone:     MsgPhone,
	FieldBirthDate: MsgBirthDate,
	FieldEvent:     MsgEvent,
}

// Errors maps a field name to the message key of its failure. A field has at
// most one message whatever rule it broke.
type Errors map[string]string

// Has reports whether field failed.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields returns the failing fields, sorted.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for f := range e {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// ValidationError is returned by Submit when the form is rejected.
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	return "invalid registration: " + strings.Join(e.Errors.Fields(), ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every field and returns nil when the form is acceptable.
func Validate(f Form) Errors {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable on a programming error (non-struct input).
		panic(err)
	}

	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		if key, ok := fieldMessages[fe.Field()]; ok {
			out[fe.Field()] = key
		}
	}
	return out
}
