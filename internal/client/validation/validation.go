// Package validation checks form input before anything is sent to the API.
// Failures are reported per field with the message shown next to it.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid is matched by every FieldErrors value.
var ErrInvalid = errors.New("form has invalid fields")

// SpecialCharacters are the characters a password must contain one of.
const SpecialCharacters = "@$!%*?&#"

var messages = map[string]string{
	"name.required": "You must enter your name",

	"email.required": "You must enter your email",
	"email.email":    "Your email format is not valid",

	"password.required":    "Password is required",
	"password.min":         "Password must be at least 8 characters",
	"password.has_upper":   "Password must contain at least one uppercase letter",
	"password.has_digit":   "Password must contain at least one number",
	"password.has_special": "Password must contain at least one special character",

	"age.required": "You must enter your age",
	"age.min":      "You must be at least 18 years old",

	"gender.required": "You must select gender",
	"gender.oneof":    "Invalid Gender",

	"accountType.required": "You must select account type",
	"accountType.oneof":    "Invalid Account Type",

	"phoneNumber.required": "Phone Number is required",
	"phoneNumber.e164":     "Invalid Phone Number",

	"termsAndConditions.eq": "You must accept the terms and conditions",
}

// FieldErrors maps a field's JSON name to its first failing rule's message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := fe.Fields()
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Unwrap() error {
	return ErrInvalid
}

// Fields returns the failing field names in a stable order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Validator runs the form rules. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("has_upper", containsFunc(unicode.IsUpper))
	_ = v.RegisterValidation("has_digit", containsFunc(unicode.IsDigit))
	_ = v.RegisterValidation("has_special", containsFunc(func(r rune) bool {
		return strings.ContainsRune(SpecialCharacters, r)
	}))
	return &Validator{v: v}
}

// Login validates the login form. It returns nil when the form is valid.
func (v *Validator) Login(c models.Credentials) error {
	return v.check(c)
}

// Registration validates the registration form. It returns nil when the
// form is valid.
func (v *Validator) Registration(u *models.User) error {
	if u == nil {
		return FieldErrors{"email": messages["email.required"]}
	}
	return v.check(u)
}

func (v *Validator) check(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := FieldErrors{}
	for _, e := range verrs {
		field := e.Field()
		if _, seen := fe[field]; seen {
			continue
		}
		msg, ok := messages[field+"."+e.Tag()]
		if !ok {
			msg = e.Error()
		}
		fe[field] = msg
	}
	return fe
}

func containsFunc(pred func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), pred) >= 0
	}
}
