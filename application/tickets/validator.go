package tickets

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// mobileIDPattern matches Indonesian mobile numbers: +62 / 62 / 0, then an
// operator prefix starting with 8, then the subscriber digits.
var mobileIDPattern = regexp.MustCompile(`^(\+?62|0)8(1[123456789]|2[1238]|3[1238]|5[12356789]|7[78]|9[56789]|8[123456789])([\s?|\d]{5,11})$`)

// IsMobilePhoneID reports whether s is a valid id-ID mobile phone number.
func IsMobilePhoneID(s string) bool {
	return mobileIDPattern.MatchString(s)
}

// Validator applies the declarative form rules.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the mobile_id rule registered.
func NewValidator() *Validator {
	v := validator.New()

	// Report fields by their form names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("mobile_id", func(fl validator.FieldLevel) bool {
		return IsMobilePhoneID(fl.Field().String())
	}); err != nil {
		// Only fails for an empty tag or nil func.
		panic(fmt.Sprintf("register mobile_id: %v", err))
	}

	return &Validator{validate: v}
}

// Validate returns one FieldError per failed rule, in field order.
func (v *Validator) Validate(form TicketForm) []FieldError {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "form", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: fieldErrorMessage(fe),
		})
	}
	return fieldErrors
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s wajib diisi", fe.Field())
	case "max":
		return fmt.Sprintf("%s maksimal %s karakter", fe.Field(), fe.Param())
	case "mobile_id":
		return MsgInvalidPhone
	default:
		return fmt.Sprintf("%s tidak valid", fe.Field())
	}
}
