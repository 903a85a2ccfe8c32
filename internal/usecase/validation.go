package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so errors match the form fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateSubmitLeadInput expects an already normalized input.
func ValidateSubmitLeadInput(input SubmitLeadInput) []ValidationError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "input", Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Message: validationMessage(fe)})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "is invalid"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must have exactly %s characters", fe.Param())
	case "alpha":
		return "must contain only letters"
	default:
		return "is invalid"
	}
}

func normalizeSubmitLeadInput(input SubmitLeadInput) SubmitLeadInput {
	return SubmitLeadInput{
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.TrimSpace(input.Email),
		Phone:           strings.TrimSpace(input.Phone),
		Company:         strings.TrimSpace(input.Company),
		ServiceInterest: strings.TrimSpace(input.ServiceInterest),
		ProjectDetails:  strings.TrimSpace(input.ProjectDetails),
		Budget:          strings.TrimSpace(input.Budget),
		Timeline:        strings.TrimSpace(input.Timeline),
		Currency:        strings.ToUpper(strings.TrimSpace(input.Currency)),
	}
}

// NormalizePhone formats a number as E.164 when it parses for the region,
// otherwise the trimmed input is returned untouched.
func NormalizePhone(input, region string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}
	number, err := phonenumbers.Parse(trimmed, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
