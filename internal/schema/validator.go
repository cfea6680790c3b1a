package schema

import (
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validator wraps go-playground/validator with English translations so that
// rejection messages are readable without decoding tag names.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator creates a Validator with default English translations.
func NewValidator() (*Validator, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, fmt.Errorf("failed to find the en translator")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register translations: %w", err)
	}

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

// Struct validates a struct by its validate tags. On failure it returns a
// single error with all translated messages joined.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate struct: %w", err)
	}
	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, e.Translate(v.translator))
	}
	return fmt.Errorf("%s", strings.Join(messages, ", "))
}

// Var validates a single value against a tag expression, e.g. "max=500".
func (v *Validator) Var(field any, tag string) error {
	err := v.validate.Var(field, tag)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate value: %w", err)
	}
	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, e.Translate(v.translator))
	}
	return fmt.Errorf("%s", strings.Join(messages, ", "))
}
