package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	fancyerrors "github.com/alexisbeaulieu97/fancyui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	namePattern   = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return namePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema and cross-field validation on the document.
// Variant schema and default errors are wrapped in a ValidationError that
// still unwraps to the underlying SchemaError or ConfigError.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fancyerrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Components))
	for i, component := range doc.Components {
		if first, exists := seen[component.Name]; exists {
			return fancyerrors.NewValidationError(
				fieldForComponent(i, "name"),
				fmt.Sprintf("duplicate component name %q (first declared at components[%d])", component.Name, first),
				nil,
			)
		}
		seen[component.Name] = i

		if _, err := component.Resolver(); err != nil {
			return fancyerrors.NewValidationError(fieldForComponent(i, "axes"), err.Error(), err)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return fancyerrors.NewValidationError(field, msg, err)
	}

	return fancyerrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}
