package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/flexkit/internal/layout"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			_, err := tokens.ParsePlatform(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("kind", func(fl validator.FieldLevel) bool {
			kind := layout.Kind(fl.Field().String())
			for _, known := range layout.Kinds() {
				if kind == known {
					return true
				}
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema validation and then decodes every node's
// props so token and vocabulary mistakes surface at load time.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return flexerrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	if _, err := doc.Tree(); err != nil {
		return err
	}
	return nil
}

// convertValidationError normalizes validator errors into layout document validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return flexerrors.NewValidationError(field, msg, err)
	}

	return flexerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName turns Document.Root.Children[1].Kind into
// root.children[1].kind, matching node paths used elsewhere.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
