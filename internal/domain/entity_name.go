package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxEntityNameLength bounds entity names so generated file names stay sane.
const MaxEntityNameLength = 64

var entityNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

var (
	validate      *validator.Validate
	entityNameTag = "required,max=" + strconv.Itoa(MaxEntityNameLength) + ",entityname"
)

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("entityname", func(fl validator.FieldLevel) bool {
		return entityNamePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("registering entityname validation: %v", err))
	}
}

var entityNameMessages = map[string]string{
	"required":   "entity name must not be empty",
	"max":        "entity name %q is longer than %d characters",
	"entityname": "entity name %q is invalid: use lowercase letters, digits and single hyphens, starting with a letter (e.g. user-profile)",
}

// NormalizeEntityName trims and lower-cases a raw command-line argument.
func NormalizeEntityName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateEntityName checks that name is a kebab-case entity name.
// It returns a UserError of kind KindInvalidEntity on failure.
func ValidateEntityName(name string) error {
	err := validate.Var(name, entityNameTag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validating entity name: %w", err)
	}

	var msg string
	switch tag := verrs[0].Tag(); tag {
	case "required":
		msg = entityNameMessages[tag]
	case "max":
		msg = fmt.Sprintf(entityNameMessages[tag], name, MaxEntityNameLength)
	default:
		msg = fmt.Sprintf(entityNameMessages["entityname"], name)
	}
	return NewUserError(KindInvalidEntity, msg, "make-ca generate user-profile")
}
