package integrity

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm/schema"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their column name so errors line up with the tables
	naming := schema.NamingStrategy{}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return naming.ColumnName("", f.Name)
	})

	if err := v.RegisterValidation("mediatype", validEnum); err != nil {
		panic(err)
	}
	return v
}

func validEnum(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(interface{ Valid() bool })
	return ok && e.Valid()
}

// Validate checks the `validate` struct tags of an entity and returns the
// first failure as a *ValidationError.
func Validate(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Entity: entity,
			Field:  fe.Field(),
			Rule:   fe.Tag(),
			Param:  fe.Param(),
		}
	}
	return fmt.Errorf("validate %s: %w", entity, err)
}
