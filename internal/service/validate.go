package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/msomdec/atelier/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the closet's custom tags registered:
// hexcolor6, fabric, garment_category, garment_state and care_symbol.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		_ = validate.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			_, ok := domain.NormalizeHex(fl.Field().String())
			return ok
		})
		_ = validate.RegisterValidation("fabric", func(fl validator.FieldLevel) bool {
			return domain.Fabric(fl.Field().String()).IsValid()
		})
		_ = validate.RegisterValidation("garment_category", func(fl validator.FieldLevel) bool {
			return domain.GarmentCategory(fl.Field().String()).IsValid()
		})
		_ = validate.RegisterValidation("garment_state", func(fl validator.FieldLevel) bool {
			return domain.GarmentState(fl.Field().String()).IsValid()
		})
		_ = validate.RegisterValidation("care_symbol", func(fl validator.FieldLevel) bool {
			return domain.CareSymbol(fl.Field().String()).IsValid()
		})

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// validateStruct runs the shared validator and folds any failures into a single
// domain.ErrInvalidInput error naming every offending field.
func validateStruct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "gt", "gte", "lte":
		return fmt.Sprintf("%s is out of range", field)
	case "hexcolor6":
		return field + " must be six hex digits"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "fabric", "garment_category", "garment_state", "care_symbol":
		return fmt.Sprintf("%s has unknown value %q", field, e.Value())
	}
	return fmt.Sprintf("%s failed %s", field, e.Tag())
}
