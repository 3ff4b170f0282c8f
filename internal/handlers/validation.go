package handlers

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidationsOnce sync.Once

// registerCustomValidations teaches gin's validator about decimal.Decimal.
// The validator sees decimal.Decimal as an opaque struct, so amount fields
// could only use `required`. Registering it as a custom type that reports its
// float value lets request DTOs use the standard numeric rules (gt, gte).
func registerCustomValidations() {
	registerValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
	})
}
