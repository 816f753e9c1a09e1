package validation

import (
	"reflect"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

// registerNullTypes teaches the validator to look through the null wrapper
// types so rules like `omitempty,oneof=...` apply to the inner value.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		switch t := field.Interface().(type) {
		case null.String:
			if t.Valid {
				return t.String
			}
		case null.Int:
			if t.Valid {
				return t.Int
			}
		case null.Float64:
			if t.Valid {
				return t.Float64
			}
		case null.Time:
			if t.Valid {
				return t.Time
			}
		}
		return nil
	}, null.String{}, null.Int{}, null.Float64{}, null.Time{})
}
