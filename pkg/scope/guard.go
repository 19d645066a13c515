package scope

import (
	"reflect"

	"github.com/go-drift/relay/pkg/errors"
)

// mustBindableKind rejects type parameters with a primitive numeric kind.
// Numeric slots are ambiguous under type-erased lookup (boxed vs unboxed,
// silent cross-channel collisions), so the binding fails eagerly at
// construction, never at use time. Callers wrap the number in a nominal
// struct type instead.
func mustBindableKind[T comparable]() {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		panic(&errors.BindingError{Type: t.String(), Kind: t.Kind().String()})
	}
}
