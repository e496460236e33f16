package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized checks whether all exported pointer, interface,
// map, slice and function fields of the given struct are non-nil. Used
// by the server readiness probe to detect missing components.
func IsStructInitialized(s any) error {
	v := reflect.ValueOf(s)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return errors.New("struct pointer is nil")
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return errors.Errorf("expected struct, got %s", v.Kind())
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if v.Field(i).IsNil() {
				return errors.Errorf("struct field %q is not initialized", field.Name)
			}
		default:
			// value types are always initialized
		}
	}

	return nil
}
