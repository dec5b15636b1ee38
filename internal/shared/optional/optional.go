// Package optional distinguishes an absent JSON key from an explicit
// null in partial update payloads. A plain pointer field cannot make
// that distinction: encoding/json leaves the pointer nil in both cases.
package optional

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Value tracks whether its JSON key was present at all. A present key
// carrying null has Set true and a nil Val, which clears the column on
// update; an absent key leaves Set false and the column untouched.
type Value[T any] struct {
	Set bool
	Val *T
}

// Of returns a present Value carrying v.
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, Val: &v}
}

// Null returns a present Value carrying an explicit null.
func Null[T any]() Value[T] {
	return Value[T]{Set: true}
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Set = true
	if bytes.Equal(data, []byte("null")) {
		v.Val = nil
		return nil
	}
	return json.Unmarshal(data, &v.Val)
}

// Underlying exposes the carried value to the validator, so range and
// length rules apply to the inner value rather than the wrapper struct.
// Register it with validator.RegisterCustomTypeFunc for each concrete
// Value type used in a request.
func Underlying(field reflect.Value) interface{} {
	switch v := field.Interface().(type) {
	case Value[string]:
		if v.Val == nil {
			return nil
		}
		return *v.Val
	case Value[int]:
		if v.Val == nil {
			return nil
		}
		return *v.Val
	}
	return nil
}
