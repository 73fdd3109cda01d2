package utils

import (
	"reflect"

	"github.com/pkg/errors"
)

// TypeStr returns the name of the type parameter, including interfaces which have no value to
// print with %T.
func TypeStr[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// NewUnexpectedTypeError is used when there is a type mismatch.
func NewUnexpectedTypeError[ExpectedT any](actual interface{}) error {
	return errors.Errorf("expected %s but got %T", TypeStr[ExpectedT](), actual)
}
