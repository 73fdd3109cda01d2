package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestNewUnexpectedTypeError(t *testing.T) {
	test.That(t, NewUnexpectedTypeError[string]("actual1").Error(), test.ShouldEqual, "expected string but got string")
	test.That(t, NewUnexpectedTypeError[int]("actual2").Error(), test.ShouldEqual, "expected int but got string")
	test.That(t, NewUnexpectedTypeError[someIfc](4).Error(), test.ShouldEqual, "expected utils.someIfc but got int")
	test.That(t, NewUnexpectedTypeError[*someStruct](6).Error(), test.ShouldEqual, "expected *utils.someStruct but got int")
	test.That(t, NewUnexpectedTypeError[someStruct](nil).Error(), test.ShouldEqual, "expected utils.someStruct but got <nil>")
}

type (
	someStruct struct{}
	someIfc    interface{}
)
