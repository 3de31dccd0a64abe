package ffq

import (
	"reflect"
	"unsafe"
)

// descriptor is the handle's cached, computed-once description of the
// payload type P. It generalizes the serialization descriptor a
// distributed-memory deployment would build from P's field layout: here
// there is no wire format to describe, so the descriptor carries only
// what the handle itself needs to validate and report, but it is built
// exactly once per handle and never touched again on the hot path.
type descriptor[P any] struct {
	size uintptr
	name string
}

// newDescriptor builds a payload descriptor. Called once from Open and
// once from Attach; never from Enqueue or Dequeue.
func newDescriptor[P any]() descriptor[P] {
	var zero P
	return descriptor[P]{
		size: unsafe.Sizeof(zero),
		name: reflect.TypeOf(zero).String(),
	}
}

// Size returns the cached size in bytes of the payload type.
func (d descriptor[P]) Size() uintptr { return d.size }

// String returns the cached type name of the payload.
func (d descriptor[P]) String() string { return d.name }
