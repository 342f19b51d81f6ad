package kernel

// typed_component.go implements the optional typed+shaped port variant of
// spec.md §4.4: a TypedComponent additionally declares an element format
// and dimensions for each port, and ConnectTyped between two typed components
// fails with IncompatibleError when the source and target shapes do not
// match. Ports themselves remain untyped (per spec.md §4.1: "Ports do not
// interpret this metadata") -- TypedComponent is the layer that checks
// shapes before delegating to the untyped Connect.
//
// © 2025 flowkernel authors. MIT License.

import (
	"fmt"
	"reflect"
)

// PortShape describes the element format and dimensions a TypedComponent
// expects on a given port.
type PortShape struct {
	Format ElementFormat
	Shape  []int
}

func (s PortShape) equal(other PortShape) bool {
	return s.Format == other.Format && reflect.DeepEqual(s.Shape, other.Shape)
}

// TypedComponent adds shape-checked ports on top of a plain Component.
type TypedComponent struct {
	*Component
	inShapes  *OrderedMap[string, PortShape]
	outShapes *OrderedMap[string, PortShape]
}

// NewTypedComponent constructs a TypedComponent around fn, same contract as
// NewComponent.
func NewTypedComponent(name string, fn Functor, opts ...ComponentOption) *TypedComponent {
	return &TypedComponent{
		Component: NewComponent(name, fn, opts...),
		inShapes:  NewOrderedMap[string, PortShape](lessString),
		outShapes: NewOrderedMap[string, PortShape](lessString),
	}
}

// MakeTypedInPort declares an input port with an expected shape,
// idempotently (a repeat call with the same name and an identical shape is
// a no-op; a repeat call with a different shape panics, since that would
// be a construction-time programmer error rather than a runtime
// Incompatible condition, which is reserved for Connect).
func (t *TypedComponent) MakeTypedInPort(name string, shape PortShape) *Port {
	p := t.MakeInPort(name)
	if existing, err := t.inShapes.At(name); err == nil {
		if !existing.equal(shape) {
			panic(fmt.Sprintf("flowkernel: in-port %q re-declared with a different shape", name))
		}
		return p
	}
	t.inShapes.TryEmplace(name, shape)
	return p
}

// MakeTypedOutPort declares an output port with an expected shape, with the
// same idempotence rules as MakeTypedInPort.
func (t *TypedComponent) MakeTypedOutPort(name string, shape PortShape) *Port {
	p := t.MakeOutPort(name)
	if existing, err := t.outShapes.At(name); err == nil {
		if !existing.equal(shape) {
			panic(fmt.Sprintf("flowkernel: out-port %q re-declared with a different shape", name))
		}
		return p
	}
	t.outShapes.TryEmplace(name, shape)
	return p
}

// ConnectTyped connects source's typed out-port to target's typed in-port,
// failing with IncompatibleError if their declared shapes do not match,
// and with KeyNotFoundError if either port was never declared via
// MakeTypedOutPort/MakeTypedInPort.
func ConnectTyped(source *TypedComponent, srcOut string, target *TypedComponent, tgtIn string) error {
	srcShape, err := source.outShapes.At(srcOut)
	if err != nil {
		return err
	}
	tgtShape, err := target.inShapes.At(tgtIn)
	if err != nil {
		return err
	}
	if !srcShape.equal(tgtShape) {
		return &IncompatibleError{Reason: fmt.Sprintf(
			"source %q.%s has shape %+v, target %q.%s expects %+v",
			source.Name(), srcOut, srcShape, target.Name(), tgtIn, tgtShape,
		)}
	}
	return Connect(source.Component, srcOut, target.Component, tgtIn)
}
