package kernel

import "testing"

func TestConnectTypedMatchingShapes(t *testing.T) {
	shape := PortShape{Format: FormatFloat32, Shape: []int{4}}

	producer := NewTypedComponent("producer", func(inputs, outputs *OrderedMap[string, Buffer]) error {
		return outputs.Set("out", NewBuffer(16))
	})
	producer.MakeTypedOutPort("out", shape)

	consumer := NewTypedComponent("consumer", echoFunctor)
	consumer.MakeTypedInPort("in", shape)

	if err := ConnectTyped(producer, "out", consumer, "in"); err != nil {
		t.Fatalf("ConnectTyped with matching shapes: %v", err)
	}
}

func TestConnectTypedMismatchedShapesFail(t *testing.T) {
	producer := NewTypedComponent("producer", func(inputs, outputs *OrderedMap[string, Buffer]) error { return nil })
	producer.MakeTypedOutPort("out", PortShape{Format: FormatFloat32, Shape: []int{4}})

	consumer := NewTypedComponent("consumer", echoFunctor)
	consumer.MakeTypedInPort("in", PortShape{Format: FormatInt32, Shape: []int{4}})

	err := ConnectTyped(producer, "out", consumer, "in")
	if err == nil {
		t.Fatalf("expected IncompatibleError for mismatched shapes")
	}
	if _, ok := err.(*IncompatibleError); !ok {
		t.Errorf("expected *IncompatibleError, got %T", err)
	}
}

func TestMakeTypedPortRedeclarationPanicsOnShapeChange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when re-declaring a typed port with a different shape")
		}
	}()
	c := NewTypedComponent("c", echoFunctor)
	c.MakeTypedInPort("in", PortShape{Format: FormatFloat32, Shape: []int{4}})
	c.MakeTypedInPort("in", PortShape{Format: FormatInt32, Shape: []int{2}})
}
