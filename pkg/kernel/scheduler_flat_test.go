package kernel

import "testing"

// TestFlatSchedulerPipelineLag is the P2/P6 property: a FlatScheduler's
// collect/execute barrier always reads the *previous* step's exposed
// values, so a producer -> consumer pipeline lags by exactly one Step.
func TestFlatSchedulerPipelineLag(t *testing.T) {
	exec := NewSerialExecutor()
	sched := NewFlatScheduler(exec)

	var tick int
	producer := NewComponent("producer", func(inputs, outputs *OrderedMap[string, Buffer]) error {
		tick++
		return outputs.Set("out", NewBufferFrom([]byte{byte(tick)}))
	})
	producer.MakeOutPort("out")

	consumer := NewComponent("consumer", echoFunctor)
	consumer.MakeInPort("in")
	consumer.MakeOutPort("out")

	if err := Connect(producer, "out", consumer, "in"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	sched.AddComponent(producer)
	sched.AddComponent(consumer)

	if err := sched.Step(); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	out, err := consumer.Output("out")
	if err != nil {
		t.Fatalf("consumer.Output after step 1: %v", err)
	}
	if out.Size() != 0 {
		t.Errorf("consumer should not have observed producer's first output until step 2, got %v", out.Data())
	}

	if err := sched.Step(); err != nil {
		t.Fatalf("step 2: %v", err)
	}
	out, err = consumer.Output("out")
	if err != nil {
		t.Fatalf("consumer.Output after step 2: %v", err)
	}
	if out.Size() != 1 || out.Data()[0] != 1 {
		t.Errorf("consumer output after step 2 = %v, want [1]", out.Data())
	}
}

func TestFlatSchedulerPropagatesFunctorError(t *testing.T) {
	exec := NewSerialExecutor()
	sched := NewFlatScheduler(exec)
	sched.AddComponent(NewComponent("broken", func(inputs, outputs *OrderedMap[string, Buffer]) error {
		return errFunctorBoom
	}))
	if err := sched.Step(); err == nil {
		t.Fatalf("expected Step to surface the functor error")
	}
}
