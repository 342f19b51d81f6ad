package taskpool

import "testing"

func TestGetWrapsFn(t *testing.T) {
	p := New()
	var ran bool
	task := p.Get(func() error {
		ran = true
		return nil
	})
	if err := task.Fn(); err != nil {
		t.Fatalf("Fn(): %v", err)
	}
	if !ran {
		t.Fatalf("wrapped closure did not run")
	}
}

func TestPutClearsTask(t *testing.T) {
	p := New()
	task := p.Get(func() error { return nil })
	task.Err = errBoom
	p.Put(task)
	if task.Fn != nil || task.Err != nil {
		t.Errorf("Put should clear Fn and Err, got Fn set=%t Err=%v", task.Fn != nil, task.Err)
	}
}

var errBoom = errorString("boom")

type errorString string

func (e errorString) Error() string { return string(e) }
