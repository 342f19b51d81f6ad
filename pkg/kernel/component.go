package kernel

// component.go implements Component: the pairing of a user functor with
// named input/output Ports and the private inputs/outputs scratch
// dictionaries the functor reads and writes. The three-phase lifecycle
// (Collect/Execute/Expose) keeps inputs/outputs sharing exactly the key set
// and traversal order of in_ports/out_ports.
//
// Construction follows a functional-options idiom
// (New[...](..., opts ...Option)), generalized here from a generic
// constructor shape to component options.
//
// © 2025 flowkernel authors. MIT License.

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Functor is the user-supplied callable invoked once per Component per
// step. It may read any key of inputs and write any key of outputs; it
// must not mutate the component's port maps nor call other components'
// methods. A non-nil return aborts this component's step.
type Functor func(inputs *OrderedMap[string, Buffer], outputs *OrderedMap[string, Buffer]) error

// componentState tracks where a Component is in its per-step lifecycle
// (idle -> collected -> executed -> idle). It is diagnostic only: nothing
// in the scheduler consults it to decide what to run next.
type componentState uint8

const (
	stateIdle componentState = iota
	stateCollected
	stateExecuted
)

// Component pairs a Functor with named input/output ports and the private
// scratch dictionaries the functor operates on.
type Component struct {
	name    string
	functor Functor

	inPorts  *OrderedMap[string, *Port]
	outPorts *OrderedMap[string, *Port]
	inputs   *OrderedMap[string, Buffer]
	outputs  *OrderedMap[string, Buffer]

	state   componentState
	log     logger
	metrics metricsSink
}

// NewComponent constructs a Component around fn. name is used only for
// diagnostics (logging, metrics labels, debug snapshots); it need not be
// unique.
func NewComponent(name string, fn Functor, opts ...ComponentOption) *Component {
	if fn == nil {
		panic("flowkernel: Component functor must not be nil")
	}
	c := &Component{
		name:     name,
		functor:  fn,
		inPorts:  NewOrderedMap[string, *Port](lessString),
		outPorts: NewOrderedMap[string, *Port](lessString),
		inputs:   NewOrderedMap[string, Buffer](lessString),
		outputs:  NewOrderedMap[string, Buffer](lessString),
		log:      nopLogger{},
		metrics:  noopMetrics{},
	}
	for _, o := range opts {
		o.applyComponent(c)
	}
	return c
}

func lessString(a, b string) bool { return a < b }

// Name returns the component's diagnostic name.
func (c *Component) Name() string { return c.name }

// MakeInPort declares an input port named name, idempotently: a second call
// with the same name is a no-op and returns the existing port.
func (c *Component) MakeInPort(name string) *Port {
	if p, err := c.inPorts.At(name); err == nil {
		return p
	}
	p := NewPort()
	c.inPorts.TryEmplace(name, p)
	c.inputs.TryEmplace(name, Buffer{})
	return p
}

// MakeOutPort declares an output port named name, idempotently, allocating
// a fresh Port the first time it is declared.
func (c *Component) MakeOutPort(name string) *Port {
	if p, err := c.outPorts.At(name); err == nil {
		return p
	}
	p := NewPort()
	c.outPorts.TryEmplace(name, p)
	c.outputs.TryEmplace(name, Buffer{})
	return p
}

// GetInPort returns the Port currently bound to in-port name, failing with
// KeyNotFoundError if name was never declared via MakeInPort.
func (c *Component) GetInPort(name string) (*Port, error) {
	return c.inPorts.At(name)
}

// GetOutPort returns the Port backing out-port name, failing with
// KeyNotFoundError if name was never declared via MakeOutPort.
func (c *Component) GetOutPort(name string) (*Port, error) {
	return c.outPorts.At(name)
}

// Connect rebinds target's in-port tgtIn to source's out-port srcOut: after
// this call, target.GetInPort(tgtIn) and source.GetOutPort(srcOut) return
// handles that Same() reports equal (spec P3). Any Port object target
// previously held for tgtIn becomes unreferenced. Fails with
// KeyNotFoundError if either port name was never declared.
func Connect(source *Component, srcOut string, target *Component, tgtIn string) error {
	out, err := source.GetOutPort(srcOut)
	if err != nil {
		return err
	}
	if _, err := target.inPorts.At(tgtIn); err != nil {
		return err
	}
	return target.inPorts.Set(tgtIn, out)
}

// Collect reads each declared in-port into the private inputs dictionary,
// positionally: inputs.Index(i) <- in_ports.Index(i).Get(). Called only by
// the scheduler, from outside any concurrent expose of this component's
// own writers.
func (c *Component) Collect() error {
	n := c.inPorts.Size()
	for i := 0; i < n; i++ {
		port, err := c.inPorts.Index(i)
		if err != nil {
			return err
		}
		if err := c.inputs.SetIndex(i, port.Get()); err != nil {
			return err
		}
	}
	c.state = stateCollected
	return nil
}

// Execute invokes the functor with the private inputs/outputs dictionaries.
// The functor's only observable effect is the content of outputs after it
// returns; it must not mutate in_ports/out_ports or call other components'
// methods (not enforced at runtime, a caller obligation).
func (c *Component) Execute() error {
	if err := c.functor(c.inputs, c.outputs); err != nil {
		c.metrics.incFunctorError(c.name)
		c.log.Warnw("functor error", "component", c.name, "phase", "execute", "error", err)
		return fmt.Errorf("component %q: execute: %w", c.name, err)
	}
	c.state = stateExecuted
	return nil
}

// Expose publishes the private outputs dictionary into the declared
// out-ports, positionally: out_ports.Index(i).Set(outputs.Index(i)).
func (c *Component) Expose() error {
	n := c.outPorts.Size()
	for i := 0; i < n; i++ {
		port, err := c.outPorts.Index(i)
		if err != nil {
			return err
		}
		val, err := c.outputs.Index(i)
		if err != nil {
			return err
		}
		port.Set(val)
	}
	c.state = stateIdle
	return nil
}

// Input returns the most recently collected value for the named in-port,
// failing with KeyNotFoundError if name was never declared.
func (c *Component) Input(name string) (Buffer, error) {
	return c.inputs.At(name)
}

// Output returns the value most recently written by the functor for the
// named out-port, failing with KeyNotFoundError if name was never
// declared.
func (c *Component) Output(name string) (Buffer, error) {
	return c.outputs.At(name)
}

// ComponentOption configures a Component at construction time.
type ComponentOption interface {
	applyComponent(*Component)
}

type componentOptionFunc func(*Component)

func (f componentOptionFunc) applyComponent(c *Component) { f(c) }

// WithComponentLogger attaches a logger used for rare, non-hot-path events
// (a functor error returned from Execute, logged at Warn level).
func WithComponentLogger(l logger) ComponentOption {
	return componentOptionFunc(func(c *Component) {
		if l != nil {
			c.log = l
		}
	})
}

// WithComponentMetrics attaches a Prometheus registry that functor-error
// counts are reported to, labeled by component name.
func WithComponentMetrics(reg *prometheus.Registry) ComponentOption {
	return componentOptionFunc(func(c *Component) {
		c.metrics = newMetricsSink(reg)
	})
}
