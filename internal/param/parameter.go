package param

import (
	"fmt"
)

// Parameter is a named, singly-owned float32 buffer with an optional
// gradient buffer. Copies of the pointer are reference sites, not copies
// of the data; all of them observe the same values and gradients.
//
// Parameters are not safe for concurrent mutation.
type Parameter struct {
	name string
	data []float32
	grad []float32 // allocated on first accumulation
}

// New creates a parameter that takes ownership of data.
func New(name string, data []float32) *Parameter {
	return &Parameter{
		name: name,
		data: data,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the underlying buffer. Mutations are visible to every
// reference site.
func (p *Parameter) Data() []float32 {
	return p.data
}

// Len returns the number of elements.
func (p *Parameter) Len() int {
	return len(p.data)
}

// Grad returns the gradient buffer, or nil if nothing has been
// accumulated since the last ZeroGrad.
func (p *Parameter) Grad() []float32 {
	return p.grad
}

// AccumulateGrad adds a contribution into the shared gradient buffer,
// allocating it on first use. Contributions are always summed, never
// overwritten, so every reference site of a tied parameter lands in the
// same buffer.
func (p *Parameter) AccumulateGrad(contrib []float32) error {
	if len(contrib) != len(p.data) {
		return fmt.Errorf("gradient size %d does not match parameter %q size %d",
			len(contrib), p.name, len(p.data))
	}
	if p.grad == nil {
		p.grad = make([]float32, len(p.data))
	}
	for i, g := range contrib {
		p.grad[i] += g
	}
	return nil
}

// ZeroGrad clears the gradient buffer. Call before each accumulation pass
// to avoid carrying gradients over from the previous one.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
