package resource

import "github.com/wippyai/fpgaio/errors"

// Describer is anything that carries a Descriptor, such as a register.
type Describer interface {
	Descriptor() Descriptor
}

// Map is an ordered set of register descriptors keyed by name.
type Map struct {
	index map[string]int
	descs []Descriptor
}

// NewMap builds a map from registers in declaration order.
func NewMap(regs ...Describer) (*Map, error) {
	m := &Map{index: make(map[string]int, len(regs))}
	for _, r := range regs {
		if err := m.Add(r.Descriptor()); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add appends a descriptor. Names must be unique.
func (m *Map) Add(d Descriptor) error {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if _, ok := m.index[d.Name]; ok {
		return errors.Duplicate(errors.PhaseInit, "register", d.Name)
	}
	m.index[d.Name] = len(m.descs)
	m.descs = append(m.descs, d)
	return nil
}

// Lookup returns the descriptor registered under name.
func (m *Map) Lookup(name string) (Descriptor, bool) {
	i, ok := m.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return m.descs[i], true
}

// Len returns the number of registers.
func (m *Map) Len() int {
	return len(m.descs)
}

// Each calls fn for every descriptor in declaration order until fn returns false.
func (m *Map) Each(fn func(Descriptor) bool) {
	for _, d := range m.descs {
		if !fn(d) {
			return
		}
	}
}

// Descriptors returns a copy of the descriptors in declaration order.
func (m *Map) Descriptors() []Descriptor {
	out := make([]Descriptor, len(m.descs))
	copy(out, m.descs)
	return out
}

// Validate reports the first register that does not fit in span.
func (m *Map) Validate(span uint32) error {
	for _, d := range m.descs {
		if err := d.Check(errors.PhaseInit, span); err != nil {
			return err
		}
	}
	return nil
}
