package param

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/seg-ml/seg/internal/serialization"
)

const (
	sectionPrefix = "param."
	aliasPrefix   = "alias."
)

// Store is an ordered, named registry of parameters: the named-buffer
// storage and retrieval surface used for checkpointing.
type Store struct {
	order   []string
	params  map[string]*Parameter
	aliases map[string]string // alias -> canonical name
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		params:  make(map[string]*Parameter),
		aliases: make(map[string]string),
	}
}

// Register adds a parameter under a canonical name.
func (s *Store) Register(name string, p *Parameter) error {
	if name == "" {
		return fmt.Errorf("empty parameter name")
	}
	if _, exists := s.params[name]; exists {
		return fmt.Errorf("parameter %q already registered", name)
	}
	if _, exists := s.aliases[name]; exists {
		return fmt.Errorf("parameter name %q already used as an alias", name)
	}
	s.order = append(s.order, name)
	s.params[name] = p
	return nil
}

// Tie registers an additional reference site for an existing parameter.
// Get on the alias resolves to the very same *Parameter, so gradient
// contributions from either site accumulate into one buffer.
func (s *Store) Tie(alias, name string) error {
	if _, ok := s.params[name]; !ok {
		return fmt.Errorf("cannot tie %q: parameter %q not registered", alias, name)
	}
	if _, exists := s.params[alias]; exists {
		return fmt.Errorf("cannot tie %q: name already registered", alias)
	}
	if _, exists := s.aliases[alias]; exists {
		return fmt.Errorf("cannot tie %q: alias already exists", alias)
	}
	s.aliases[alias] = name
	return nil
}

// Get returns the parameter registered under name, resolving aliases.
func (s *Store) Get(name string) (*Parameter, bool) {
	if canonical, ok := s.aliases[name]; ok {
		name = canonical
	}
	p, ok := s.params[name]
	return p, ok
}

// Names returns the canonical parameter names in registration order.
func (s *Store) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Save checkpoints every unique buffer to a .segf file. Each canonical
// parameter becomes one "param.<name>" section; ties are recorded as
// metadata so they survive a round trip without duplicating data.
func (s *Store) Save(path string) error {
	w := serialization.NewWriter()
	for _, name := range s.order {
		if err := w.Add(sectionPrefix+name, serialization.KindFloat32, encodeFloat32(s.params[name].Data())); err != nil {
			return fmt.Errorf("failed to add parameter %q: %w", name, err)
		}
	}
	for alias, name := range s.aliases {
		w.SetMetadata(aliasPrefix+alias, name)
	}
	return w.Save(path)
}

// LoadStore reads a checkpoint written by Save, restoring parameters in
// file order and re-establishing ties.
func LoadStore(path string) (*Store, error) {
	r, err := serialization.Open(path)
	if err != nil {
		return nil, err
	}

	s := NewStore()
	for _, meta := range r.Sections() {
		name, ok := strings.CutPrefix(meta.Name, sectionPrefix)
		if !ok {
			continue
		}
		payload, _ := r.Section(meta.Name)
		data, err := decodeFloat32(payload)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		if err := s.Register(name, New(name, data)); err != nil {
			return nil, err
		}
	}
	for key, canonical := range r.Header().Metadata {
		alias, ok := strings.CutPrefix(key, aliasPrefix)
		if !ok {
			continue
		}
		if err := s.Tie(alias, canonical); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func encodeFloat32(data []float32) []byte {
	out := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}
	return out
}

func decodeFloat32(payload []byte) ([]float32, error) {
	if len(payload)%4 != 0 {
		return nil, fmt.Errorf("float32 payload size %d is not a multiple of 4", len(payload))
	}
	out := make([]float32, len(payload)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(payload[4*i:]))
	}
	return out, nil
}
