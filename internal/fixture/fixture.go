// SPDX-License-Identifier: MIT

// Package fixture reads and writes named factor sets as YAML:
//
//	factors:
//	  - name: pa
//	    scope: [A]
//	    cardinality: [2]
//	    values: [0.6, 0.4]
//	    state_names:
//	      A: [no, yes]
package fixture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpgm/discrete"
	"github.com/katalvlaran/lvpgm/factor"
)

var (
	// ErrNoFactors is returned for a document without factors.
	ErrNoFactors = errors.New("fixture: document has no factors")

	// ErrDuplicateName is returned when two factors share a name.
	ErrDuplicateName = errors.New("fixture: duplicate factor name")

	// ErrNotFound is returned by Set.Get for an unknown name.
	ErrNotFound = errors.New("fixture: factor not found")
)

// Entry is the on-disk form of one factor.
type Entry struct {
	Name        string              `yaml:"name"`
	Scope       []string            `yaml:"scope,flow"`
	Cardinality []int               `yaml:"cardinality,flow"`
	Values      []float64           `yaml:"values,flow"`
	StateNames  map[string][]string `yaml:"state_names,omitempty"`
}

type document struct {
	Factors []Entry `yaml:"factors"`
}

// Named pairs a factor with its name in the document.
type Named struct {
	Name   string
	Factor *discrete.Factor
}

// Set is an ordered collection of uniquely named factors.
type Set []Named

// Get returns the factor called name.
func (s Set) Get(name string) (*discrete.Factor, error) {
	for _, n := range s {
		if n.Name == name {
			return n.Factor, nil
		}
	}

	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Factors returns the factors in document order.
func (s Set) Factors() []factor.Factor {
	out := make([]factor.Factor, len(s))
	for i, n := range s {
		out[i] = n.Factor
	}

	return out
}

// Parse decodes a YAML document into a Set. Unnamed factors get "phi<i>".
func Parse(data []byte) (Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parse: %w", err)
	}
	if len(doc.Factors) == 0 {
		return nil, ErrNoFactors
	}

	set := make(Set, 0, len(doc.Factors))
	seen := make(map[string]struct{}, len(doc.Factors))
	for i, e := range doc.Factors {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("phi%d", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
		seen[name] = struct{}{}

		phi, err := discrete.New(e.Scope, e.Cardinality, e.Values, discrete.WithStateNames(e.StateNames))
		if err != nil {
			return nil, fmt.Errorf("fixture: factor %q: %w", name, err)
		}
		set = append(set, Named{Name: name, Factor: phi})
	}

	return set, nil
}

// Load reads and parses the file at path.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %q: %w", path, err)
	}

	return Parse(data)
}

// EntryOf converts a factor to its on-disk form.
func EntryOf(name string, phi factor.Factor) Entry {
	return Entry{
		Name:        name,
		Scope:       phi.Scope(),
		Cardinality: phi.Cardinality(),
		Values:      phi.Values(),
		StateNames:  phi.StateNames(),
	}
}

// Write encodes entries as a single YAML document.
func Write(w io.Writer, entries ...Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Factors: entries}); err != nil {
		return fmt.Errorf("fixture: encode: %w", err)
	}

	return enc.Close()
}
