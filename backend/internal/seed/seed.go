// Package seed loads a family scenario from YAML and applies it to a tree.
//
// A scenario lists people under a local key and connections between keys:
//
//	people:
//	  - key: abe
//	    first_name: Abe
//	    last_name: Cohen
//	    gender: male
//	  - key: bea
//	    first_name: Bea
//	    last_name: Cohen
//	    gender: female
//	    cohort: 12
//	connections:
//	  - from: abe
//	    to: bea
//	    relation: FATHER
//
// The first person bootstraps the tree, so a scenario can only be applied
// to an empty tree.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"family-tree/backend/internal/graph"
	"family-tree/backend/internal/tree"
)

// Member describes one person of a scenario
type Member struct {
	Key       string        `yaml:"key"`
	FirstName string        `yaml:"first_name"`
	LastName  string        `yaml:"last_name"`
	Gender    *graph.Gender `yaml:"gender"`
	Cohort    *int          `yaml:"cohort,omitempty"`
}

// Connection relates two scenario keys; Relation is From's role toward To
type Connection struct {
	From     string     `yaml:"from"`
	To       string     `yaml:"to"`
	Relation graph.Kind `yaml:"relation"`
}

// Scenario is the YAML document
type Scenario struct {
	People      []Member     `yaml:"people"`
	Connections []Connection `yaml:"connections"`
}

// LoadFile reads a scenario from disk
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a scenario and checks that its keys are consistent
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	keys := make(map[string]bool, len(s.People))
	for i, m := range s.People {
		if m.Key == "" {
			return fmt.Errorf("person %d: key is required", i)
		}
		if keys[m.Key] {
			return fmt.Errorf("person %d: duplicate key %q", i, m.Key)
		}
		if m.Gender == nil {
			return fmt.Errorf("person %d: gender is required", i)
		}
		keys[m.Key] = true
	}
	for i, c := range s.Connections {
		if !keys[c.From] {
			return fmt.Errorf("connection %d: unknown person %q", i, c.From)
		}
		if !keys[c.To] {
			return fmt.Errorf("connection %d: unknown person %q", i, c.To)
		}
	}
	return nil
}

// Apply adds every person and connection to the tree in document order and
// returns the created people by key. An inconsistent scenario is rejected
// before anything is added. Otherwise Apply stops at the first rejected entry;
// entries applied before it stay in the tree.
func Apply(t *tree.Tree, s *Scenario, logger *zap.Logger) (map[string]*graph.Person, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	people := make(map[string]*graph.Person, len(s.People))
	for i, m := range s.People {
		var opts []graph.PersonOption
		if m.Cohort != nil {
			opts = append(opts, graph.WithCohort(*m.Cohort))
		}

		if i == 0 {
			p, err := t.Bootstrap(m.FirstName, m.LastName, *m.Gender, opts...)
			if err != nil {
				return people, fmt.Errorf("person %q: %w", m.Key, err)
			}
			people[m.Key] = p
			continue
		}
		people[m.Key] = t.AddPerson(m.FirstName, m.LastName, *m.Gender, opts...)
	}

	for i, c := range s.Connections {
		if err := t.ConnectExisting(people[c.From], people[c.To], c.Relation); err != nil {
			return people, fmt.Errorf("connection %d (%s %s %s): %w", i, c.From, c.Relation, c.To, err)
		}
	}

	logger.Info("Scenario applied",
		zap.Int("people", len(s.People)),
		zap.Int("connections", len(s.Connections)),
	)
	return people, nil
}
