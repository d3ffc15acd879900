// Package tree coordinates the person registry and the relationship graph
// behind a single facade. A Tree has one owner; callers that share it across
// goroutines must serialise access themselves.
package tree

import (
	"go.uber.org/zap"

	"family-tree/backend/internal/graph"
	apperrors "family-tree/backend/pkg/errors"
)

// Tree owns one registry and one graph
type Tree struct {
	registry  *graph.Registry
	graph     *graph.Graph
	connector *graph.Connector
	logger    *zap.Logger
}

// New creates an empty tree
func New(logger *zap.Logger) *Tree {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := graph.NewGraph()
	return &Tree{
		registry:  graph.NewRegistry(),
		graph:     g,
		connector: graph.NewConnector(g, logger.Named("connector")),
		logger:    logger,
	}
}

// AddPerson creates a person, registers it and gives it an empty edge list
func (t *Tree) AddPerson(firstName, lastName string, gender graph.Gender, opts ...graph.PersonOption) *graph.Person {
	p := t.registry.Create(firstName, lastName, gender, opts...)
	t.registry.Register(p)
	t.graph.Init(p.ID)

	t.logger.Info("Member added",
		zap.Int("member_id", p.ID),
		zap.String("name", p.FullName()),
		zap.Stringer("gender", p.Gender),
		zap.Bool("institutional", p.IsInstitutional()),
	)
	return p
}

// Bootstrap adds the first member of an empty tree
func (t *Tree) Bootstrap(firstName, lastName string, gender graph.Gender, opts ...graph.PersonOption) (*graph.Person, error) {
	if n := t.registry.Len(); n > 0 {
		return nil, apperrors.NewTreeNotEmpty(n)
	}
	return t.AddPerson(firstName, lastName, gender, opts...), nil
}

// ConnectExisting relates two registered people; kind is one's role toward two.
func (t *Tree) ConnectExisting(one, two *graph.Person, kind graph.Kind) error {
	for _, p := range []*graph.Person{one, two} {
		if p == nil {
			return apperrors.NewMemberNotRegistered(0, "", apperrors.ScopeTree)
		}
		if !t.registry.IsRegistered(p.ID) {
			return apperrors.NewMemberNotRegistered(p.ID, p.FullName(), apperrors.ScopeTree)
		}
	}
	return t.connector.Connect(one, two, kind)
}

// ConnectByID resolves both identifiers and connects them
func (t *Tree) ConnectByID(oneID, twoID int, kind graph.Kind) error {
	one, err := t.lookup(oneID)
	if err != nil {
		return err
	}
	two, err := t.lookup(twoID)
	if err != nil {
		return err
	}
	return t.ConnectExisting(one, two, kind)
}

func (t *Tree) lookup(id int) (*graph.Person, error) {
	p, ok := t.registry.Get(id)
	if !ok {
		return nil, apperrors.NewMemberNotRegistered(id, "", apperrors.ScopeTree)
	}
	return p, nil
}

// Person returns the registered person with the identifier
func (t *Tree) Person(id int) (*graph.Person, bool) {
	return t.registry.Get(id)
}

// People returns every member ordered by identifier
func (t *Tree) People() []*graph.Person {
	return t.registry.People()
}

// Edges returns the member's edges in insertion order
func (t *Tree) Edges(id int) ([]graph.Edge, error) {
	if !t.graph.Has(id) {
		return nil, apperrors.NewMemberNotRegistered(id, "", apperrors.ScopeGraph)
	}
	return t.graph.Edges(id), nil
}

// Available lists the relationship kinds the member can still take on
func (t *Tree) Available(id int) ([]graph.Kind, error) {
	p, err := t.lookup(id)
	if err != nil {
		return nil, err
	}
	return t.connector.Available(p), nil
}

// Len returns the number of members
func (t *Tree) Len() int {
	return t.registry.Len()
}
