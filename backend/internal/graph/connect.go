package graph

import (
	"go.uber.org/zap"

	apperrors "family-tree/backend/pkg/errors"
)

// Connector validates relationships and inserts both directed edges of each
// accepted one. It is not safe for concurrent use.
type Connector struct {
	graph  *Graph
	logger *zap.Logger
}

// NewConnector creates a connector over the graph
func NewConnector(g *Graph, logger *zap.Logger) *Connector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Connector{
		graph:  g,
		logger: logger,
	}
}

// Connect relates one to two, where kind is one's role toward two
// (FATHER means one is two's father). The reciprocal edge is derived and both
// are appended, or neither is when validation fails.
func (c *Connector) Connect(one, two *Person, kind Kind) error {
	if err := c.connect(one, two, kind); err != nil {
		c.logger.Debug("Relationship rejected",
			zap.Int("member_one", memberID(one)),
			zap.Int("member_two", memberID(two)),
			zap.Stringer("kind", kind),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("Relationship added",
		zap.Int("member_one", one.ID),
		zap.Int("member_two", two.ID),
		zap.Stringer("kind", kind),
	)
	return nil
}

func (c *Connector) connect(one, two *Person, kind Kind) error {
	if err := c.validateMembersExist(one, two); err != nil {
		return err
	}
	if one.ID == two.ID {
		return apperrors.NewInvalidRelationship(one.ID, one.FullName(), kind.String(), apperrors.ReasonSelf)
	}

	switch kind.Family() {
	case FamilyMarriage:
		return c.addMarriage(one, two)
	case FamilyParentChild:
		return c.addParentChild(one, two, kind)
	case FamilyChildParent:
		return c.addChildParent(one, two, kind)
	case FamilyGrand:
		if kind == Grandfather || kind == Grandmother {
			return c.addGrandparentGrandchild(one, two, kind)
		}
		return c.addGrandchildGrandparent(one, two, kind)
	case FamilyPeer:
		c.graph.Append(one.ID, two, kind)
		c.graph.Append(two.ID, one, kind)
		return nil
	}
	return apperrors.NewInvalidRelationship(one.ID, one.FullName(), kind.String(), apperrors.ReasonUnknownKind)
}

func (c *Connector) validateMembersExist(one, two *Person) error {
	for _, p := range []*Person{one, two} {
		if p == nil {
			return apperrors.NewMemberNotRegistered(0, "", apperrors.ScopeGraph)
		}
		if !c.graph.Has(p.ID) {
			return apperrors.NewMemberNotRegistered(p.ID, p.FullName(), apperrors.ScopeGraph)
		}
	}
	return nil
}

// memberID is 0 for a nil person
func memberID(p *Person) int {
	if p == nil {
		return 0
	}
	return p.ID
}

func validateGenderRole(p *Person, kind Kind) error {
	expected, ok := kind.ExpectedGender()
	if ok && p.Gender != expected {
		return apperrors.NewInvalidGenderRole(p.ID, p.FullName(), p.Gender.String(), expected.String(), kind.String())
	}
	return nil
}

func (c *Connector) validateAtMostOne(p *Person, kind Kind) error {
	if c.graph.holds(p.ID, kind) {
		return apperrors.NewInvalidRelationship(p.ID, p.FullName(), kind.String(), apperrors.ReasonDuplicate)
	}
	return nil
}

func (c *Connector) addMarriage(one, two *Person) error {
	if err := c.validateAtMostOne(one, Marriage); err != nil {
		return err
	}
	if err := c.validateAtMostOne(two, Marriage); err != nil {
		return err
	}
	if one.Gender == two.Gender {
		return apperrors.NewInvalidRelationship(one.ID, one.FullName(), Marriage.String(), apperrors.ReasonSameGenderMarriage)
	}

	c.graph.Append(two.ID, one, Marriage)
	c.graph.Append(one.ID, two, Marriage)
	return nil
}

func (c *Connector) addParentChild(parent, child *Person, parentRelation Kind) error {
	if err := validateGenderRole(parent, parentRelation); err != nil {
		return err
	}
	if err := c.validateAtMostOne(child, parentRelation); err != nil {
		return err
	}

	c.graph.Append(child.ID, parent, parentRelation)
	c.graph.Append(parent.ID, child, childKind(child.Gender))
	return nil
}

func (c *Connector) addChildParent(child, parent *Person, childRelation Kind) error {
	parentRelation := parentKind(parent.Gender)
	if err := validateGenderRole(child, childRelation); err != nil {
		return err
	}
	if err := c.validateAtMostOne(child, parentRelation); err != nil {
		return err
	}

	c.graph.Append(child.ID, parent, parentRelation)
	c.graph.Append(parent.ID, child, childRelation)
	return nil
}

// Grandparents are not limited in number.
func (c *Connector) addGrandparentGrandchild(grandparent, grandchild *Person, grandparentRelation Kind) error {
	if err := validateGenderRole(grandparent, grandparentRelation); err != nil {
		return err
	}

	c.graph.Append(grandchild.ID, grandparent, grandparentRelation)
	c.graph.Append(grandparent.ID, grandchild, grandchildKind(grandchild.Gender))
	return nil
}

func (c *Connector) addGrandchildGrandparent(grandchild, grandparent *Person, grandchildRelation Kind) error {
	if err := validateGenderRole(grandchild, grandchildRelation); err != nil {
		return err
	}

	c.graph.Append(grandchild.ID, grandparent, grandparentKind(grandparent.Gender))
	c.graph.Append(grandparent.ID, grandchild, grandchildRelation)
	return nil
}

// Available lists the kinds p can still take on: MARRIAGE disappears once p
// is married, FATHER and MOTHER once p has one.
func (c *Connector) Available(p *Person) []Kind {
	available := make([]Kind, 0, len(Kinds))
	for _, k := range Kinds {
		switch k {
		case Marriage, Father, Mother:
			if c.graph.holds(p.ID, k) {
				continue
			}
		}
		available = append(available, k)
	}
	return available
}
