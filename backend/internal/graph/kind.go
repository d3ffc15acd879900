package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is a relationship label as seen from the edge owner's perspective.
type Kind int

const (
	Father Kind = iota + 1
	Mother
	Son
	Daughter
	Grandfather
	Grandmother
	Grandson
	Granddaughter
	Marriage
	Siblings
	Cousins
)

// Kinds lists every relationship kind in declaration order
var Kinds = []Kind{
	Father, Mother, Son, Daughter,
	Grandfather, Grandmother, Grandson, Granddaughter,
	Marriage, Siblings, Cousins,
}

var kindNames = map[Kind]string{
	Father:        "FATHER",
	Mother:        "MOTHER",
	Son:           "SON",
	Daughter:      "DAUGHTER",
	Grandfather:   "GRANDFATHER",
	Grandmother:   "GRANDMOTHER",
	Grandson:      "GRANDSON",
	Granddaughter: "GRANDDAUGHTER",
	Marriage:      "MARRIAGE",
	Siblings:      "SIBLINGS",
	Cousins:       "COUSINS",
}

// String returns the upper-case name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind resolves a kind by name, ignoring case
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown relationship %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown relationship %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ExpectedGender returns the gender a member must have to hold this role.
// MARRIAGE, SIBLINGS and COUSINS carry no expectation.
func (k Kind) ExpectedGender() (Gender, bool) {
	switch k {
	case Father, Son, Grandfather, Grandson:
		return Male, true
	case Mother, Daughter, Grandmother, Granddaughter:
		return Female, true
	}
	return Female, false
}

// Family groups kinds that share a reciprocal rule.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyMarriage
	FamilyParentChild
	FamilyChildParent
	FamilyGrand
	FamilyPeer
)

// Family returns the handler family of the kind
func (k Kind) Family() Family {
	switch k {
	case Marriage:
		return FamilyMarriage
	case Father, Mother:
		return FamilyParentChild
	case Son, Daughter:
		return FamilyChildParent
	case Grandfather, Grandmother, Grandson, Granddaughter:
		return FamilyGrand
	case Siblings, Cousins:
		return FamilyPeer
	}
	return FamilyUnknown
}

func parentKind(g Gender) Kind {
	if g == Male {
		return Father
	}
	return Mother
}

func childKind(g Gender) Kind {
	if g == Male {
		return Son
	}
	return Daughter
}

func grandparentKind(g Gender) Kind {
	if g == Male {
		return Grandfather
	}
	return Grandmother
}

func grandchildKind(g Gender) Kind {
	if g == Male {
		return Grandson
	}
	return Granddaughter
}

// Priority orders kinds for display; lower comes first.
func (k Kind) Priority() int {
	switch k {
	case Marriage:
		return 1
	case Son, Daughter:
		return 2
	case Father, Mother:
		return 3
	case Siblings:
		return 4
	case Grandson, Granddaughter:
		return 5
	case Grandfather, Grandmother:
		return 6
	case Cousins:
		return 9
	}
	return 100
}

// SortEdges returns a copy of edges ordered by kind priority,
// keeping insertion order within the same priority.
func SortEdges(edges []Edge) []Edge {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Kind.Priority() < sorted[j].Kind.Priority()
	})
	return sorted
}
