package graph

import (
	"fmt"
	"strings"
)

// Gender is the member's sex flag. Male is true.
type Gender bool

const (
	Female Gender = false
	Male   Gender = true
)

// String returns "male" or "female"
func (g Gender) String() string {
	if g == Male {
		return "male"
	}
	return "female"
}

// MarshalText implements encoding.TextMarshaler
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// ParseGender accepts male/female and m/f in any case.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return Female, fmt.Errorf("unknown gender %q", s)
}

// Person is a member of the family tree.
// Only the registry assigns ID; a Person is never mutated after creation.
type Person struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    Gender `json:"gender"`
	// Cohort is set for institutional members. Zero means the member belongs
	// to the institution without a cohort.
	Cohort *int `json:"cohort,omitempty"`
}

// FullName joins first and last name
func (p *Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// IsInstitutional reports whether the member carries a cohort attribute
func (p *Person) IsInstitutional() bool {
	return p.Cohort != nil
}

// PersonOption customises a Person at creation time
type PersonOption func(*Person)

// WithCohort marks the person as an institutional member of the given cohort
func WithCohort(cohort int) PersonOption {
	return func(p *Person) {
		c := cohort
		p.Cohort = &c
	}
}
