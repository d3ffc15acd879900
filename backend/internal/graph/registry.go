package graph

import "sort"

// Registry owns the people of one tree and hands out their identifiers.
// It is not safe for concurrent use.
type Registry struct {
	lastID int
	people map[int]*Person
}

// NewRegistry creates an empty registry; the first identifier is 1
func NewRegistry() *Registry {
	return &Registry{
		people: make(map[int]*Person),
	}
}

// Create builds a Person with the next identifier. Names are not validated
// and the person is not registered yet.
func (r *Registry) Create(firstName, lastName string, gender Gender, opts ...PersonOption) *Person {
	r.lastID++
	p := &Person{
		ID:        r.lastID,
		FirstName: firstName,
		LastName:  lastName,
		Gender:    gender,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register records the person under its identifier, overwriting any
// previous entry for the same identifier.
func (r *Registry) Register(p *Person) {
	r.people[p.ID] = p
}

// IsRegistered reports whether the identifier was registered
func (r *Registry) IsRegistered(id int) bool {
	_, ok := r.people[id]
	return ok
}

// Get returns the registered person with the identifier
func (r *Registry) Get(id int) (*Person, bool) {
	p, ok := r.people[id]
	return p, ok
}

// People returns every registered person ordered by identifier
func (r *Registry) People() []*Person {
	people := make([]*Person, 0, len(r.people))
	for _, p := range r.people {
		people = append(people, p)
	}
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })
	return people
}

// Len returns the number of registered people
func (r *Registry) Len() int {
	return len(r.people)
}
