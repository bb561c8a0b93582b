package presentation

import "github.com/google/uuid"

// registry resolves presentation IDs. Surfaces and callbacks hold IDs
// rather than pointers so that a torn-down presentation is unreachable.
type registry struct {
	byID map[uuid.UUID]*Presentation
}

func newRegistry() *registry {
	return &registry{byID: make(map[uuid.UUID]*Presentation)}
}

func (r *registry) add(p *Presentation) {
	r.byID[p.id] = p
}

func (r *registry) remove(id uuid.UUID) {
	delete(r.byID, id)
}

func (r *registry) lookup(id uuid.UUID) (*Presentation, bool) {
	p, ok := r.byID[id]
	return p, ok
}
