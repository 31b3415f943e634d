package capture

import "github.com/google/uuid"

// Pending holds effects that are still animating, in request order
type Pending struct {
	order []uuid.UUID
	items map[uuid.UUID]EffectRequest
}

// NewPending returns an empty set
func NewPending() *Pending {
	return &Pending{items: make(map[uuid.UUID]EffectRequest)}
}

// Add queues req. A request whose ID is already pending is ignored.
func (p *Pending) Add(req EffectRequest) bool {
	if _, exists := p.items[req.ID]; exists {
		return false
	}
	p.items[req.ID] = req
	p.order = append(p.order, req.ID)
	return true
}

// Complete removes the effect with id. Completing an unknown id is a no-op.
func (p *Pending) Complete(id uuid.UUID) bool {
	if _, exists := p.items[id]; !exists {
		return false
	}
	delete(p.items, id)
	for i, other := range p.order {
		if other == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns the pending effects oldest first
func (p *Pending) List() []EffectRequest {
	out := make([]EffectRequest, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.items[id])
	}
	return out
}

// Len returns the number of pending effects
func (p *Pending) Len() int {
	return len(p.order)
}

// Clear drops every pending effect
func (p *Pending) Clear() {
	p.order = nil
	p.items = make(map[uuid.UUID]EffectRequest)
}
