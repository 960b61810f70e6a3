package core

import "fmt"

// Box is the particle store: an ordered particle sequence plus a live count
// The count always equals the sequence length; violations panic
type Box struct {
	particles []Particle
	n         int
	capacity  int
}

// NewBox creates an empty store holding at most capacity particles
func NewBox(capacity int) *Box {
	if capacity <= 0 {
		panic(fmt.Sprintf("box: capacity must be positive, got %d", capacity))
	}
	return &Box{
		particles: make([]Particle, 0, capacity),
		capacity:  capacity,
	}
}

// Len returns the live particle count
func (b *Box) Len() int {
	b.check()
	return b.n
}

// Cap returns the store capacity
func (b *Box) Cap() int {
	return b.capacity
}

// Full reports whether another particle would exceed capacity
func (b *Box) Full() bool {
	return b.Len() >= b.capacity
}

// At returns a copy of the particle at index i, panicking when out of range
func (b *Box) At(i int) Particle {
	b.check()
	return b.particles[i]
}

// Particles returns a copy of the sequence in store order
func (b *Box) Particles() []Particle {
	b.check()
	out := make([]Particle, b.n)
	copy(out, b.particles)
	return out
}

// Find returns the particle with the given ID
func (b *Box) Find(id ID) (Particle, bool) {
	if i := b.indexOf(id); i >= 0 {
		return b.particles[i], true
	}
	return Particle{}, false
}

// Contains reports whether a live particle carries the ID
func (b *Box) Contains(id ID) bool {
	return b.indexOf(id) >= 0
}

// Slice exposes the backing sequence for in-place mutation by the owner of the Box
// Owners hand out a View instead of the Box itself
func (b *Box) Slice() []Particle {
	b.check()
	return b.particles
}

// Append adds a particle, returning false without change when at capacity
// Duplicate IDs and the avatar ID are programmer errors and panic
func (b *Box) Append(p Particle) bool {
	b.check()
	if p.IsAvatar() {
		panic("box: avatar ID assigned to ordinary particle")
	}
	if b.indexOf(p.ID) >= 0 {
		panic(fmt.Sprintf("box: duplicate particle ID %d", p.ID))
	}
	if b.n >= b.capacity {
		return false
	}
	b.particles = append(b.particles, p)
	b.n++
	return true
}

// RemoveIf deletes every particle matching pred, preserving the order of the rest
// Returns the number removed; the count drops by one per removal
func (b *Box) RemoveIf(pred func(p *Particle) bool) int {
	b.check()
	kept := b.particles[:0]
	removed := 0
	for i := range b.particles {
		if pred(&b.particles[i]) {
			removed++
			b.n--
			continue
		}
		kept = append(kept, b.particles[i])
	}
	// Zero the tail so removed records do not linger in the backing array
	for i := len(kept); i < len(b.particles); i++ {
		b.particles[i] = Particle{}
	}
	b.particles = kept
	b.check()
	return removed
}

func (b *Box) indexOf(id ID) int {
	for i := range b.particles {
		if b.particles[i].ID == id {
			return i
		}
	}
	return -1
}

// check enforces the count invariant
func (b *Box) check() {
	if b.n != len(b.particles) {
		panic(fmt.Sprintf("box: count %d does not match sequence length %d", b.n, len(b.particles)))
	}
}

// View is a read-only handle on a Box
type View struct {
	b *Box
}

// View returns a read-only handle sharing the Box's state
func (b *Box) View() View {
	return View{b: b}
}

// Len, Cap, Full, At, Particles, Find and Contains mirror the Box accessors
func (v View) Len() int { return v.b.Len() }
func (v View) Cap() int { return v.b.Cap() }
func (v View) Full() bool { return v.b.Full() }
func (v View) At(i int) Particle { return v.b.At(i) }
func (v View) Particles() []Particle { return v.b.Particles() }
func (v View) Find(id ID) (Particle, bool) { return v.b.Find(id) }
func (v View) Contains(id ID) bool { return v.b.Contains(id) }
