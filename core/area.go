package core

// Arena is the playfield in world units; valid coordinates are [0, Width-1] x [0, Height-1]
type Arena struct {
	Width, Height int
}

// MaxX returns the far horizontal edge
func (a Arena) MaxX() float64 { return float64(a.Width - 1) }

// MaxY returns the far vertical edge
func (a Arena) MaxY() float64 { return float64(a.Height - 1) }
