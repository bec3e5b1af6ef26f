package coord

// Optional holds either a coordinate or nothing.
// The zero value is None.
type Optional struct {
	c  Coord
	ok bool
}

// Some wraps c as a present coordinate.
func Some(c Coord) Optional {
	return Optional{c: c, ok: true}
}

// None returns the absent coordinate.
func None() Optional {
	return Optional{}
}

// Get returns the coordinate and whether it is present.
func (o Optional) Get() (Coord, bool) {
	return o.c, o.ok
}

// Valid reports whether a coordinate is present.
func (o Optional) Valid() bool {
	return o.ok
}

// String renders the coordinate, or "none" when absent.
func (o Optional) String() string {
	if !o.ok {
		return "none"
	}
	return o.c.String()
}
