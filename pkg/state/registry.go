// Package state provides the per-widget state store for stateful controls.
//
// Widgets are identified by opaque 32-bit ids produced by the host. Each id
// owns at most one Record holding a flag set and a scalar value, created the
// first time the widget asks for it and kept until the registry is reset.
// The registry borrows its backing array from the caller and never allocates.
package state

// Record is the state kept for one widget across frames.
type Record struct {
	// ID identifies the widget. Zero is reserved for "no widget".
	ID uint32

	// Flags holds widget-specific bits (for example "checked").
	Flags uint32

	// Value holds a widget-specific scalar (for example slider position 0..1).
	Value float32
}

// Has reports whether all bits in flag are set.
func (r *Record) Has(flag uint32) bool {
	return r.Flags&flag == flag
}

// Set sets or clears the bits in flag.
func (r *Record) Set(flag uint32, on bool) {
	if on {
		r.Flags |= flag
	} else {
		r.Flags &^= flag
	}
}

// Registry is a fixed-capacity, append-only store of Records.
//
// Live records occupy records[:count] in creation order. There is no
// individual removal; Init resets the whole registry.
type Registry struct {
	records []Record
	count   int
}

// NewRegistry returns a registry initialized over backing.
func NewRegistry(backing []Record) *Registry {
	r := &Registry{}
	r.Init(backing)
	return r
}

// Init zeroes every slot in backing and makes it the registry's storage.
// Records handed out before Init must not be used afterwards.
func (r *Registry) Init(backing []Record) {
	clear(backing)
	r.records = backing
	r.count = 0
}

// Get returns the record for id, or nil if none exists.
func (r *Registry) Get(id uint32) *Record {
	for i := 0; i < r.count; i++ {
		if r.records[i].ID == id {
			return &r.records[i]
		}
	}
	return nil
}

// GetOrCreate returns the record for id, appending a zero-valued one if it
// does not exist yet. It returns nil without mutating anything when the
// registry is full.
func (r *Registry) GetOrCreate(id uint32) *Record {
	if rec := r.Get(id); rec != nil {
		return rec
	}
	if r.count >= len(r.records) {
		return nil
	}
	rec := &r.records[r.count]
	*rec = Record{ID: id}
	r.count++
	return rec
}

// Count returns the number of live records.
func (r *Registry) Count() int {
	return r.count
}

// Cap returns the fixed capacity set by Init.
func (r *Registry) Cap() int {
	return len(r.records)
}

// Full reports whether GetOrCreate would fail for an unseen id.
func (r *Registry) Full() bool {
	return r.count >= len(r.records)
}

// Records returns the live records in creation order. The slice aliases the
// registry's storage.
func (r *Registry) Records() []Record {
	return r.records[:r.count]
}
