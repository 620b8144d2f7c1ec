package builder

import "sync"

// Registry is the ordered collection of currently mounted fields.
type Registry struct {
	mu      sync.RWMutex
	entries []registration
	nextID  uint64
}

// registration pairs a field with the id handed to its unregister func.
type registration struct {
	id    uint64
	field Field
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register mounts a field. A field whose key is already registered replaces
// the earlier one in place. The returned func unregisters this registration
// only; once the key has been replaced it does nothing.
func (r *Registry) Register(f Field) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	reg := registration{id: r.nextID, field: f}

	key := f.Key()
	replaced := false
	for i, e := range r.entries {
		if e.field.Key() == key {
			r.entries[i] = reg
			replaced = true
			break
		}
	}
	if !replaced {
		r.entries = append(r.entries, reg)
	}
	return func() { r.unregisterID(reg.id) }
}

// Unregister removes the field with the given key.
func (r *Registry) Unregister(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.field.Key() == key {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *Registry) unregisterID(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Find returns the mounted field with the given key.
func (r *Registry) Find(key string) (Field, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.field.Key() == key {
			return e.field, true
		}
	}
	return nil, false
}

// Fields returns a snapshot of the mounted fields in registration order.
func (r *Registry) Fields() []Field {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Field, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.field
	}
	return out
}

// Len returns the number of mounted fields.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear unmounts every field.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
