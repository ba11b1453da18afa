package regexdfa

// Hashable is a map key with structural equality.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. The subset constructor keys it by
// StateSet and the minimizer by state signatures. It is not safe for concurrent use.
type HashMap[T any] struct {
	buckets []*entry[T]
	size    int
	mask    uint64
}

// loadFactor is the keys per bucket ratio above which the map doubles its buckets.
const loadFactor = 0.75

// entry is one key/value pair in a bucket chain. The key hash is kept for resizing.
type entry[T any] struct {
	key   Hashable
	hash  uint64
	value T
	next  *entry[T]
}

type mapOptions struct {
	capacity int // rounded up to a power of two, default 1
}

type MapOption func(o *mapOptions)

// WithCapacity sizes the bucket array for about capacity keys.
func WithCapacity(capacity int) MapOption {
	return func(o *mapOptions) {
		o.capacity = capacity
	}
}

// NewHashMap creates a map whose capacity is rounded up to a power of two.
func NewHashMap[T any](opts ...MapOption) *HashMap[T] {
	o := &mapOptions{capacity: 1}
	for _, opt := range opts {
		opt(o)
	}
	n := 1
	for n < o.capacity {
		n <<= 1
	}
	return &HashMap[T]{
		buckets: make([]*entry[T], n),
		mask:    uint64(n - 1),
	}
}

func (m *HashMap[T]) find(key Hashable, hash uint64) *entry[T] {
	for e := m.buckets[hash&m.mask]; e != nil; e = e.next {
		if e.hash == hash && e.key.Equals(key) {
			return e
		}
	}
	return nil
}

// Set inserts or replaces the value for key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	hash := key.Hash()
	if e := m.find(key, hash); e != nil {
		e.value = value
		return
	}
	i := hash & m.mask
	m.buckets[i] = &entry[T]{key: key, hash: hash, value: value, next: m.buckets[i]}
	m.size++
	if float64(m.size) > loadFactor*float64(len(m.buckets)) {
		m.grow()
	}
}

// Get returns the value for key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	if e := m.find(key, key.Hash()); e != nil {
		return e.value, true
	}
	var zero T
	return zero, false
}

// GetOrSet returns the value stored for key, storing the result of create first if key is absent.
// The second result is true when the value was already present.
func (m *HashMap[T]) GetOrSet(key Hashable, create func() T) (T, bool) {
	if v, ok := m.Get(key); ok {
		return v, true
	}
	v := create()
	m.Set(key, v)
	return v, false
}

// grow doubles the bucket array and relinks the existing entries.
func (m *HashMap[T]) grow() {
	buckets := make([]*entry[T], len(m.buckets)<<1)
	mask := uint64(len(buckets) - 1)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			i := e.hash & mask
			e.next = buckets[i]
			buckets[i] = e
			e = next
		}
	}
	m.buckets = buckets
	m.mask = mask
}

// Size returns the number of entries.
func (m *HashMap[T]) Size() int {
	return m.size
}
