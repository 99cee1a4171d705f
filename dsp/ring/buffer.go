package ring

// Buffer is a circular buffer over caller-owned storage.
//
// Logical indexing is newest-relative: At(0) is the most recently
// pushed-front element and At(Count()-1) the oldest. The zero value is an
// unbound buffer on which every operation is a no-op.
type Buffer[T any] struct {
	storage   []T
	mask      int
	head      int // next write slot
	tail      int // oldest occupied slot
	count     int
	safeErase bool
}

// New binds a buffer to storage. len(storage) must be a power of two >= 4.
//
// Under the FailFast policy an unusable capacity returns a wrapped
// ErrCapacityTooSmall or ErrCapacityNotPowerOfTwo. Under SilentInvalid the
// returned buffer is unbound and Valid reports false.
func New[T any](storage []T, opts ...Option) (*Buffer[T], error) {
	cfg := ApplyOptions(opts...)
	b := &Buffer[T]{safeErase: cfg.SafeErase}
	if err := validateCapacity(len(storage)); err != nil {
		if cfg.Policy == SilentInvalid {
			return b, nil
		}
		return nil, err
	}
	b.bind(storage, cfg)
	return b, nil
}

// Init rebinds the buffer and resets it to empty. A nil storage unbinds the
// buffer. Capacity errors follow the configured ErrorPolicy; on any error the
// buffer is left unbound.
func (b *Buffer[T]) Init(storage []T, opts ...Option) error {
	cfg := ApplyOptions(opts...)
	b.storage, b.mask = nil, 0
	b.head, b.tail, b.count = 0, 0, 0
	b.safeErase = cfg.SafeErase
	if storage == nil {
		return nil
	}
	if err := validateCapacity(len(storage)); err != nil {
		if cfg.Policy == SilentInvalid {
			return nil
		}
		return err
	}
	b.bind(storage, cfg)
	return nil
}

func (b *Buffer[T]) bind(storage []T, cfg Config) {
	b.storage = storage
	b.mask = len(storage) - 1
	if cfg.SafeErase || cfg.ZeroOnInit {
		b.Erase()
	}
}

// PushFront stores v as the newest element. When the buffer is already full
// the oldest element is evicted and returned with ok set.
func (b *Buffer[T]) PushFront(v T) (evicted T, ok bool) {
	if b.storage == nil {
		return evicted, false
	}

	b.storage[b.head] = v
	b.head = (b.head + 1) & b.mask
	if b.head == b.tail {
		evicted = b.storage[b.tail]
		b.tail = (b.tail + 1) & b.mask
		return evicted, true
	}
	b.count++
	return evicted, false
}

// PushBack stores v as the oldest element. When the buffer is already full
// the newest element is evicted and returned with ok set.
func (b *Buffer[T]) PushBack(v T) (evicted T, ok bool) {
	if b.storage == nil {
		return evicted, false
	}

	b.tail = (b.tail - 1) & b.mask
	b.storage[b.tail] = v
	if b.head == b.tail {
		b.head = (b.head - 1) & b.mask
		return b.storage[b.head], true
	}
	b.count++
	return evicted, false
}

// PopFront removes and returns the newest element.
func (b *Buffer[T]) PopFront() (v T, ok bool) {
	if b.storage == nil || b.head == b.tail {
		return v, false
	}

	b.head = (b.head - 1) & b.mask
	b.count--
	return b.storage[b.head], true
}

// PopBack removes and returns the oldest element.
func (b *Buffer[T]) PopBack() (v T, ok bool) {
	if b.storage == nil || b.head == b.tail {
		return v, false
	}

	v = b.storage[b.tail]
	b.tail = (b.tail + 1) & b.mask
	b.count--
	return v, true
}

// At returns the element index positions back from the newest one.
//
// An index outside [0, Count()) returns the zero value of T. The zero value
// is also a legitimate stored value, so an out-of-range read is a caller bug
// that cannot be detected from the result alone.
func (b *Buffer[T]) At(index int) T {
	if b.storage == nil || index < 0 || index >= b.count {
		var zero T
		return zero
	}
	return b.storage[(b.head-1-index)&b.mask]
}

// First returns the newest element, or the zero value when empty.
func (b *Buffer[T]) First() T {
	if b.storage == nil || b.head == b.tail {
		var zero T
		return zero
	}
	return b.storage[(b.head-1)&b.mask]
}

// Last returns the oldest element, or the zero value when empty.
func (b *Buffer[T]) Last() T {
	if b.storage == nil || b.head == b.tail {
		var zero T
		return zero
	}
	return b.storage[b.tail]
}

// Full reports whether the buffer holds Size() elements.
func (b *Buffer[T]) Full() bool {
	return b.storage != nil && b.count == b.mask
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool {
	return b.head == b.tail
}

// Valid reports whether the buffer is bound to storage.
func (b *Buffer[T]) Valid() bool {
	return b.storage != nil
}

// Size returns the usable capacity, one less than the storage length.
func (b *Buffer[T]) Size() int {
	return b.mask
}

// Cap returns the bound storage length.
func (b *Buffer[T]) Cap() int {
	return len(b.storage)
}

// Count returns the number of stored elements.
func (b *Buffer[T]) Count() int {
	return b.count
}

// Storage returns the bound slice.
func (b *Buffer[T]) Storage() []T {
	return b.storage
}

// RotateForward moves the oldest element to the newest position. It acts
// only on a full buffer and reports whether it did.
//
// The free head slot holds a retired value, so a single swap of the head and
// tail slots is all the data movement needed.
func (b *Buffer[T]) RotateForward() bool {
	if !b.Full() {
		return false
	}

	b.storage[b.head], b.storage[b.tail] = b.storage[b.tail], b.storage[b.head]
	b.head = (b.head + 1) & b.mask
	b.tail = (b.tail + 1) & b.mask
	return true
}

// RotateBackward moves the newest element to the oldest position. It acts
// only on a full buffer and reports whether it did.
func (b *Buffer[T]) RotateBackward() bool {
	if !b.Full() {
		return false
	}

	newest := (b.head - 1) & b.mask
	b.storage[newest], b.storage[b.head] = b.storage[b.head], b.storage[newest]
	b.head = newest
	b.tail = (b.tail - 1) & b.mask
	return true
}

// CopyTo copies the logical range [start, start+n) into dst[:n], newest
// first, and returns the number of copied elements. n == 0 copies through
// the oldest element. Ranges that exceed Count() or do not fit into dst copy
// nothing.
func (b *Buffer[T]) CopyTo(dst []T, start, n int) int {
	if b.storage == nil || start < 0 || n < 0 || start >= b.count {
		return 0
	}
	if n == 0 {
		n = b.count - start
	}
	if start+n > b.count || len(dst) < n {
		return 0
	}

	pos := b.head - 1 - start
	for i := 0; i < n; i++ {
		dst[i] = b.storage[(pos-i)&b.mask]
	}
	return n
}

// Clear empties the buffer. With safe erase enabled the storage is also
// zero-filled.
func (b *Buffer[T]) Clear() {
	b.head, b.tail, b.count = 0, 0, 0
	if b.safeErase {
		b.Erase()
	}
}

// Erase zero-fills the storage without touching the cursors.
func (b *Buffer[T]) Erase() {
	clear(b.storage)
}
