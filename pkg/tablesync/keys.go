package tablesync

// KeyAllocator hands out surrogate keys one at a time so rows can be numbered while
// streaming. The keys following an offset are offset+1, offset+2 and so on.
//
// Example:
//
//	keys := tablesync.NewKeyAllocator(10)
//	keys.Next() // 11
//	keys.Next() // 12
//	keys.Last() // 12
type KeyAllocator struct {
	last uint64
}

// NewKeyAllocator returns an allocator whose first key is offset+1.
func NewKeyAllocator(offset uint64) *KeyAllocator {
	return &KeyAllocator{last: offset}
}

// Next returns the next key.
func (a *KeyAllocator) Next() uint64 {
	a.last++
	return a.last
}

// Last returns the most recently allocated key, or the offset when none was allocated.
func (a *KeyAllocator) Last() uint64 {
	return a.last
}
