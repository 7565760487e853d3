package source

import "sync"

// StringID names one interned string. The AST stores these instead of the
// strings themselves: every identifier spelling, literal text, and
// fabricated placeholder name (`e`, `_123`, `__computed__`) in a tree
// resolves through the interner that allocated it, so a file that mentions
// `length` four hundred times stores the bytes once.
type StringID uint32

// NoStringID is the zero value: "this node carries no text". Slot 0 of
// every interner is reserved for it and resolves to the empty string.
const NoStringID StringID = 0

// Interner deduplicates strings into dense StringIDs. A single parse is
// strictly single-threaded, but the multi-file driver shares one interner
// across its worker pool so identifier IDs mean the same thing in every
// file's tree — hence the lock.
type Interner struct {
	mu   sync.RWMutex
	strs []string
	ids  map[string]StringID
}

// NewInterner returns an interner holding only the NoStringID slot.
func NewInterner() *Interner {
	return &Interner{
		strs: []string{""},
		ids:  map[string]StringID{"": NoStringID},
	}
}

// Intern returns the ID for s, allocating one on first sight. The stored
// string is copied, so callers may pass slices of a transient buffer.
func (in *Interner) Intern(s string) StringID {
	in.mu.RLock()
	id, ok := in.ids[s]
	in.mu.RUnlock()
	if ok {
		return id
	}

	owned := string([]byte(s))

	in.mu.Lock()
	defer in.mu.Unlock()
	// Another worker may have interned s between the two locks.
	if id, ok := in.ids[owned]; ok {
		return id
	}
	id = StringID(len(in.strs))
	in.strs = append(in.strs, owned)
	in.ids[owned] = id
	return id
}

// Lookup resolves an ID back to its string. IDs from a different interner
// (or a corrupted node) report ok=false rather than panicking, since a
// recovery-mode tree is allowed to be semantically odd but must stay safe
// to walk.
func (in *Interner) Lookup(id StringID) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(id) >= len(in.strs) {
		return "", false
	}
	return in.strs[id], true
}

// Len returns the number of interned strings, counting the reserved
// NoStringID slot; it is never less than 1.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strs)
}
