package ast

// NodeID is a 1-based index into a Tree's arena. The zero value, NoNodeID,
// means "absent" — the same convention the arena already uses for its
// generic Get/Allocate contract.
type NodeID uint32

// NoNodeID marks an absent child (an optional sub-node that was never
// present in the source, as opposed to one replaced by a dummy).
const NoNodeID NodeID = 0

// IsValid reports whether id refers to an actual node.
func (id NodeID) IsValid() bool { return id != NoNodeID }
