// Package node implements the heap-resident tree of file and directory
// records that back the in-memory filesystem engine.
//
// A Node owns its name and, for files, its content buffer. Directories
// own an ordered collection of child Nodes rather than cesium's
// map-keyed entry table, because the tree here is ordered by
// insertion-at-head (spec.md §3) and stays shallow: mkdir is
// unimplemented, so in practice only the root ever has children, but
// the data model does not forbid deeper trees and the store below
// supports them generally.
package node

import "github.com/cockroachdb/errors"

// Kind distinguishes a regular file from a directory.
type Kind int

const (
	File Kind = iota
	Dir
)

// OpenMode tracks the exclusion state of a Node per spec.md invariants 1–2.
type OpenMode int

const (
	ModeNone OpenMode = iota
	ModeReading
	ModeWriting
)

// ErrNameTaken is returned by InsertChild when a sibling already
// exists under a case-insensitively equal name.
var ErrNameTaken = errors.New("[ramfs.node] name already exists in directory")

// Node is a file-or-directory record in the tree.
//
// For files, Buffer is the full backing allocation (len(Buffer) ==
// Capacity) and LogicalSize is the count of valid leading bytes. For
// directories, Children holds the ordered, owned collection of child
// nodes and Buffer/Capacity/LogicalSize are unused.
type Node struct {
	Name   string
	Kind   Kind
	Parent *Node

	// file fields
	Buffer      []byte
	Capacity    int
	LogicalSize int

	// directory fields
	Children []*Node

	OpenMode OpenMode
	UseCount int
}

// NewRoot constructs the permanently-resident root directory node.
func NewRoot() *Node {
	return &Node{Name: "/", Kind: Dir}
}

// NewFile constructs a new, unattached file node with the given
// initial capacity and zero logical size.
func NewFile(name string, initialCapacity int) *Node {
	return &Node{
		Name:     name,
		Kind:     File,
		Buffer:   make([]byte, initialCapacity),
		Capacity: initialCapacity,
	}
}

// NewDir constructs a new, unattached directory node. The engine never
// calls this on behalf of a user (mkdir is unimplemented per spec.md
// §1) but the store supports it so the data model's permission of
// subdirectories is not merely theoretical.
func NewDir(name string) *Node {
	return &Node{Name: name, Kind: Dir}
}

// SameName reports whether two names are equal under the
// case-insensitive, length-then-bytes comparison spec.md §3 and §4.1
// require for sibling uniqueness and lookup.
func SameName(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Lookup returns the child of dir whose name matches name
// case-insensitively, or nil if none does. dir must be a directory.
func Lookup(dir *Node, name string) *Node {
	for _, c := range dir.Children {
		if SameName(c.Name, name) {
			return c
		}
	}
	return nil
}

// InsertChild adds child to the head of dir's child list, preserving
// child's supplied-case name (spec.md §4.1: "creations preserve the
// supplied case"). Returns ErrNameTaken if a case-insensitively equal
// sibling already exists.
func InsertChild(dir, child *Node) error {
	if Lookup(dir, child.Name) != nil {
		return ErrNameTaken
	}
	child.Parent = dir
	dir.Children = append([]*Node{child}, dir.Children...)
	return nil
}

// RemoveChild excises child from dir's child list. It is a no-op if
// child is not actually a member of dir.Children.
func RemoveChild(dir, child *Node) {
	for i, c := range dir.Children {
		if c == child {
			dir.Children = append(dir.Children[:i], dir.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Grow reallocates a file node's buffer so that it can hold at least
// needed bytes, adding slack to reduce reallocation frequency on
// sequential writes (spec.md §3 "Lifecycle"). It preserves existing
// content and never shrinks the buffer.
func Grow(n *Node, needed, slack int) {
	if needed <= n.Capacity {
		return
	}
	newCap := needed + slack
	grown := make([]byte, newCap)
	copy(grown, n.Buffer[:n.LogicalSize])
	n.Buffer = grown
	n.Capacity = newCap
}

// Reset replaces a file node's buffer with a fresh allocation of the
// given capacity and zero logical size, used by O_TRUNC opens.
func Reset(n *Node, capacity int) {
	n.Buffer = make([]byte, capacity)
	n.Capacity = capacity
	n.LogicalSize = 0
}
