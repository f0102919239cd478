// Package pathresolve walks a slash-delimited path from the root of
// the node tree, per spec.md §4.1. It does not use path/filepath: that
// package's Clean/Split operate byte-for-byte, while lookups here must
// be case-insensitive against the node tree, and "." / ".." are not
// part of this filesystem's path grammar at all.
package pathresolve

import (
	"strings"

	"github.com/cockroachdb/errors"

	"ramfs/node"
)

// ErrNotFound covers every resolution failure spec.md §4.1 collapses
// into "not-found": a missing intermediate segment, an intermediate
// that is not a directory, or a terminal node whose kind does not
// match a kind the resolver itself was required to find.
//
// It does NOT cover every kind mismatch a caller might care about: a
// plain file open that lands on a directory resolves successfully
// here (see WantEither) and is rejected by the engine as invalid, not
// as not-found, the same way a Unix open(2) without O_DIRECTORY
// returns EISDIR rather than ENOENT.
var ErrNotFound = errors.New("[ramfs.pathresolve] not found")

// ErrEmptyLeaf is returned by SplitParentLeaf when the leaf component
// would be empty (a bare trailing slash or the empty string), which
// spec.md §4.1 disallows for creation/removal targets.
var ErrEmptyLeaf = errors.New("[ramfs.pathresolve] leaf component is empty")

// Want selects how the terminal segment's kind constrains resolution.
type Want int

const (
	// WantFile requires the terminal segment to be a file; a directory
	// found at that name is a resolution failure (ErrNotFound), not a
	// successful-but-wrong-kind result.
	WantFile Want = iota
	// WantDir requires the terminal segment to be a directory,
	// including the empty/trailing-slash terminal segment that denotes
	// the directory itself.
	WantDir
	// WantEither accepts whatever kind is found at the terminal name;
	// the caller inspects Node.Kind itself afterward.
	WantEither
)

// segments splits a path into its non-root components, stripping a
// single leading slash. An empty path or "/" yields a nil slice.
func segments(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// Resolve walks path starting at root and returns the node it names.
// want selects how the terminal segment's kind is checked; it has no
// effect on intermediate segments, which must always be directories.
// An empty terminal segment (a trailing slash, or the whole path being
// "" or "/") denotes "the directory itself": it always resolves to
// that directory node except under WantFile, which rejects it as
// ErrNotFound since a directory can never satisfy a file request.
// WantEither resolving the root successfully (rather than failing) is
// what lets a plain, non-directory-flagged Open("") defer the "that's
// actually a directory" rejection to the engine's own step-5 check,
// instead of the resolver itself hiding it behind not-found.
func Resolve(root *node.Node, path string, want Want) (*node.Node, error) {
	segs := segments(path)
	if len(segs) == 0 {
		if want == WantFile {
			return nil, ErrNotFound
		}
		return root, nil
	}

	cur := root
	for i, seg := range segs {
		last := i == len(segs)-1

		if seg == "" {
			// Trailing slash: only valid as the final, directory-denoting segment.
			if !last || want == WantFile {
				return nil, ErrNotFound
			}
			return cur, nil
		}

		if cur.Kind != node.Dir {
			return nil, ErrNotFound
		}
		child := node.Lookup(cur, seg)
		if child == nil {
			return nil, ErrNotFound
		}

		if !last {
			if child.Kind != node.Dir {
				return nil, ErrNotFound
			}
			cur = child
			continue
		}

		// Terminal segment: kind must match what the resolver itself
		// was asked to require.
		switch want {
		case WantFile:
			if child.Kind != node.File {
				return nil, ErrNotFound
			}
		case WantDir:
			if child.Kind != node.Dir {
				return nil, ErrNotFound
			}
		case WantEither:
			// Any kind is acceptable; the caller decides.
		}
		return child, nil
	}

	// Unreachable: the loop always returns on its last iteration.
	return nil, ErrNotFound
}

// SplitParentLeaf resolves the directory portion of path (everything
// up to the last "/") starting at start, and returns that directory
// along with the leaf name following it. If path contains no "/", the
// parent is start itself and the whole path is the leaf. The leaf may
// not be empty and may not itself contain a trailing slash. The
// parent segment is always resolved as a directory, independent of
// how the caller intends to use the leaf.
func SplitParentLeaf(start *node.Node, path string) (parent *node.Node, leaf string, err error) {
	trimmed := strings.TrimPrefix(path, "/")
	idx := strings.LastIndexByte(trimmed, '/')
	if idx < 0 {
		if trimmed == "" {
			return nil, "", ErrEmptyLeaf
		}
		return start, trimmed, nil
	}

	dirPart, leafPart := trimmed[:idx], trimmed[idx+1:]
	if leafPart == "" {
		return nil, "", ErrEmptyLeaf
	}

	parent, err = Resolve(start, dirPart, WantDir)
	if err != nil {
		return nil, "", err
	}
	return parent, leafPart, nil
}
