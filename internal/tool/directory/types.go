package directory

import (
	"path/filepath"
)

// Kind classifies a directory entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Entry is one immediate child of a snapshot root.
type Entry struct {
	Name     string
	FullPath string
	Kind     Kind
	// Ignored is set when the root's .gitignore matches the entry. It is informational only.
	Ignored bool
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Snapshot is an immutable listing of a root's immediate children, in listing order.
// It is replaced wholesale, never patched.
type Snapshot struct {
	root    string
	entries []Entry
}

// Empty returns the snapshot shown when no root is selected.
func Empty() Snapshot {
	return Snapshot{}
}

// NewSnapshot builds a snapshot from already classified entries. The slice is copied.
func NewSnapshot(root string, entries []Entry) Snapshot {
	own := make([]Entry, len(entries))
	copy(own, entries)
	return Snapshot{root: root, entries: own}
}

// Root returns the directory the snapshot was built from, or "" for the empty snapshot.
func (s Snapshot) Root() string {
	return s.root
}

// IsEmpty reports whether the snapshot has no root.
func (s Snapshot) IsEmpty() bool {
	return s.root == ""
}

// Entries returns a copy of the entries.
func (s Snapshot) Entries() []Entry {
	result := make([]Entry, len(s.entries))
	copy(result, s.entries)
	return result
}

// Len returns the number of entries.
func (s Snapshot) Len() int {
	return len(s.entries)
}

// Find looks an entry up by name.
func (s Snapshot) Find(name string) (Entry, bool) {
	for _, e := range s.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the entry names in listing order.
func (s Snapshot) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

func entryPath(root, name string) string {
	return filepath.Join(root, name)
}
