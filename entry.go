package zipkit

// Entry is a named payload inside an archive.
//
// Names are arbitrary path-like strings using forward slashes. Uniqueness
// is not enforced: the container format permits duplicate names, and
// deduplication is the caller's responsibility.
type Entry struct {
	// Name is the entry's path within the archive (e.g., "docs/readme.txt").
	Name string

	// Data is the entry's raw content.
	Data []byte
}

// NewEntry returns an Entry for raw bytes.
func NewEntry(name string, data []byte) Entry {
	return Entry{Name: name, Data: data}
}

// NewTextEntry returns an Entry whose content is the UTF-8 encoding of text.
func NewTextEntry(name, text string) Entry {
	return Entry{Name: name, Data: []byte(text)}
}

// Text returns the entry content decoded as UTF-8 text.
func (e Entry) Text() string {
	return string(e.Data)
}
