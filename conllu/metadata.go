package conllu

// MetadataEntry is one comment line of a sentence. A flag-only comment
// (`# newpar`) has HasValue false.
type MetadataEntry struct {
	Key      string
	Value    string
	HasValue bool
}

// Metadata is the ordered key/optional-value map attached to a sentence.
// Insertion order is preserved and significant for serialization; writing
// an existing key overwrites its value but keeps its original position.
type Metadata struct {
	entries []MetadataEntry
	index   map[string]int
}

func NewMetadata() *Metadata {
	return &Metadata{index: map[string]int{}}
}

// Set records a key with a value, overwriting in place if the key exists.
func (m *Metadata) Set(key, value string) {
	m.set(MetadataEntry{Key: key, Value: value, HasValue: true})
}

// SetFlag records a flag-only key, overwriting in place if the key exists.
func (m *Metadata) SetFlag(key string) {
	m.set(MetadataEntry{Key: key})
}

func (m *Metadata) set(e MetadataEntry) {
	if i, ok := m.index[e.Key]; ok {
		m.entries[i] = e
		return
	}
	m.index[e.Key] = len(m.entries)
	m.entries = append(m.entries, e)
}

// Get returns the value for key. For a flag-only entry the value is empty
// with ok true; use Entries to distinguish a flag from an empty value.
func (m *Metadata) Get(key string) (value string, ok bool) {
	i, ok := m.index[key]
	if !ok {
		return "", false
	}
	return m.entries[i].Value, true
}

func (m *Metadata) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

func (m *Metadata) Len() int {
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns the entries in insertion order. The caller must not
// modify the returned slice.
func (m *Metadata) Entries() []MetadataEntry {
	return m.entries
}
