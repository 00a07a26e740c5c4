package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// UncategorisedCategory always exists implicitly and is never a match target.
const UncategorisedCategory = "Uncategorised"

var (
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
	ErrBlankKeyword      = errors.New("keyword cannot be empty")
	ErrInvalidCategories = errors.New("categories must be an object of string arrays")
)

// CategoryEntry is one category and its keywords.
type CategoryEntry struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// CategoryMap maps category names to keyword sets. It keeps insertion order,
// which decides the winner when two categories share a keyword, and it keeps
// that order through JSON and the database.
type CategoryMap struct {
	entries []CategoryEntry
}

// DefaultCategoryMap is the mapping a user starts with.
func DefaultCategoryMap() CategoryMap {
	return CategoryMap{entries: []CategoryEntry{{Name: UncategorisedCategory, Keywords: []string{}}}}
}

// NewCategoryMap builds a map from entries in order. Names and keywords are
// normalised the same way AddKeyword does; a repeated name replaces the earlier
// keywords and keeps the first position.
func NewCategoryMap(entries ...CategoryEntry) (CategoryMap, error) {
	var m CategoryMap
	for _, e := range entries {
		if err := m.Set(e.Name, e.Keywords); err != nil {
			return CategoryMap{}, err
		}
	}
	return m, nil
}

func (m CategoryMap) Len() int {
	return len(m.entries)
}

func (m CategoryMap) IsEmpty() bool {
	return len(m.entries) == 0
}

// Names returns category names in insertion order.
func (m CategoryMap) Names() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a deep copy of the entries in insertion order.
func (m CategoryMap) Entries() []CategoryEntry {
	return m.Clone().entries
}

func (m CategoryMap) Has(name string) bool {
	return m.indexOf(strings.TrimSpace(name)) >= 0
}

// Keywords returns a copy of the keywords of a category.
func (m CategoryMap) Keywords(name string) ([]string, bool) {
	i := m.indexOf(strings.TrimSpace(name))
	if i < 0 {
		return nil, false
	}
	return append([]string{}, m.entries[i].Keywords...), true
}

func (m CategoryMap) Clone() CategoryMap {
	out := CategoryMap{entries: make([]CategoryEntry, len(m.entries))}
	for i, e := range m.entries {
		out.entries[i] = CategoryEntry{Name: e.Name, Keywords: append([]string{}, e.Keywords...)}
	}
	return out
}

// WithUncategorised returns a copy that contains the Uncategorised category.
func (m CategoryMap) WithUncategorised() CategoryMap {
	out := m.Clone()
	if !out.Has(UncategorisedCategory) {
		out.entries = append([]CategoryEntry{{Name: UncategorisedCategory, Keywords: []string{}}}, out.entries...)
	}
	return out
}

// AddCategory creates an empty category. It reports false when the category
// already exists.
func (m *CategoryMap) AddCategory(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, ErrEmptyCategoryName
	}
	if m.indexOf(name) >= 0 {
		return false, nil
	}
	m.entries = append(m.entries, CategoryEntry{Name: name, Keywords: []string{}})
	return true, nil
}

// AddKeyword adds a keyword to a category, creating the category when missing.
// It reports false when the keyword was already present.
func (m *CategoryMap) AddKeyword(name, keyword string) (bool, error) {
	name = strings.TrimSpace(name)
	keyword = strings.TrimSpace(keyword)
	if name == "" {
		return false, ErrEmptyCategoryName
	}
	if keyword == "" {
		return false, ErrBlankKeyword
	}

	i := m.indexOf(name)
	if i < 0 {
		m.entries = append(m.entries, CategoryEntry{Name: name, Keywords: []string{keyword}})
		return true, nil
	}
	if containsKeyword(m.entries[i].Keywords, keyword) {
		return false, nil
	}
	m.entries[i].Keywords = append(m.entries[i].Keywords, keyword)
	return true, nil
}

// RemoveKeyword reports whether the keyword was present.
func (m *CategoryMap) RemoveKeyword(name, keyword string) bool {
	i := m.indexOf(strings.TrimSpace(name))
	if i < 0 {
		return false
	}
	key := NormalizeKeyword(keyword)
	kept := make([]string, 0, len(m.entries[i].Keywords))
	removed := false
	for _, k := range m.entries[i].Keywords {
		if NormalizeKeyword(k) == key {
			removed = true
			continue
		}
		kept = append(kept, k)
	}
	m.entries[i].Keywords = kept
	return removed
}

// Set replaces the keywords of a category, keeping its position, or appends it.
// Blank keywords are dropped and duplicates collapse.
func (m *CategoryMap) Set(name string, keywords []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategoryName
	}

	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" || containsKeyword(cleaned, k) {
			continue
		}
		cleaned = append(cleaned, k)
	}

	if i := m.indexOf(name); i >= 0 {
		m.entries[i].Keywords = cleaned
		return nil
	}
	m.entries = append(m.entries, CategoryEntry{Name: name, Keywords: cleaned})
	return nil
}

// Delete removes a category and reports whether it existed.
func (m *CategoryMap) Delete(name string) bool {
	i := m.indexOf(strings.TrimSpace(name))
	if i < 0 {
		return false
	}
	entries := make([]CategoryEntry, 0, len(m.entries)-1)
	entries = append(entries, m.entries[:i]...)
	m.entries = append(entries, m.entries[i+1:]...)
	return true
}

// Merge adds every category and keyword of other. Existing categories keep
// their position; new ones are appended in other's order.
func (m *CategoryMap) Merge(other CategoryMap) {
	for _, e := range other.entries {
		if len(e.Keywords) == 0 {
			_, _ = m.AddCategory(e.Name)
			continue
		}
		for _, k := range e.Keywords {
			_, _ = m.AddKeyword(e.Name, k)
		}
	}
}

// NormalizeKeyword is the comparison form of keywords and descriptions.
func NormalizeKeyword(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsKeyword(keywords []string, keyword string) bool {
	key := NormalizeKeyword(keyword)
	for _, k := range keywords {
		if NormalizeKeyword(k) == key {
			return true
		}
	}
	return false
}

func (m CategoryMap) indexOf(name string) int {
	for i, e := range m.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// MarshalJSON writes a JSON object whose keys follow insertion order.
func (m CategoryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		keywords := e.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		value, err := json.Marshal(keywords)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of string arrays in document order. Any
// other shape fails with ErrInvalidCategories.
func (m *CategoryMap) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = CategoryMap{}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCategories, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrInvalidCategories
	}

	var out CategoryMap
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCategories, err)
		}
		name, ok := tok.(string)
		if !ok {
			return ErrInvalidCategories
		}

		var keywords []string
		if err := dec.Decode(&keywords); err != nil {
			return fmt.Errorf("%w: category %q: %v", ErrInvalidCategories, name, err)
		}
		if err := out.Set(name, keywords); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCategories, err)
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCategories, err)
	}

	*m = out
	return nil
}

// Value implements driver.Valuer. A string is returned for SQLite compatibility.
func (m CategoryMap) Value() (driver.Value, error) {
	data, err := m.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (m *CategoryMap) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*m = CategoryMap{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into CategoryMap", value)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		*m = CategoryMap{}
		return nil
	}
	return m.UnmarshalJSON(data)
}
