package cards

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Collection is an insertion-ordered mapping of local image keys to card
// records. JSON encoding preserves the collection order, which is how the
// database files keep their sorted shape on disk.
type Collection struct {
	keys    []string
	records map[string]Record
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{records: make(map[string]Record)}
}

// Len returns the number of records.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Get returns the record stored under key.
func (c *Collection) Get(key string) (Record, bool) {
	if c == nil {
		return Record{}, false
	}
	record, ok := c.records[key]
	return record, ok
}

// Put stores a record, overwriting any existing record under the same key
// while keeping that key's position.
func (c *Collection) Put(key string, record Record) {
	if _, exists := c.records[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.records[key] = record
}

// Keys returns the keys in collection order.
func (c *Collection) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Merge copies every record of other into c in order, overwriting on key
// collision.
func (c *Collection) Merge(other *Collection) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		c.Put(key, other.records[key])
	}
}

// Sort orders the collection ascending by the numeric value of each
// record's card number, with the given literal tokens stripped before
// parsing. The sort is stable so equal numbers keep their insertion order.
func (c *Collection) Sort(stripTokens []string) {
	if c == nil {
		return
	}
	sort.SliceStable(c.keys, func(i, j int) bool {
		return SortValue(c.records[c.keys[i]].Number, stripTokens) <
			SortValue(c.records[c.keys[j]].Number, stripTokens)
	})
}

// Encode writes the collection as an indented JSON object in collection
// order, matching the database file format.
func (c *Collection) Encode(w io.Writer) error {
	if c == nil || len(c.keys) == 0 {
		_, err := io.WriteString(w, "{}")
		return err
	}

	if _, err := io.WriteString(w, "{\n"); err != nil {
		return err
	}
	for i, key := range c.keys {
		record, err := encodeRecord(c.records[key])
		if err != nil {
			return fmt.Errorf("encode record %q: %w", key, err)
		}
		line := "    " + strconv.Quote(key) + ": " + record
		if i < len(c.keys)-1 {
			line += ","
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}

func encodeRecord(record Record) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("    ", "    ")
	if err := encoder.Encode(record); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Decode reads a JSON database object, preserving the key order of the
// file.
func Decode(r io.Reader) (*Collection, error) {
	decoder := json.NewDecoder(r)

	tok, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("read database: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("read database: expected object, got %v", tok)
	}

	collection := NewCollection()
	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("read database key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("read database: non-string key %v", keyTok)
		}
		var record Record
		if err := decoder.Decode(&record); err != nil {
			return nil, fmt.Errorf("read record %q: %w", key, err)
		}
		collection.Put(key, record)
	}
	return collection, nil
}
