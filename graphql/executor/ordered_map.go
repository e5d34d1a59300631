package executor

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

// OrderedMap is a map that preserves insertion (or, for pre-sized maps, response-field) order when
// marshaled to JSON. GraphQL responses must preserve the order fields were requested in, which a
// plain map[string]interface{} cannot do.
type OrderedMap struct {
	keys   []string
	values []interface{}
}

// NewOrderedMap returns an empty OrderedMap intended to be built up via Append.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{}
}

// NewOrderedMapWithLength returns an OrderedMap pre-sized to hold n entries, intended to be filled
// via indexed Set calls. This is used during field execution, where fields may resolve out of
// order (e.g. concurrently via ResolvePromise) but must appear in the response in selection order.
func NewOrderedMapWithLength(n int) *OrderedMap {
	return &OrderedMap{
		keys:   make([]string, n),
		values: make([]interface{}, n),
	}
}

// Append adds a new key/value pair to the end of the map.
func (m *OrderedMap) Append(key string, value interface{}) {
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Set assigns the key/value pair at index i. i must be within the length established by
// NewOrderedMapWithLength.
func (m *OrderedMap) Set(i int, key string, value interface{}) {
	m.keys[i] = key
	m.values[i] = value
}

// Get returns the value associated with key, if present.
func (m *OrderedMap) Get(key string) (interface{}, bool) {
	for i, k := range m.keys {
		if k == key {
			return m.values[i], true
		}
	}
	return nil, false
}

// Len returns the number of entries in the map.
func (m *OrderedMap) Len() int {
	return len(m.keys)
}

// Keys returns the map's keys, in order.
func (m *OrderedMap) Keys() []string {
	return m.keys
}

// Item is a single key/value pair, as returned by Items.
type Item struct {
	Key   string
	Value interface{}
}

// Items returns the map's entries, in order.
func (m *OrderedMap) Items() []Item {
	items := make([]Item, len(m.keys))
	for i, k := range m.keys {
		items[i] = Item{Key: k, Value: m.values[i]}
	}
	return items
}

func (m *OrderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := jsoniter.ConfigFastest.Marshal(key)
		if err != nil {
			return nil, err
		}
		valueJSON, err := jsoniter.ConfigFastest.Marshal(m.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
