package document

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Preferences is the minimal collaborator InitNewDocument consumes: a
// read-only, string-keyed settings lookup. A full application backs
// this with a richer typed property store; this module only needs the
// part InitNewDocument actually reads.
type Preferences interface {
	Get(key string) (string, bool)
}

// OrderedPreferences is a concrete, order-preserving Preferences, backed
// by go-ordered-map instead of a plain map so that iterating settings
// (e.g. to log them, or to round-trip to a file) sees them in the order
// they were set.
type OrderedPreferences struct {
	values *orderedmap.OrderedMap[string, string]
}

// NewOrderedPreferences returns an empty OrderedPreferences ready for Set.
func NewOrderedPreferences() *OrderedPreferences {
	return &OrderedPreferences{values: orderedmap.New[string, string]()}
}

// Set assigns key to value, appending key to iteration order if it is
// new or leaving its position unchanged if it already exists.
func (p *OrderedPreferences) Set(key, value string) {
	p.values.Set(key, value)
}

// Get implements Preferences.
func (p *OrderedPreferences) Get(key string) (string, bool) {
	return p.values.Get(key)
}

// Keys returns the preference keys in the order they were first set.
func (p *OrderedPreferences) Keys() []string {
	keys := make([]string, 0, p.values.Len())
	for pair := p.values.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of preferences stored.
func (p *OrderedPreferences) Len() int { return p.values.Len() }
