package roster

import (
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// Index holds the two lookup views over the roster. The by-name view
// keeps roster insertion order, which the substring fallback in
// Identify depends on: when several names satisfy the substring test,
// the entry appearing earlier in the roster wins.
type Index struct {
	byName  *orderedmap.OrderedMap[string, *Person]
	byEmail map[string]*Person
}

// NewIndex builds the lookup index from roster order. Keys are
// lower-cased trimmed names and emails; people without an email appear
// only in the name view.
func NewIndex(people []*Person) *Index {
	idx := &Index{
		byName:  orderedmap.NewOrderedMap[string, *Person](),
		byEmail: make(map[string]*Person),
	}
	for _, p := range people {
		idx.byName.Set(strings.ToLower(p.Name), p)
		if p.Email != "" {
			idx.byEmail[strings.ToLower(p.Email)] = p
		}
	}
	return idx
}

// Len returns the number of people in the index.
func (idx *Index) Len() int {
	return idx.byName.Len()
}

// Identify finds the best roster match for a free-text name or email.
// Tiers, first match wins:
//  1. exact email match when the query contains '@'
//  2. exact name match
//  3. bidirectional substring test against names in roster order
//
// An empty query never matches.
func (idx *Index) Identify(query string) (*Person, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}

	if strings.Contains(q, "@") {
		if p, ok := idx.byEmail[q]; ok {
			return p, true
		}
	}

	if p, ok := idx.byName.Get(q); ok {
		return p, true
	}

	for el := idx.byName.Front(); el != nil; el = el.Next() {
		if strings.Contains(el.Key, q) || strings.Contains(q, el.Key) {
			return el.Value, true
		}
	}

	return nil, false
}
