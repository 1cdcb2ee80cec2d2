package tableview

import (
	"sort"
	"strings"

	"backoffice/core/record"
)

// Direction is the ordering of the active sort key.
type Direction string

const (
	// Asc sorts ascending.
	Asc Direction = "asc"
	// Desc sorts descending.
	Desc Direction = "desc"
)

// Sort describes the active sort selection of a table.
type Sort struct {
	// Key is the field currently sorted by. Empty means no sort is applied.
	Key string `json:"key"`

	// Direction is "asc" or "desc". Always defined while Key is set.
	Direction Direction `json:"direction"`
}

// Predicate decides whether a record survives filtering for a search term.
type Predicate func(r record.Record, term string) bool

// Comparator orders two records for the active sort key. It returns a
// negative value when a sorts before b under ascending order.
type Comparator func(a, b record.Record, key string) int

// Engine holds the transient view state of one list page: the working copy
// of a record collection, the free-text search term, and the sort selection.
// It derives the filtered-then-sorted view on demand and never mutates the
// source collection. The zero value is usable.
type Engine struct {
	records []record.Record
	term    string
	sort    Sort

	// SearchFields restricts which fields the default filter inspects.
	// Empty means every field of each record is searched.
	SearchFields []string

	// Match replaces the default filter entirely when set.
	Match Predicate

	// Compare replaces the default type-aware comparator entirely when set.
	Compare Comparator
}

// New returns an engine over the given collection.
func New(records []record.Record) *Engine {
	e := &Engine{}
	e.SetRecords(records)
	return e
}

// SetRecords replaces the working collection and resets the search term and
// sort selection, mirroring a page refresh.
func (e *Engine) SetRecords(records []record.Record) {
	e.records = records
	e.term = ""
	e.sort = Sort{}
}

// SetSearch replaces the active search term. An empty or whitespace-only
// term disables filtering.
func (e *Engine) SetSearch(term string) {
	e.term = term
}

// Search returns the active search term.
func (e *Engine) Search() string {
	return e.term
}

// ToggleSort adopts the key with ascending direction, or flips the direction
// when the key is already active (asc → desc → asc).
func (e *Engine) ToggleSort(key string) {
	if key == "" {
		return
	}
	if e.sort.Key == key {
		if e.sort.Direction == Asc {
			e.sort.Direction = Desc
		} else {
			e.sort.Direction = Asc
		}
		return
	}
	e.sort = Sort{Key: key, Direction: Asc}
}

// SetSort sets the sort selection explicitly. Handlers that carry the
// direction in the request use this instead of the toggle transition.
// An unknown direction falls back to ascending.
func (e *Engine) SetSort(key string, dir Direction) {
	if key == "" {
		e.sort = Sort{}
		return
	}
	if dir != Desc {
		dir = Asc
	}
	e.sort = Sort{Key: key, Direction: dir}
}

// Sort returns the active sort descriptor.
func (e *Engine) Sort() Sort {
	return e.sort
}

// View derives the filtered-then-sorted records. The result is a fresh slice
// sharing the record values; repeated calls with unchanged state produce an
// equivalent ordering. A nil collection yields an empty view.
func (e *Engine) View() []record.Record {
	out := e.filtered()

	if e.sort.Key == "" {
		return out
	}

	cmp := e.Compare
	if cmp == nil {
		cmp = record.Compare
	}
	sign := 1
	if e.sort.Direction == Desc {
		sign = -1
	}

	sort.SliceStable(out, func(i, j int) bool {
		return sign*cmp(out[i], out[j], e.sort.Key) < 0
	})

	return out
}

func (e *Engine) filtered() []record.Record {
	term := strings.ToLower(strings.TrimSpace(e.term))

	out := make([]record.Record, 0, len(e.records))
	if term == "" {
		out = append(out, e.records...)
		return out
	}

	match := e.Match
	for _, r := range e.records {
		if r == nil {
			continue
		}
		if match != nil {
			if match(r, term) {
				out = append(out, r)
			}
			continue
		}
		if record.Matches(r, term, e.SearchFields) {
			out = append(out, r)
		}
	}
	return out
}
