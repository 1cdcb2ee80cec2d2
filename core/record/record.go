package record

import (
	"strings"

	"backoffice/core/utils"
)

// Record is a single row as handed to the view engines: a mapping from field
// name to a loosely typed value (string, number, bool, timestamp, or nil).
// The "id" field is expected to be unique within a collection; no other
// structural constraint is imposed.
type Record map[string]any

// ID returns the record's identity field as text, or "" when absent.
func (r Record) ID() string {
	return utils.ToString(r["id"])
}

// Fields returns the field names present in the record, in no particular order.
func (r Record) Fields() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	return keys
}

// Kind is the comparison strategy selected for a sort key.
type Kind int

const (
	// KindText compares values as case-insensitive text.
	KindText Kind = iota
	// KindNumber compares values numerically; unparsable values count as 0.
	KindNumber
	// KindTime compares values as points in time; unparsable or absent
	// values count as the zero time, i.e. sort before everything else.
	KindTime
)

// timeKeys are field names that always carry timestamp semantics regardless
// of the stored value shape.
var timeKeys = map[string]struct{}{
	"date":       {},
	"created_at": {},
	"updated_at": {},
	"deleted_at": {},
	"createdat":  {},
	"updatedat":  {},
	"timestamp":  {},
}

// timeSuffixes mark keys like "appointment_date" or "paidAt" as timestamps.
var timeSuffixes = []string{"_at", "_date", "At", "Date"}

// KeyKind classifies a sort key. The decision uses the key name first (the
// timestamp vocabulary above), then the shape of the sample values: if any
// sample is numeric or numeric-like the key is numeric, otherwise text.
// Known names match case-insensitively ("Date" and "date" are both time
// keys); a key that is nothing but a suffix word outside that vocabulary
// ("At") stays text. Nil samples are skipped so a column of nulls still
// classifies by name.
func KeyKind(key string, samples ...any) Kind {
	lower := strings.ToLower(key)
	if _, ok := timeKeys[lower]; ok {
		return KindTime
	}
	for _, suffix := range timeSuffixes {
		if strings.HasSuffix(key, suffix) && key != suffix {
			return KindTime
		}
	}

	for _, s := range samples {
		if s == nil {
			continue
		}
		// One numeric operand is enough: the unparsable side counts as 0.
		if utils.IsNumeric(s) {
			return KindNumber
		}
	}
	return KindText
}
