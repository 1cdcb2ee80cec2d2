package record

import (
	"strings"

	"backoffice/core/utils"
)

// Compare orders two records by the given key using the key's classified
// kind. It returns a negative value when a sorts before b, zero when the two
// are equal under the key, and a positive value otherwise. Classification is
// per pair: in a mixed-type column two non-numeric values compare as text
// against each other but coerce to 0 against a numeric one, so the relation
// is a total order for any fixed pair yet not strictly transitive across the
// whole column. A stable sort stays well defined; equal-comparing values keep
// their input order.
func Compare(a, b Record, key string) int {
	av, bv := a[key], b[key]

	switch KeyKind(key, av, bv) {
	case KindTime:
		at, bt := utils.ToTime(av), utils.ToTime(bv)
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	case KindNumber:
		af, bf := utils.ToFloat64(av), utils.ToFloat64(bv)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	default:
		return strings.Compare(
			strings.ToLower(utils.ToString(av)),
			strings.ToLower(utils.ToString(bv)),
		)
	}
}

// Matches reports whether any of the candidate fields contains the term as a
// case-insensitive substring. A nil candidate list means every field is
// searched. Nil values never match. The term is expected lower-cased and
// non-empty; callers handle the empty-term fast path.
func Matches(r Record, term string, fields []string) bool {
	if len(fields) == 0 {
		for _, v := range r {
			if containsFold(v, term) {
				return true
			}
		}
		return false
	}
	for _, f := range fields {
		if containsFold(r[f], term) {
			return true
		}
	}
	return false
}

func containsFold(v any, term string) bool {
	if v == nil {
		return false
	}
	return strings.Contains(strings.ToLower(utils.ToString(v)), term)
}
