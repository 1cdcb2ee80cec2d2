// Package record defines the loosely typed row shape shared by every list
// page, plus the comparison primitives the table view engine builds on.
//
// # Sort Key Classification
//
// Instead of ad hoc string sniffing at each call site, the comparison
// strategy for a sort key is an explicit, enumerated policy (KeyKind):
//
//   - KindTime: the key name belongs to the timestamp vocabulary
//     (date, created_at, ...) or carries a timestamp suffix (_at, _date).
//     Values that fail to parse count as the zero time and sort first.
//   - KindNumber: at least one sample value is numeric or numeric-like.
//     Unparsable values count as zero.
//   - KindText: everything else; case-insensitive comparison.
//
// This keeps the policy unit-testable independently of any record schema.
//
// # Defensive Semantics
//
// Every function in this package is total: missing fields, nil values, and
// wrong types degrade to safe defaults instead of panicking, matching the
// never-crash policy of the dashboard.
package record
