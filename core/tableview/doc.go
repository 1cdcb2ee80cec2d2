// Package tableview implements the shared list-page state engine: free-text
// search plus multi-criterion, type-aware sorting over loosely typed record
// collections. Every list page in the dashboard (customers, agencies, hotels,
// appointments, orders, staff, transactions) drives its table through this
// engine instead of re-implementing filter and sort logic.
//
// # State Machine
//
// The sort selection is a small two-state machine per key: selecting a new
// key adopts it ascending, selecting the active key again flips the
// direction. The active key always has a defined direction.
//
// # Purity
//
// View never mutates the source collection; it derives a fresh slice that is
// a deterministic function of (records, term, sort key, sort direction).
// Callers may replace the default filter and comparator per table.
package tableview
