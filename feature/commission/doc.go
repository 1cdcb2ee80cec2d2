// Package commission serves the reconciliation side of the dashboard: the
// summary cards (agency count, top agencies, total outstanding commission)
// and the per-agency owed/paid/outstanding balance table.
//
// The heavy lifting lives in core/reconcile; this package loads the source
// collections from the database, caches the derived snapshot for the
// configured TTL, and exposes it over HTTP. The balance table reuses the
// shared table view engine, so it searches and sorts like every list page.
//
// # HTTP Endpoints
//
//   - GET  /commission/summary : dashboard summary statistics.
//   - GET  /commission/agencies : balance table (?q=, ?sort=, ?dir=).
//   - POST /commission/refresh : drop the cached snapshot.
package commission
