// Package reconcile implements the financial reconciliation engine behind
// the dashboard summary cards: it nets commission owed to each agency
// (earned from orders placed by the agency's linked customers) against
// commission already settled (derived from money movements), and derives the
// aggregate statistics the dashboard renders.
//
// # Attribution
//
// Customers link to agencies through AgencyID; orders link to agencies
// through their customer. References to agencies absent from the agency
// collection are treated as orphaned data and silently excluded.
//
// # Settlement Convention
//
// A movement counts toward "paid" only in two shapes: the agency as
// destination of an expense adds |amount|, the agency as source of an income
// subtracts |amount|. The reverse shapes are deliberately not mirrored; this
// is the accounting convention the business runs on and must not be
// "corrected" here without a product decision.
//
// # Failure Semantics
//
// Every function is total: nil or malformed collections degrade to empty
// statistics. A dashboard never crashes over dirty rows.
//
// Money math uses shopspring/decimal throughout; outstanding balances are
// clamped at zero from below.
package reconcile
