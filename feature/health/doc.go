// Package health checks the dashboard's external dependencies: the database
// schema (every table the list pages and the reconciliation read, with the
// columns their queries depend on) and the CSV export bucket.
//
// # HTTP Endpoints
//
//   - GET /health : combined report.
//   - GET /health/database : schema report.
//   - GET /health/storage : bucket report (?fix=true creates it).
package health
