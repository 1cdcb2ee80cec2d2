// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure the hosted MySQL store the dashboard reads
// from; sqlite (in-memory) backs the test suites.
//
// # Connect
//
// Connect switches on Config.Driver. The MySQL path sets pool limits and
// verifies the connection with a bounded ping; the sqlite path opens the
// file or ":memory:" directly.
//
// # Schema Inspection
//
// GetTableColumns and HasTable support the health feature, which verifies
// that the tables the list pages query actually exist with the expected
// columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "customers")
package database
