// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structures and valid values for server
// settings, such as the supported reporting currencies.
//
// The reporting currency is deliberately an explicit configuration value
// handed to the features that render amounts, never ambient global state.
package server
