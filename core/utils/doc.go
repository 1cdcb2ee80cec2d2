// Package utils provides common utility functions for the backoffice application.
// It includes defensive type-coercion helpers shared by the record comparison
// primitives and the dashboard aggregations, where field values arrive with
// whatever type the row scan produced.
package utils
