// Package db provides database connection utilities for the metadata store.
package db
