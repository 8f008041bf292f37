// Package gorm implements the storage interfaces on top of GORM and
// PostgreSQL. Tenant partitions are dynamically named tables of opaque JSONB
// records, managed with raw SQL.
package gorm
