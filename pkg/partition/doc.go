// Package partition maps organization display names to the identifiers of
// their per-tenant data partitions.
package partition
