// Package model defines the database models for orghub.
//
// This package contains GORM models that map to the metadata store schema.
//
// # Core Models
//
//   - Organization: tenant metadata, including the current partition id
//   - Admin: the organization's sole admin credential
//
// Tenant partitions themselves are not modeled; they are dynamically named
// tables whose existence is implied by the Organization record referencing
// them.
package model
