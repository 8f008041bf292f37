// Package store defines the storage interfaces used by the server and the
// tenant lifecycle orchestrator. Implementations live in subpackages.
package store
