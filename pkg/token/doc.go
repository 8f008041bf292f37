// Package token issues and verifies the bearer tokens that carry tenant and
// admin identity claims between requests.
package token
