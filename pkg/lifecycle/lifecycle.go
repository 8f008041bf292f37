// Package lifecycle implements the tenant workflows: create, authenticate,
// lookup, delete and rename. Each workflow is a multi-step sequence over the
// registry, credential and partition stores; interruption points and their
// resulting states are documented per operation.
package lifecycle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"orghub/pkg/config"
	"orghub/pkg/model"
	"orghub/pkg/partition"
	"orghub/pkg/server/store"
	"orghub/pkg/token"
)

// Orchestrator runs the tenant workflows over store interfaces so endpoint
// tests can mock storage.
type Orchestrator struct {
	Orgs       store.OrgsStore
	Admins     store.AdminsStore
	Partitions store.PartitionsStore
	Issuer     *token.Issuer
}

func NewOrchestrator(
	orgs store.OrgsStore,
	admins store.AdminsStore,
	partitions store.PartitionsStore,
	issuer *token.Issuer,
) *Orchestrator {
	return &Orchestrator{
		Orgs:       orgs,
		Admins:     admins,
		Partitions: partitions,
		Issuer:     issuer,
	}
}

// Session is the result of a successful authentication. OrganizationID is
// empty when the admin has no active organization.
type Session struct {
	AccessToken    string
	OrganizationID string
}

// RenameResult reports the registry and partition transition of a rename.
type RenameResult struct {
	OrganizationID string
	OldName        string
	NewName        string
	OldPartitionID string
	NewPartitionID string
}

// CreateOrganization registers a tenant: duplicate-name check, admin
// credential insert, registry insert, partition materialization — in that
// order. A registry unique violation (lost race) deletes the just-created
// admin and reports a conflict. Any later failure leaves the earlier steps
// in place: a registry insert failure other than a duplicate orphans the
// admin credential, and a partition failure leaves the organization
// registered without a partition.
func (o *Orchestrator) CreateOrganization(name, email, password string) (*model.Organization, error) {
	name = strings.TrimSpace(name)

	_, err := o.Orgs.FindByName(name)
	if err == nil {
		return nil, newError(KindConflict, "Organization name already exists")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := o.Admins.Create(admin); err != nil {
		return nil, err
	}

	org := &model.Organization{
		ID:          uuid.NewString(),
		Name:        name,
		PartitionID: partition.DeriveID(name),
		AdminID:     admin.ID,
	}
	if err := o.Orgs.Insert(org); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Lost the race past the pre-check. Undo the admin insert; the
			// undo result is deliberately ignored, matching the conflict
			// response either way.
			_ = o.Admins.Delete(admin.ID)
			return nil, newError(KindConflict, "Organization name already exists (race)")
		}
		return nil, err
	}

	if err := o.Partitions.CreateEmpty(org.PartitionID); err != nil {
		return nil, err
	}

	return org, nil
}

// AuthenticateAdmin verifies an admin credential and issues a session token.
// Unknown email and bad password are indistinguishable to the caller.
func (o *Orchestrator) AuthenticateAdmin(email, password string) (*Session, error) {
	admin, err := o.Admins.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindUnauthorized, "Invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, newError(KindUnauthorized, "Invalid credentials")
	}

	var orgID string
	org, err := o.Orgs.FindByAdmin(admin.ID)
	switch {
	case err == nil:
		orgID = org.ID
	case errors.Is(err, store.ErrNotFound):
		// Admin without an active organization still gets a token, with no
		// org claim.
	default:
		return nil, err
	}

	claims := token.Claims{
		AdminID: admin.ID,
		OrgID:   orgID,
		Email:   admin.Email,
	}
	signed, err := o.Issuer.Issue(claims, config.Get().TokenTTL())
	if err != nil {
		return nil, err
	}

	return &Session{AccessToken: signed, OrganizationID: orgID}, nil
}

// LookupOrganization resolves a non-deleted organization by name,
// case-insensitively. No authentication.
func (o *Orchestrator) LookupOrganization(name string) (*model.Organization, error) {
	org, err := o.Orgs.FindByName(strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindNotFound, "Organization not found")
		}
		return nil, err
	}
	return org, nil
}

// DeleteOrganization soft-deletes the registry record, then drops the
// partition. The caller's token must name the resolved organization. If the
// drop fails the organization is already gone from the registry and the
// partition is leaked; a retried delete then resolves nothing and returns
// not-found, so leaked partitions need operator cleanup.
func (o *Orchestrator) DeleteOrganization(name string, claims *token.Claims) (*model.Organization, error) {
	org, err := o.Orgs.FindByName(strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindNotFound, "Organization not found")
		}
		return nil, err
	}

	if claims.OrgID != org.ID {
		return nil, newError(KindForbidden, "Not authorized to delete this org")
	}

	if err := o.Orgs.MarkDeleted(org.ID, time.Now()); err != nil {
		return nil, err
	}

	if err := o.Partitions.Drop(org.PartitionID); err != nil {
		return nil, err
	}

	return org, nil
}

// RenameOrganization re-authenticates with the supplied email and password,
// resolves that admin's active organization, then migrates the partition:
// copy all records to the newly derived partition, repoint the registry,
// drop the old partition. The bearer token that gated the request is not
// cross-checked against the re-supplied credentials.
//
// Interruption points: a copy failure leaves the old partition authoritative
// (the new one may hold a prefix of the records); a repoint failure leaves
// both partitions with the old one authoritative; a drop failure leaves the
// rename complete with the old partition leaked. A rename whose new name
// derives the same partition id (a case- or punctuation-only change) skips
// the copy and drop entirely.
func (o *Orchestrator) RenameOrganization(newName, email, password string) (*RenameResult, error) {
	admin, err := o.Admins.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindUnauthorized, "Invalid admin credentials")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, newError(KindUnauthorized, "Invalid admin credentials")
	}

	org, err := o.Orgs.FindByAdmin(admin.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, newError(KindNotFound, "Organization not found")
		}
		return nil, err
	}

	newName = strings.TrimSpace(newName)

	existing, err := o.Orgs.FindByName(newName)
	switch {
	case err == nil:
		if existing.ID != org.ID {
			return nil, newError(KindConflict, "New organization name already exists")
		}
		// Renaming to our own name (possibly with different casing) is
		// allowed.
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, err
	}

	newPartitionID := partition.DeriveID(newName)
	migrate := newPartitionID != org.PartitionID

	if migrate {
		if err := o.Partitions.CopyAll(org.PartitionID, newPartitionID); err != nil {
			return nil, err
		}
	}

	if err := o.Orgs.Rename(org.ID, newName, newPartitionID, time.Now()); err != nil {
		return nil, err
	}

	if migrate {
		if err := o.Partitions.Drop(org.PartitionID); err != nil {
			return nil, err
		}
	}

	return &RenameResult{
		OrganizationID: org.ID,
		OldName:        org.Name,
		NewName:        newName,
		OldPartitionID: org.PartitionID,
		NewPartitionID: newPartitionID,
	}, nil
}
