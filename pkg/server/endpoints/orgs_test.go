package endpoints

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orghub/pkg/model"
	"orghub/pkg/server/store"
	"orghub/pkg/token"
)

func TestCreateOrg_Success(t *testing.T) {
	ts := newTestServer(t)

	ts.orgs.On("FindByName", "Acme Corp").Return(nil, store.ErrNotFound)
	ts.admins.On("Create", mock.AnythingOfType("*model.Admin")).Return(nil)
	ts.orgs.On("Insert", mock.AnythingOfType("*model.Organization")).Return(nil)
	ts.partitions.On("CreateEmpty", "org_acme_corp").Return(nil)

	rec := ts.do(t, "POST", "/org/create", map[string]string{
		"organization_name": "Acme Corp",
		"email":             "admin@acme.test",
		"password":          "hunter22",
	}, "")

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Organization created successfully", body["message"])
	assert.Equal(t, "Acme Corp", body["organization_name"])
	assert.Equal(t, "org_acme_corp", body["collection_name"])
	assert.Equal(t, "admin@acme.test", body["admin_email"])
	assert.NotEmpty(t, body["organization_id"])
}

func TestCreateOrg_DuplicateNameIsBadRequest(t *testing.T) {
	ts := newTestServer(t)

	ts.orgs.On("FindByName", "Acme Corp").Return(&model.Organization{ID: "org-1"}, nil)

	rec := ts.do(t, "POST", "/org/create", map[string]string{
		"organization_name": "Acme Corp",
		"email":             "admin@acme.test",
		"password":          "hunter22",
	}, "")

	// Conflicts come back as 400, not 409
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Organization name already exists", decodeBody(t, rec)["detail"])
}

func TestCreateOrg_Validation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"short name", map[string]string{
			"organization_name": "A", "email": "admin@acme.test", "password": "hunter22",
		}},
		{"bad email", map[string]string{
			"organization_name": "Acme Corp", "email": "not-an-email", "password": "hunter22",
		}},
		{"short password", map[string]string{
			"organization_name": "Acme Corp", "email": "admin@acme.test", "password": "pw",
		}},
		{"missing fields", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, "POST", "/org/create", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	ts.orgs.AssertNotCalled(t, "FindByName", mock.Anything)
}

func TestCreateOrg_InvalidBody(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "POST", "/org/create", "not json at all", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrg_Success(t *testing.T) {
	ts := newTestServer(t)

	org := &model.Organization{ID: "org-1", Name: "Acme Corp", PartitionID: "org_acme_corp"}
	ts.orgs.On("FindByName", "Acme Corp").Return(org, nil)

	rec := ts.do(t, "GET", "/org/get?organization_name=Acme+Corp", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "org-1", body["organization_id"])
	assert.Equal(t, "Acme Corp", body["organization_name"])
	assert.Equal(t, "org_acme_corp", body["collection_name"])
}

func TestGetOrg_NotFound(t *testing.T) {
	ts := newTestServer(t)

	ts.orgs.On("FindByName", "Ghost").Return(nil, store.ErrNotFound)

	rec := ts.do(t, "GET", "/org/get?organization_name=Ghost", nil, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Organization not found", decodeBody(t, rec)["detail"])
}

func TestGetOrg_MissingName(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "GET", "/org/get", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteOrg_Success(t *testing.T) {
	ts := newTestServer(t)

	org := &model.Organization{ID: "org-1", Name: "Acme Corp", PartitionID: "org_acme_corp"}
	ts.orgs.On("FindByName", "Acme Corp").Return(org, nil)
	ts.orgs.On("MarkDeleted", "org-1", mock.AnythingOfType("time.Time")).Return(nil)
	ts.partitions.On("Drop", "org_acme_corp").Return(nil)

	bearer := ts.bearerFor(t, token.Claims{AdminID: "admin-1", OrgID: "org-1"})
	rec := ts.do(t, "DELETE", "/org/delete?organization_name=Acme+Corp", nil, bearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Organization deleted (soft) and collection dropped", decodeBody(t, rec)["message"])
}

func TestDeleteOrg_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "DELETE", "/org/delete?organization_name=Acme+Corp", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ts.orgs.AssertNotCalled(t, "FindByName", mock.Anything)
}

func TestDeleteOrg_ForeignTokenIsForbidden(t *testing.T) {
	ts := newTestServer(t)

	org := &model.Organization{ID: "org-1", Name: "Acme Corp", PartitionID: "org_acme_corp"}
	ts.orgs.On("FindByName", "Acme Corp").Return(org, nil)

	bearer := ts.bearerFor(t, token.Claims{AdminID: "admin-2", OrgID: "org-2"})
	rec := ts.do(t, "DELETE", "/org/delete?organization_name=Acme+Corp", nil, bearer)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not authorized to delete this org", decodeBody(t, rec)["detail"])

	ts.orgs.AssertNotCalled(t, "MarkDeleted", mock.Anything, mock.Anything)
}

func TestDeleteOrg_NotFound(t *testing.T) {
	ts := newTestServer(t)

	ts.orgs.On("FindByName", "Ghost").Return(nil, store.ErrNotFound)

	bearer := ts.bearerFor(t, token.Claims{AdminID: "admin-1", OrgID: "org-1"})
	rec := ts.do(t, "DELETE", "/org/delete?organization_name=Ghost", nil, bearer)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateOrg_Success(t *testing.T) {
	ts := newTestServer(t)

	admin := &model.Admin{
		ID:           "admin-1",
		Email:        "admin@acme.test",
		PasswordHash: hashPassword(t, "hunter22"),
	}
	org := &model.Organization{ID: "org-1", Name: "Acme Corp", PartitionID: "org_acme_corp", AdminID: "admin-1"}

	ts.admins.On("FindByEmail", "admin@acme.test").Return(admin, nil)
	ts.orgs.On("FindByAdmin", "admin-1").Return(org, nil)
	ts.orgs.On("FindByName", "Globex").Return(nil, store.ErrNotFound)
	ts.partitions.On("CopyAll", "org_acme_corp", "org_globex").Return(nil)
	ts.orgs.On("Rename", "org-1", "Globex", "org_globex", mock.AnythingOfType("time.Time")).Return(nil)
	ts.partitions.On("Drop", "org_acme_corp").Return(nil)

	bearer := ts.bearerFor(t, token.Claims{AdminID: "admin-1", OrgID: "org-1"})
	rec := ts.do(t, "PUT", "/org/update", map[string]string{
		"organization_name": "Globex",
		"email":             "admin@acme.test",
		"password":          "hunter22",
	}, bearer)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Organization updated successfully", body["message"])
	assert.Equal(t, "Acme Corp", body["old_name"])
	assert.Equal(t, "Globex", body["new_name"])
	assert.Equal(t, "org_acme_corp", body["old_collection"])
	assert.Equal(t, "org_globex", body["new_collection"])
}

// The bearer token gates the route but is not cross-checked against the
// body credentials: a valid token belonging to one org admin can drive a
// rename re-authenticated as a different admin.
func TestUpdateOrg_TokenNotCrossChecked(t *testing.T) {
	ts := newTestServer(t)

	admin := &model.Admin{
		ID:           "admin-1",
		Email:        "admin@acme.test",
		PasswordHash: hashPassword(t, "hunter22"),
	}
	org := &model.Organization{ID: "org-1", Name: "Acme Corp", PartitionID: "org_acme_corp", AdminID: "admin-1"}

	ts.admins.On("FindByEmail", "admin@acme.test").Return(admin, nil)
	ts.orgs.On("FindByAdmin", "admin-1").Return(org, nil)
	ts.orgs.On("FindByName", "Globex").Return(nil, store.ErrNotFound)
	ts.partitions.On("CopyAll", "org_acme_corp", "org_globex").Return(nil)
	ts.orgs.On("Rename", "org-1", "Globex", "org_globex", mock.AnythingOfType("time.Time")).Return(nil)
	ts.partitions.On("Drop", "org_acme_corp").Return(nil)

	// Token for a completely different admin and org
	bearer := ts.bearerFor(t, token.Claims{AdminID: "admin-9", OrgID: "org-9"})
	rec := ts.do(t, "PUT", "/org/update", map[string]string{
		"organization_name": "Globex",
		"email":             "admin@acme.test",
		"password":          "hunter22",
	}, bearer)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateOrg_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, "PUT", "/org/update", map[string]string{
		"organization_name": "Globex",
		"email":             "admin@acme.test",
		"password":          "hunter22",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	ts.admins.AssertNotCalled(t, "FindByEmail", mock.Anything)
}

func TestUpdateOrg_BadBodyCredentials(t *testing.T) {
	ts := newTestServer(t)

	admin := &model.Admin{
		ID:           "admin-1",
		Email:        "admin@acme.test",
		PasswordHash: hashPassword(t, "hunter22"),
	}
	ts.admins.On("FindByEmail", "admin@acme.test").Return(admin, nil)

	bearer := ts.bearerFor(t, token.Claims{AdminID: "admin-1", OrgID: "org-1"})
	rec := ts.do(t, "PUT", "/org/update", map[string]string{
		"organization_name": "Globex",
		"email":             "admin@acme.test",
		"password":          "wrongpass",
	}, bearer)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid admin credentials", decodeBody(t, rec)["detail"])
}

func TestUpdateOrg_ShortPassword(t *testing.T) {
	ts := newTestServer(t)

	bearer := ts.bearerFor(t, token.Claims{AdminID: "admin-1", OrgID: "org-1"})
	rec := ts.do(t, "PUT", "/org/update", map[string]string{
		"organization_name": "Globex",
		"email":             "admin@acme.test",
		"password":          "pw",
	}, bearer)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "password must be at least 6 characters", decodeBody(t, rec)["detail"])

	ts.admins.AssertNotCalled(t, "FindByEmail", mock.Anything)
}

func TestUpdateOrg_NewNameConflict(t *testing.T) {
	ts := newTestServer(t)

	admin := &model.Admin{
		ID:           "admin-1",
		Email:        "admin@acme.test",
		PasswordHash: hashPassword(t, "hunter22"),
	}
	org := &model.Organization{ID: "org-1", Name: "Acme Corp", PartitionID: "org_acme_corp", AdminID: "admin-1"}

	ts.admins.On("FindByEmail", "admin@acme.test").Return(admin, nil)
	ts.orgs.On("FindByAdmin", "admin-1").Return(org, nil)
	ts.orgs.On("FindByName", "Globex").Return(&model.Organization{ID: "org-2"}, nil)

	bearer := ts.bearerFor(t, token.Claims{AdminID: "admin-1", OrgID: "org-1"})
	rec := ts.do(t, "PUT", "/org/update", map[string]string{
		"organization_name": "Globex",
		"email":             "admin@acme.test",
		"password":          "hunter22",
	}, bearer)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "New organization name already exists", decodeBody(t, rec)["detail"])
}
