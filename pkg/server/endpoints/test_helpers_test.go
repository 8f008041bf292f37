package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"orghub/pkg/lifecycle"
	"orghub/pkg/server"
	"orghub/pkg/token"
)

type testServer struct {
	srv        *server.Server
	orgs       *MockOrgsStore
	admins     *MockAdminsStore
	partitions *MockPartitionsStore
	issuer     *token.Issuer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	orgs := NewMockOrgsStore()
	admins := NewMockAdminsStore()
	partitions := NewMockPartitionsStore()

	issuer, err := token.NewIssuer([]byte("test-secret"), "HS256")
	require.NoError(t, err)

	orchestrator := lifecycle.NewOrchestrator(orgs, admins, partitions, issuer)
	srv := server.NewServer(orchestrator, issuer, nil, "localhost", "0")
	RegisterAll(srv)

	return &testServer{
		srv:        srv,
		orgs:       orgs,
		admins:     admins,
		partitions: partitions,
		issuer:     issuer,
	}
}

func (ts *testServer) do(t *testing.T, method, target string, body interface{}, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	ts.srv.Router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) bearerFor(t *testing.T, claims token.Claims) string {
	t.Helper()
	signed, err := ts.issuer.Issue(claims, time.Minute)
	require.NoError(t, err)
	return signed
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}
