package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnstock/realty-backend/middleware"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

// passthroughRunner executes fn against a request context with no live store;
// the fake repositories below never touch it.
func passthroughRunner(ctx context.Context, user *models.User, fn func(*repositories.RequestContext) error) error {
	return fn(repositories.NewRequestContext(ctx, user, nil))
}

type fakePropertyRepo struct {
	byID    map[int64]*models.Property
	created []repositories.Fields
	updated []repositories.Fields
}

func (r *fakePropertyRepo) GetByID(rc *repositories.RequestContext, id int64) (*models.Property, error) {
	if p, ok := r.byID[id]; ok && p.ManagerID == rc.GetUserID() {
		return p, nil
	}
	return nil, utils.ErrNotFound
}

func (r *fakePropertyRepo) GetPage(rc *repositories.RequestContext, skip, limit int) (*repositories.Page[*models.Property], error) {
	var rows []*models.Property
	for _, p := range r.byID {
		if p.ManagerID == rc.GetUserID() {
			rows = append(rows, p)
		}
	}
	return &repositories.Page[*models.Property]{
		Rows: rows, RowCount: len(rows), PageStart: skip, PageEnd: len(rows),
	}, nil
}

func (r *fakePropertyRepo) Create(rc *repositories.RequestContext, payload repositories.Fields) (*models.Property, error) {
	r.created = append(r.created, payload)
	p := &models.Property{
		Resource:  models.Resource{ID: int64(len(r.byID) + 1), IsActive: true},
		Name:      payload["name"].(string),
		ManagerID: rc.GetUserID(),
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *fakePropertyRepo) Update(rc *repositories.RequestContext, payload repositories.Fields, id int64) (*models.Property, error) {
	p, err := r.GetByID(rc, id)
	if err != nil {
		return nil, err
	}
	r.updated = append(r.updated, payload)
	if name, ok := payload["name"].(string); ok {
		p.Name = name
	}
	return p, nil
}

func authedRequest(method, target string, body []byte, user *models.User, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, user))
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func newPropertyFixture() (*fakePropertyRepo, *PropertyController, *models.User) {
	repo := &fakePropertyRepo{byID: map[int64]*models.Property{
		5: {Resource: models.Resource{ID: 5, IsActive: true}, Name: "Riverside", ManagerID: 1},
		6: {Resource: models.Resource{ID: 6, IsActive: true}, Name: "Foreign", ManagerID: 2},
	}}
	ctrl := NewPropertyController(repo, passthroughRunner)
	user := &models.User{Resource: models.Resource{ID: 1, IsActive: true}}
	return repo, ctrl, user
}

func TestPropertyListReturnsPageEnvelope(t *testing.T) {
	_, ctrl, user := newPropertyFixture()

	rec := httptest.NewRecorder()
	ctrl.ListHandler(rec, authedRequest(http.MethodGet, "/api/v1/properties", nil, user, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "rows")
	assert.Contains(t, body, "rowCount")
	assert.Contains(t, body, "pageStart")
	assert.Contains(t, body, "pageEnd")

	var rows []models.Property
	require.NoError(t, json.Unmarshal(body["rows"], &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Riverside", rows[0].Name)
}

func TestPropertyListRequiresAuth(t *testing.T) {
	_, ctrl, _ := newPropertyFixture()

	rec := httptest.NewRecorder()
	ctrl.ListHandler(rec, authedRequest(http.MethodGet, "/api/v1/properties", nil, nil, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPropertyGetOwnRecord(t *testing.T) {
	_, ctrl, user := newPropertyFixture()

	rec := httptest.NewRecorder()
	ctrl.GetHandler(rec, authedRequest(http.MethodGet, "/api/v1/properties/5", nil, user, map[string]string{"id": "5"}))

	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Riverside", p.Name)
}

func TestPropertyGetForeignRecordIsNotFound(t *testing.T) {
	_, ctrl, user := newPropertyFixture()

	rec := httptest.NewRecorder()
	ctrl.GetHandler(rec, authedRequest(http.MethodGet, "/api/v1/properties/6", nil, user, map[string]string{"id": "6"}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestPropertyCreate(t *testing.T) {
	repo, ctrl, user := newPropertyFixture()

	payload := []byte(`{
		"name": "Hilltop",
		"address": "1 Summit Way",
		"city": "Albany",
		"state": "NY",
		"zip_code": "12203",
		"property_type": "residential"
	}`)

	rec := httptest.NewRecorder()
	ctrl.CreateHandler(rec, authedRequest(http.MethodPost, "/api/v1/properties", payload, user, nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Hilltop", repo.created[0]["name"])

	var p models.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, int64(1), p.ManagerID)
}

func TestPropertyCreateValidation(t *testing.T) {
	repo, ctrl, user := newPropertyFixture()

	// property_type outside the allowed set
	payload := []byte(`{
		"name": "Hilltop",
		"address": "1 Summit Way",
		"city": "Albany",
		"state": "NY",
		"zip_code": "12203",
		"property_type": "castle"
	}`)

	rec := httptest.NewRecorder()
	ctrl.CreateHandler(rec, authedRequest(http.MethodPost, "/api/v1/properties", payload, user, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
	assert.Empty(t, repo.created)
}

func TestPropertyUpdatePartialPayload(t *testing.T) {
	repo, ctrl, user := newPropertyFixture()

	rec := httptest.NewRecorder()
	ctrl.UpdateHandler(rec, authedRequest(
		http.MethodPut, "/api/v1/properties/5",
		[]byte(`{"name": "Riverside Renamed"}`),
		user, map[string]string{"id": "5"},
	))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.updated, 1)

	// Only the provided column is in the patch.
	assert.Equal(t, repositories.Fields{"name": "Riverside Renamed"}, repo.updated[0])
}

func TestPropertyUpdateBadID(t *testing.T) {
	_, ctrl, user := newPropertyFixture()

	rec := httptest.NewRecorder()
	ctrl.UpdateHandler(rec, authedRequest(
		http.MethodPut, "/api/v1/properties/abc",
		[]byte(`{"name": "x"}`),
		user, map[string]string{"id": "abc"},
	))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
