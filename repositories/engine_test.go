package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/utils"
)

func newTestContext(db DB, userID int64) *RequestContext {
	var user *models.User
	if userID != 0 {
		user = &models.User{Resource: models.Resource{ID: userID, IsActive: true}}
	}
	return NewRequestContext(context.Background(), user, db)
}

func TestGetByReturnsSingleMatch(t *testing.T) {
	db := &fakeDB{rowsQueue: []*fakeRows{
		{rows: [][]interface{}{{int64(7), "Hilltop", int64(1)}}},
	}}
	rc := newTestContext(db, 1)

	p, err := GetBy(rc, newPropertyDescriptor(), "id", int64(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "Hilltop", p.Name)

	call := db.lastCall()
	assert.Contains(t, call.sql, "WHERE r.id = $1")
	assert.Contains(t, call.sql, "r.manager_id = $2")
	assert.Contains(t, call.sql, "LIMIT 2")
	assert.Equal(t, []interface{}{int64(7), int64(1)}, call.args)
}

func TestGetByNoMatchIsNotFound(t *testing.T) {
	db := &fakeDB{rowsQueue: []*fakeRows{{}}}
	rc := newTestContext(db, 1)

	_, err := GetBy(rc, newPropertyDescriptor(), "id", int64(404))
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetByAmbiguousMatchIsNotFound(t *testing.T) {
	db := &fakeDB{rowsQueue: []*fakeRows{
		{rows: [][]interface{}{
			{int64(1), "A", int64(1)},
			{int64(2), "B", int64(1)},
		}},
	}}
	rc := newTestContext(db, 1)

	_, err := GetBy(rc, newPropertyDescriptor(), "name", "dup")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetPageScopesToOwnerAndClamps(t *testing.T) {
	db := &fakeDB{
		rowQueue:  []*fakeRow{{vals: []interface{}{7}}},
		rowsQueue: []*fakeRows{{rows: [][]interface{}{{int64(3), "Hilltop", int64(1)}}}},
	}
	rc := newTestContext(db, 1)

	page, err := GetPage(rc, newPropertyDescriptor(), 6, 10)
	require.NoError(t, err)

	assert.Equal(t, 7, page.RowCount)
	assert.Equal(t, 6, page.PageStart)
	assert.Equal(t, 7, page.PageEnd)
	require.Len(t, page.Rows, 1)

	countCall := db.calls[0]
	assert.Contains(t, countCall.sql, "COUNT(*)")
	assert.Contains(t, countCall.sql, "r.manager_id = $1")
	assert.Equal(t, []interface{}{int64(1)}, countCall.args)

	pageCall := db.calls[1]
	assert.Contains(t, pageCall.sql, "ORDER BY r.id LIMIT $2 OFFSET $3")
	assert.Equal(t, []interface{}{int64(1), 10, 6}, pageCall.args)
}

func TestGetPageForParentJoinsChain(t *testing.T) {
	db := &fakeDB{
		rowQueue:  []*fakeRow{{vals: []interface{}{2}}},
		rowsQueue: []*fakeRows{{rows: [][]interface{}{{int64(11), "4B", int64(20)}}}},
	}
	rc := newTestContext(db, 1)

	page, err := GetPageForParent(rc, newUnitDescriptor(), 20, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.RowCount)

	countCall := db.calls[0]
	assert.Contains(t, countCall.sql, "JOIN buildings p1")
	assert.Contains(t, countCall.sql, "JOIN properties p2")
	assert.Contains(t, countCall.sql, "r.building_id = $1")
	assert.Contains(t, countCall.sql, "p2.manager_id = $2")
	assert.Equal(t, []interface{}{int64(20), int64(1)}, countCall.args)
}

func TestGetPageForParentRequiresParentColumn(t *testing.T) {
	rc := newTestContext(&fakeDB{}, 1)

	_, err := GetPageForParent(rc, newPropertyDescriptor(), 20, 0, 10)
	assert.ErrorIs(t, err, utils.ErrInternal)
}

func TestCreateForcesContextOwner(t *testing.T) {
	db := &fakeDB{
		rowQueue:  []*fakeRow{{vals: []interface{}{int64(7)}}},
		rowsQueue: []*fakeRows{{rows: [][]interface{}{{int64(7), "Hilltop", int64(1)}}}},
	}
	rc := newTestContext(db, 1)

	// A spoofed manager_id in the payload must be overwritten.
	p, err := Create(rc, newPropertyDescriptor(), Fields{
		"name":       "Hilltop",
		"manager_id": int64(999),
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)

	insert := db.calls[0]
	assert.True(t, strings.HasPrefix(insert.sql, "INSERT INTO properties"))
	assert.Contains(t, insert.sql, "RETURNING id")

	// Sorted columns: is_active, is_flagged, manager_id, name.
	assert.Contains(t, insert.sql, "(is_active, is_flagged, manager_id, name, created_at, updated_at)")
	assert.Equal(t, []interface{}{true, false, int64(1), "Hilltop"}, insert.args)
}

func TestCreateSetsParentFK(t *testing.T) {
	db := &fakeDB{
		rowQueue:  []*fakeRow{{vals: []interface{}{int64(11)}}},
		rowsQueue: []*fakeRows{{rows: [][]interface{}{{int64(11), "4B", int64(20)}}}},
	}
	rc := newTestContext(db, 1)

	_, err := Create(rc, newUnitDescriptor(), Fields{"unit_number": "4B"}, 20)
	require.NoError(t, err)

	insert := db.calls[0]
	assert.Contains(t, insert.sql, "(building_id, is_active, is_flagged, unit_number, created_at, updated_at)")
	assert.Equal(t, []interface{}{int64(20), true, false, "4B"}, insert.args)
}

func TestCreateConstraintViolationIsConflict(t *testing.T) {
	db := &fakeDB{rowQueue: []*fakeRow{
		{err: &pgconn.PgError{Code: "23505"}},
	}}
	rc := newTestContext(db, 1)

	_, err := Create(rc, newPropertyDescriptor(), Fields{"name": "dup"}, 0)
	assert.ErrorIs(t, err, utils.ErrConflict)
}

func TestUpdateMissingRowIsNotFound(t *testing.T) {
	db := &fakeDB{rowsQueue: []*fakeRows{{}}}
	rc := newTestContext(db, 1)

	_, err := Update(rc, newPropertyDescriptor(), Fields{"name": "x"}, 404)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	// Only the scoped load ran; no UPDATE was issued.
	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].sql, "SELECT")
}

func TestUpdateStripsKeyColumns(t *testing.T) {
	db := &fakeDB{rowsQueue: []*fakeRows{
		{rows: [][]interface{}{{int64(11), "4B", int64(20)}}},
		{rows: [][]interface{}{{int64(11), "7C", int64(20)}}},
	}}
	rc := newTestContext(db, 1)

	u, err := Update(rc, newUnitDescriptor(), Fields{
		"id":          int64(999),
		"building_id": int64(999),
		"unit_number": "7C",
	}, 11)
	require.NoError(t, err)
	assert.Equal(t, "7C", u.UnitNumber)
	assert.Equal(t, int64(20), u.BuildingID)

	// calls: scoped load, UPDATE, refresh load
	require.Len(t, db.calls, 3)
	update := db.calls[1]
	assert.Contains(t, update.sql, "UPDATE units SET unit_number = $1, updated_at = NOW() WHERE id = $2")
	assert.Equal(t, []interface{}{"7C", int64(11)}, update.args)
}

func TestUpdateEmptyPayloadReloadsRow(t *testing.T) {
	db := &fakeDB{rowsQueue: []*fakeRows{
		{rows: [][]interface{}{{int64(11), "4B", int64(20)}}},
		{rows: [][]interface{}{{int64(11), "4B", int64(20)}}},
	}}
	rc := newTestContext(db, 1)

	u, err := Update(rc, newUnitDescriptor(), Fields{"id": int64(999)}, 11)
	require.NoError(t, err)
	assert.Equal(t, "4B", u.UnitNumber)

	for _, call := range db.calls {
		assert.NotContains(t, call.sql, "UPDATE")
	}
}

func TestExistsWhere(t *testing.T) {
	db := &fakeDB{rowQueue: []*fakeRow{{vals: []interface{}{int64(1)}}}}
	rc := newTestContext(db, 1)

	ok, err := ExistsWhere(rc, newPropertyDescriptor(), "name", "Hilltop")
	require.NoError(t, err)
	assert.True(t, ok)

	call := db.lastCall()
	assert.Contains(t, call.sql, "COUNT(*)")
	assert.Contains(t, call.sql, "WHERE r.name = $1")
	assert.Contains(t, call.sql, "r.manager_id = $2")
}

func TestIsConstraintViolation(t *testing.T) {
	assert.True(t, isConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isConstraintViolation(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isConstraintViolation(assert.AnError))
}
