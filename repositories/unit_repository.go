package repositories

import (
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/dnstock/realty-backend/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type UnitRepository interface {
	GetByID(rc *RequestContext, id int64) (*models.Unit, error)
	GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Unit], error)
	GetPageForParent(rc *RequestContext, buildingID int64, skip, limit int) (*Page[*models.Unit], error)

	Create(rc *RequestContext, payload Fields, buildingID int64) (*models.Unit, error)
	Update(rc *RequestContext, payload Fields, id int64) (*models.Unit, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type unitRepo struct {
	d *Descriptor[*models.Unit]
}

func NewUnitRepository() UnitRepository {
	return &unitRepo{d: NewDescriptor(Descriptor[*models.Unit]{
		Table: "units",
		SelectColumns: []string{
			"id", "unit_number", "floor_number", "bedrooms", "bathrooms", "sqft", "is_vacant", "building_id",
			"is_active", "is_flagged", "notes", "created_at", "updated_at",
		},
		ParentColumn: "building_id",
		Chain: []Hop{
			{Table: "buildings", Key: "building_id"},
			{Table: "properties", Key: "property_id"},
		},
		Scan: scanUnit,
	})}
}

func (r *unitRepo) GetByID(rc *RequestContext, id int64) (*models.Unit, error) {
	return GetByID(rc, r.d, id)
}

func (r *unitRepo) GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Unit], error) {
	return GetPage(rc, r.d, skip, limit)
}

func (r *unitRepo) GetPageForParent(rc *RequestContext, buildingID int64, skip, limit int) (*Page[*models.Unit], error) {
	return GetPageForParent(rc, r.d, buildingID, skip, limit)
}

func (r *unitRepo) Create(rc *RequestContext, payload Fields, buildingID int64) (*models.Unit, error) {
	return Create(rc, r.d, payload, buildingID)
}

func (r *unitRepo) Update(rc *RequestContext, payload Fields, id int64) (*models.Unit, error) {
	return Update(rc, r.d, payload, id)
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	var u models.Unit
	var notes pgtype.Text
	if err := row.Scan(
		&u.ID, &u.UnitNumber, &u.FloorNumber, &u.Bedrooms, &u.Bathrooms, &u.Sqft, &u.IsVacant, &u.BuildingID,
		&u.IsActive, &u.IsFlagged, &notes, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Notes = textPtr(notes)
	return &u, nil
}
