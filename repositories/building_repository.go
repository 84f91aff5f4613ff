package repositories

import (
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/dnstock/realty-backend/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type BuildingRepository interface {
	GetByID(rc *RequestContext, id int64) (*models.Building, error)
	GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Building], error)
	GetPageForParent(rc *RequestContext, propertyID int64, skip, limit int) (*Page[*models.Building], error)

	Create(rc *RequestContext, payload Fields, propertyID int64) (*models.Building, error)
	Update(rc *RequestContext, payload Fields, id int64) (*models.Building, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type buildingRepo struct {
	d *Descriptor[*models.Building]
}

func NewBuildingRepository() BuildingRepository {
	return &buildingRepo{d: NewDescriptor(Descriptor[*models.Building]{
		Table: "buildings",
		SelectColumns: []string{
			"id", "name", "floor_count", "has_elevator", "has_laundry", "property_id",
			"is_active", "is_flagged", "notes", "created_at", "updated_at",
		},
		ParentColumn: "property_id",
		Chain: []Hop{
			{Table: "properties", Key: "property_id"},
		},
		Scan: scanBuilding,
	})}
}

func (r *buildingRepo) GetByID(rc *RequestContext, id int64) (*models.Building, error) {
	return GetByID(rc, r.d, id)
}

func (r *buildingRepo) GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Building], error) {
	return GetPage(rc, r.d, skip, limit)
}

func (r *buildingRepo) GetPageForParent(rc *RequestContext, propertyID int64, skip, limit int) (*Page[*models.Building], error) {
	return GetPageForParent(rc, r.d, propertyID, skip, limit)
}

func (r *buildingRepo) Create(rc *RequestContext, payload Fields, propertyID int64) (*models.Building, error) {
	return Create(rc, r.d, payload, propertyID)
}

func (r *buildingRepo) Update(rc *RequestContext, payload Fields, id int64) (*models.Building, error) {
	return Update(rc, r.d, payload, id)
}

func scanBuilding(row pgx.Row) (*models.Building, error) {
	var b models.Building
	var notes pgtype.Text
	if err := row.Scan(
		&b.ID, &b.Name, &b.FloorCount, &b.HasElevator, &b.HasLaundry, &b.PropertyID,
		&b.IsActive, &b.IsFlagged, &notes, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.Notes = textPtr(notes)
	return &b, nil
}
