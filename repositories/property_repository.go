package repositories

import (
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/dnstock/realty-backend/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	GetByID(rc *RequestContext, id int64) (*models.Property, error)
	GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Property], error)

	Create(rc *RequestContext, payload Fields) (*models.Property, error)
	Update(rc *RequestContext, payload Fields, id int64) (*models.Property, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	d *Descriptor[*models.Property]
}

// NewPropertyRepository binds the engine to the properties table. Properties
// are the only records with a stored owner column; the engine stamps it with
// the context user on create.
func NewPropertyRepository() PropertyRepository {
	return &propertyRepo{d: NewDescriptor(Descriptor[*models.Property]{
		Table: "properties",
		SelectColumns: []string{
			"id", "name", "address", "city", "state", "zip_code", "property_type", "manager_id",
			"is_active", "is_flagged", "notes", "created_at", "updated_at",
		},
		OwnerColumn: managerColumn,
		Scan:        scanProperty,
	})}
}

func (r *propertyRepo) GetByID(rc *RequestContext, id int64) (*models.Property, error) {
	return GetByID(rc, r.d, id)
}

func (r *propertyRepo) GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Property], error) {
	return GetPage(rc, r.d, skip, limit)
}

func (r *propertyRepo) Create(rc *RequestContext, payload Fields) (*models.Property, error) {
	return Create(rc, r.d, payload, 0)
}

func (r *propertyRepo) Update(rc *RequestContext, payload Fields, id int64) (*models.Property, error) {
	return Update(rc, r.d, payload, id)
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	var notes pgtype.Text
	if err := row.Scan(
		&p.ID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode, &p.PropertyType, &p.ManagerID,
		&p.IsActive, &p.IsFlagged, &notes, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Notes = textPtr(notes)
	return &p, nil
}
