package repositories

import (
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/dnstock/realty-backend/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type TenantRepository interface {
	GetByID(rc *RequestContext, id int64) (*models.Tenant, error)
	GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Tenant], error)
	GetPageForParent(rc *RequestContext, leaseID int64, skip, limit int) (*Page[*models.Tenant], error)

	Create(rc *RequestContext, payload Fields, leaseID int64) (*models.Tenant, error)
	Update(rc *RequestContext, payload Fields, id int64) (*models.Tenant, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type tenantRepo struct {
	d *Descriptor[*models.Tenant]
}

func NewTenantRepository() TenantRepository {
	return &tenantRepo{d: NewDescriptor(Descriptor[*models.Tenant]{
		Table: "tenants",
		SelectColumns: []string{
			"id", "name", "email", "phone", "lease_id",
			"is_active", "is_flagged", "notes", "created_at", "updated_at",
		},
		ParentColumn: "lease_id",
		Chain: []Hop{
			{Table: "leases", Key: "lease_id"},
			{Table: "units", Key: "unit_id"},
			{Table: "buildings", Key: "building_id"},
			{Table: "properties", Key: "property_id"},
		},
		Scan: scanTenant,
	})}
}

func (r *tenantRepo) GetByID(rc *RequestContext, id int64) (*models.Tenant, error) {
	return GetByID(rc, r.d, id)
}

func (r *tenantRepo) GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Tenant], error) {
	return GetPage(rc, r.d, skip, limit)
}

func (r *tenantRepo) GetPageForParent(rc *RequestContext, leaseID int64, skip, limit int) (*Page[*models.Tenant], error) {
	return GetPageForParent(rc, r.d, leaseID, skip, limit)
}

func (r *tenantRepo) Create(rc *RequestContext, payload Fields, leaseID int64) (*models.Tenant, error) {
	return Create(rc, r.d, payload, leaseID)
}

func (r *tenantRepo) Update(rc *RequestContext, payload Fields, id int64) (*models.Tenant, error) {
	return Update(rc, r.d, payload, id)
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	var notes pgtype.Text
	if err := row.Scan(
		&t.ID, &t.Name, &t.Email, &t.Phone, &t.LeaseID,
		&t.IsActive, &t.IsFlagged, &notes, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	t.Notes = textPtr(notes)
	return &t, nil
}
