package repositories

import (
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/dnstock/realty-backend/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type InsuranceRepository interface {
	GetByID(rc *RequestContext, id int64) (*models.Insurance, error)
	GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Insurance], error)
	GetPageForParent(rc *RequestContext, tenantID int64, skip, limit int) (*Page[*models.Insurance], error)

	Create(rc *RequestContext, payload Fields, tenantID int64) (*models.Insurance, error)
	Update(rc *RequestContext, payload Fields, id int64) (*models.Insurance, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type insuranceRepo struct {
	d *Descriptor[*models.Insurance]
}

func NewInsuranceRepository() InsuranceRepository {
	return &insuranceRepo{d: NewDescriptor(Descriptor[*models.Insurance]{
		Table: "insurances",
		SelectColumns: []string{
			"id", "provider", "policy_type", "policy_number", "premium", "effective_date", "expiration_date", "tenant_id",
			"is_active", "is_flagged", "notes", "created_at", "updated_at",
		},
		ParentColumn: "tenant_id",
		Chain: []Hop{
			{Table: "tenants", Key: "tenant_id"},
			{Table: "leases", Key: "lease_id"},
			{Table: "units", Key: "unit_id"},
			{Table: "buildings", Key: "building_id"},
			{Table: "properties", Key: "property_id"},
		},
		Scan: scanInsurance,
	})}
}

func (r *insuranceRepo) GetByID(rc *RequestContext, id int64) (*models.Insurance, error) {
	return GetByID(rc, r.d, id)
}

func (r *insuranceRepo) GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Insurance], error) {
	return GetPage(rc, r.d, skip, limit)
}

func (r *insuranceRepo) GetPageForParent(rc *RequestContext, tenantID int64, skip, limit int) (*Page[*models.Insurance], error) {
	return GetPageForParent(rc, r.d, tenantID, skip, limit)
}

func (r *insuranceRepo) Create(rc *RequestContext, payload Fields, tenantID int64) (*models.Insurance, error) {
	return Create(rc, r.d, payload, tenantID)
}

func (r *insuranceRepo) Update(rc *RequestContext, payload Fields, id int64) (*models.Insurance, error) {
	return Update(rc, r.d, payload, id)
}

func scanInsurance(row pgx.Row) (*models.Insurance, error) {
	var i models.Insurance
	var notes pgtype.Text
	if err := row.Scan(
		&i.ID, &i.Provider, &i.PolicyType, &i.PolicyNumber, &i.Premium, &i.EffectiveDate, &i.ExpirationDate, &i.TenantID,
		&i.IsActive, &i.IsFlagged, &notes, &i.CreatedAt, &i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	i.Notes = textPtr(notes)
	return &i, nil
}
