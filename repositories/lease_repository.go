package repositories

import (
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/dnstock/realty-backend/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type LeaseRepository interface {
	GetByID(rc *RequestContext, id int64) (*models.Lease, error)
	GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Lease], error)
	GetPageForParent(rc *RequestContext, unitID int64, skip, limit int) (*Page[*models.Lease], error)

	Create(rc *RequestContext, payload Fields, unitID int64) (*models.Lease, error)
	Update(rc *RequestContext, payload Fields, id int64) (*models.Lease, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type leaseRepo struct {
	d *Descriptor[*models.Lease]
}

func NewLeaseRepository() LeaseRepository {
	return &leaseRepo{d: NewDescriptor(Descriptor[*models.Lease]{
		Table: "leases",
		SelectColumns: []string{
			"id", "start_date", "end_date", "rent", "deposit", "unit_id",
			"is_active", "is_flagged", "notes", "created_at", "updated_at",
		},
		ParentColumn: "unit_id",
		Chain: []Hop{
			{Table: "units", Key: "unit_id"},
			{Table: "buildings", Key: "building_id"},
			{Table: "properties", Key: "property_id"},
		},
		Scan: scanLease,
	})}
}

func (r *leaseRepo) GetByID(rc *RequestContext, id int64) (*models.Lease, error) {
	return GetByID(rc, r.d, id)
}

func (r *leaseRepo) GetPage(rc *RequestContext, skip, limit int) (*Page[*models.Lease], error) {
	return GetPage(rc, r.d, skip, limit)
}

func (r *leaseRepo) GetPageForParent(rc *RequestContext, unitID int64, skip, limit int) (*Page[*models.Lease], error) {
	return GetPageForParent(rc, r.d, unitID, skip, limit)
}

func (r *leaseRepo) Create(rc *RequestContext, payload Fields, unitID int64) (*models.Lease, error) {
	return Create(rc, r.d, payload, unitID)
}

func (r *leaseRepo) Update(rc *RequestContext, payload Fields, id int64) (*models.Lease, error) {
	return Update(rc, r.d, payload, id)
}

func scanLease(row pgx.Row) (*models.Lease, error) {
	var l models.Lease
	var notes pgtype.Text
	var deposit pgtype.Float8
	if err := row.Scan(
		&l.ID, &l.StartDate, &l.EndDate, &l.Rent, &deposit, &l.UnitID,
		&l.IsActive, &l.IsFlagged, &notes, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	l.Notes = textPtr(notes)
	l.Deposit = float8Ptr(deposit)
	return &l, nil
}
