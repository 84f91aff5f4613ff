package repositories

import (
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/dnstock/realty-backend/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// UserRepository manages manager accounts. Users sit at the root of the
// ownership hierarchy, so none of their operations are owner-scoped; email
// lookups also run before any identity exists (login, registration).
type UserRepository interface {
	GetByID(rc *RequestContext, id int64) (*models.User, error)
	GetByEmail(rc *RequestContext, email string) (*models.User, error)
	ExistsByEmail(rc *RequestContext, email string) (bool, error)

	Create(rc *RequestContext, payload Fields) (*models.User, error)
	Update(rc *RequestContext, payload Fields, id int64) (*models.User, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type userRepo struct {
	d *Descriptor[*models.User]
}

func NewUserRepository() UserRepository {
	return &userRepo{d: NewDescriptor(Descriptor[*models.User]{
		Table: "users",
		SelectColumns: []string{
			"id", "name", "email", "password",
			"is_active", "is_flagged", "notes", "created_at", "updated_at",
		},
		Scan: scanUser,
	})}
}

func (r *userRepo) GetByID(rc *RequestContext, id int64) (*models.User, error) {
	return GetByID(rc, r.d, id)
}

func (r *userRepo) GetByEmail(rc *RequestContext, email string) (*models.User, error) {
	return GetBy(rc, r.d, "email", email)
}

func (r *userRepo) ExistsByEmail(rc *RequestContext, email string) (bool, error) {
	return ExistsWhere(rc, r.d, "email", email)
}

func (r *userRepo) Create(rc *RequestContext, payload Fields) (*models.User, error) {
	return Create(rc, r.d, payload, 0)
}

func (r *userRepo) Update(rc *RequestContext, payload Fields, id int64) (*models.User, error) {
	return Update(rc, r.d, payload, id)
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	var notes pgtype.Text
	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password,
		&u.IsActive, &u.IsFlagged, &notes, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Notes = textPtr(notes)
	return &u, nil
}
