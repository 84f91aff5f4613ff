package repositories

import (
	"context"

	"github.com/dnstock/realty-backend/models"
)

// RequestContext bundles, for the lifetime of one inbound request, the
// authenticated user (or nil) and the transactional store handle. It is a
// pure carrier: construction is the auth middleware's job, release is
// WithContext's.
type RequestContext struct {
	ctx  context.Context
	user *models.User
	db   DB
}

func NewRequestContext(ctx context.Context, user *models.User, db DB) *RequestContext {
	return &RequestContext{ctx: ctx, user: user, db: db}
}

func (rc *RequestContext) Context() context.Context { return rc.ctx }

// CurrentUser returns the authenticated user record, nil when anonymous.
func (rc *RequestContext) CurrentUser() *models.User { return rc.user }

// GetUserID returns the authenticated user's id, or 0 when anonymous.
func (rc *RequestContext) GetUserID() int64 {
	if rc.user == nil {
		return 0
	}
	return rc.user.ID
}

// IsUserActive reports whether a user is present and active.
func (rc *RequestContext) IsUserActive() bool {
	return rc.user != nil && rc.user.IsActive
}

// GetActiveUserID returns the user id only for active users, 0 otherwise.
func (rc *RequestContext) GetActiveUserID() int64 {
	if !rc.IsUserActive() {
		return 0
	}
	return rc.GetUserID()
}
