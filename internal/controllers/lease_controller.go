package controllers

import (
	"net/http"

	"github.com/dnstock/realty-backend/internal/dtos"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

type LeaseController struct {
	leaseRepo repositories.LeaseRepository
	runner    repositories.ContextRunner
}

func NewLeaseController(leaseRepo repositories.LeaseRepository, runner repositories.ContextRunner) *LeaseController {
	return &LeaseController{leaseRepo: leaseRepo, runner: runner}
}

// GET /api/v1/leases
func (c *LeaseController) ListHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Lease], error) {
			return c.leaseRepo.GetPage(rc, skip, limit)
		})
}

// GET /api/v1/units/{parentId}/leases
func (c *LeaseController) ListForUnitHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	unitID, err := pathID(r, "parentId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Lease], error) {
			if err := repositories.AuthorizeOwnership(rc, "Unit", unitID); err != nil {
				return nil, err
			}
			return c.leaseRepo.GetPageForParent(rc, unitID, skip, limit)
		})
}

// GET /api/v1/leases/{id}
func (c *LeaseController) GetHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*models.Lease, error) {
			return c.leaseRepo.GetByID(rc, id)
		})
}

// POST /api/v1/units/{parentId}/leases
func (c *LeaseController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	unitID, err := pathID(r, "parentId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.CreateLeaseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusCreated,
		func(rc *repositories.RequestContext) (*models.Lease, error) {
			if err := repositories.AuthorizeOwnership(rc, "Unit", unitID); err != nil {
				return nil, err
			}
			return c.leaseRepo.Create(rc, req.Fields(), unitID)
		})
}

// PUT /api/v1/leases/{id}
func (c *LeaseController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.UpdateLeaseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*models.Lease, error) {
			return c.leaseRepo.Update(rc, req.Fields(), id)
		})
}
