package controllers

import (
	"net/http"

	"github.com/dnstock/realty-backend/internal/dtos"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

type TenantController struct {
	tenantRepo repositories.TenantRepository
	runner     repositories.ContextRunner
}

func NewTenantController(tenantRepo repositories.TenantRepository, runner repositories.ContextRunner) *TenantController {
	return &TenantController{tenantRepo: tenantRepo, runner: runner}
}

// GET /api/v1/tenants
func (c *TenantController) ListHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Tenant], error) {
			return c.tenantRepo.GetPage(rc, skip, limit)
		})
}

// GET /api/v1/leases/{parentId}/tenants
func (c *TenantController) ListForLeaseHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	leaseID, err := pathID(r, "parentId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Tenant], error) {
			if err := repositories.AuthorizeOwnership(rc, "Lease", leaseID); err != nil {
				return nil, err
			}
			return c.tenantRepo.GetPageForParent(rc, leaseID, skip, limit)
		})
}

// GET /api/v1/tenants/{id}
func (c *TenantController) GetHandler(w http.ResponseWriter, r *http.Request) {
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
		func(rc *repositories.RequestContext) (*models.Tenant, error) {
			return c.tenantRepo.GetByID(rc, id)
		})
}

// POST /api/v1/leases/{parentId}/tenants
func (c *TenantController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	leaseID, err := pathID(r, "parentId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.CreateTenantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusCreated,
		func(rc *repositories.RequestContext) (*models.Tenant, error) {
			if err := repositories.AuthorizeOwnership(rc, "Lease", leaseID); err != nil {
				return nil, err
			}
			return c.tenantRepo.Create(rc, req.Fields(), leaseID)
		})
}

// PUT /api/v1/tenants/{id}
func (c *TenantController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.UpdateTenantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*models.Tenant, error) {
			return c.tenantRepo.Update(rc, req.Fields(), id)
		})
}
