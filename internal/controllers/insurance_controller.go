package controllers

import (
	"net/http"

	"github.com/dnstock/realty-backend/internal/dtos"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

type InsuranceController struct {
	insuranceRepo repositories.InsuranceRepository
	runner        repositories.ContextRunner
}

func NewInsuranceController(insuranceRepo repositories.InsuranceRepository, runner repositories.ContextRunner) *InsuranceController {
	return &InsuranceController{insuranceRepo: insuranceRepo, runner: runner}
}

// GET /api/v1/insurances
func (c *InsuranceController) ListHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Insurance], error) {
			return c.insuranceRepo.GetPage(rc, skip, limit)
		})
}

// GET /api/v1/tenants/{parentId}/insurances
func (c *InsuranceController) ListForTenantHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	tenantID, err := pathID(r, "parentId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	skip, limit := pageParams(r)

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*repositories.Page[*models.Insurance], error) {
			if err := repositories.AuthorizeOwnership(rc, "Tenant", tenantID); err != nil {
				return nil, err
			}
			return c.insuranceRepo.GetPageForParent(rc, tenantID, skip, limit)
		})
}

// GET /api/v1/insurances/{id}
func (c *InsuranceController) GetHandler(w http.ResponseWriter, r *http.Request) {
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
		func(rc *repositories.RequestContext) (*models.Insurance, error) {
			return c.insuranceRepo.GetByID(rc, id)
		})
}

// POST /api/v1/tenants/{parentId}/insurances
func (c *InsuranceController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	tenantID, err := pathID(r, "parentId")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.CreateInsuranceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusCreated,
		func(rc *repositories.RequestContext) (*models.Insurance, error) {
			if err := repositories.AuthorizeOwnership(rc, "Tenant", tenantID); err != nil {
				return nil, err
			}
			return c.insuranceRepo.Create(rc, req.Fields(), tenantID)
		})
}

// PUT /api/v1/insurances/{id}
func (c *InsuranceController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	user := requireUser(w, r)
	if user == nil {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil)
		return
	}
	var req dtos.UpdateInsuranceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	runAndRespond(w, r, c.runner, user, http.StatusOK,
		func(rc *repositories.RequestContext) (*models.Insurance, error) {
			return c.insuranceRepo.Update(rc, req.Fields(), id)
		})
}
