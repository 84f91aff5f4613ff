package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

const (
	demoManagerEmail    = "demo@realty.test"
	demoManagerPassword = "demo-password-1"
)

// SeedRepos bundles everything SeedDemoData writes through.
type SeedRepos struct {
	Users      repositories.UserRepository
	Properties repositories.PropertyRepository
	Buildings  repositories.BuildingRepository
	Units      repositories.UnitRepository
	Leases     repositories.LeaseRepository
	Tenants    repositories.TenantRepository
	Insurances repositories.InsuranceRepository
}

/* ------------------------------------------------------------------
   Seed a demo manager with a full sample portfolio (test/demo only)
------------------------------------------------------------------ */

// SeedDemoData inserts a demo manager and one property subtree down to an
// insurance policy. It is idempotent: if the demo manager already exists,
// nothing is written.
func SeedDemoData(runner repositories.ContextRunner) error {
	ctx := context.Background()

	var manager *models.User
	err := runner(ctx, nil, func(rc *repositories.RequestContext) error {
		users := NewSeedRepos().Users
		exists, err := users.ExistsByEmail(rc, demoManagerEmail)
		if err != nil {
			return fmt.Errorf("check for demo manager: %w", err)
		}
		if exists {
			utils.Logger.Infof("Demo manager already present (%s); skipping seed.", demoManagerEmail)
			return nil
		}

		hash, err := utils.HashPassword(demoManagerPassword)
		if err != nil {
			return fmt.Errorf("hash demo password: %w", err)
		}
		manager, err = users.Create(rc, repositories.Fields{
			"name":     "Demo Manager",
			"email":    demoManagerEmail,
			"password": hash,
		})
		if err != nil {
			return fmt.Errorf("insert demo manager: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if manager == nil {
		return nil
	}

	utils.Logger.Infof("Created demo manager id=%d, seeding sample portfolio.", manager.ID)

	return runner(ctx, manager, func(rc *repositories.RequestContext) error {
		repos := NewSeedRepos()

		property, err := repos.Properties.Create(rc, repositories.Fields{
			"name":          "Riverside Commons",
			"address":       "410 Riverside Dr",
			"city":          "Albany",
			"state":         "NY",
			"zip_code":      "12202",
			"property_type": "residential",
		})
		if err != nil {
			return fmt.Errorf("seed property: %w", err)
		}

		building, err := repos.Buildings.Create(rc, repositories.Fields{
			"name":         "North Tower",
			"floor_count":  6,
			"has_elevator": true,
			"has_laundry":  true,
		}, property.ID)
		if err != nil {
			return fmt.Errorf("seed building: %w", err)
		}

		unit, err := repos.Units.Create(rc, repositories.Fields{
			"unit_number":  "4B",
			"floor_number": 4,
			"bedrooms":     2,
			"bathrooms":    1.5,
			"sqft":         940,
			"is_vacant":    false,
		}, building.ID)
		if err != nil {
			return fmt.Errorf("seed unit: %w", err)
		}

		lease, err := repos.Leases.Create(rc, repositories.Fields{
			"start_date": time.Now().AddDate(0, -6, 0),
			"end_date":   time.Now().AddDate(0, 6, 0),
			"rent":       1850.0,
			"deposit":    1850.0,
		}, unit.ID)
		if err != nil {
			return fmt.Errorf("seed lease: %w", err)
		}

		tenant, err := repos.Tenants.Create(rc, repositories.Fields{
			"name":  "Jordan Ellis",
			"email": "jordan.ellis@example.com",
			"phone": "+15551234567",
		}, lease.ID)
		if err != nil {
			return fmt.Errorf("seed tenant: %w", err)
		}

		if _, err := repos.Insurances.Create(rc, repositories.Fields{
			"provider":        "Lemonade",
			"policy_type":     "renters",
			"policy_number":   "LMD-2026-004481",
			"premium":         14.5,
			"effective_date":  time.Now().AddDate(0, -6, 0),
			"expiration_date": time.Now().AddDate(0, 6, 0),
		}, tenant.ID); err != nil {
			return fmt.Errorf("seed insurance: %w", err)
		}

		utils.Logger.Info("Seeded demo portfolio down to the insurance policy.")
		return nil
	})
}

// NewSeedRepos wires the full repository set used by the seeder.
func NewSeedRepos() SeedRepos {
	return SeedRepos{
		Users:      repositories.NewUserRepository(),
		Properties: repositories.NewPropertyRepository(),
		Buildings:  repositories.NewBuildingRepository(),
		Units:      repositories.NewUnitRepository(),
		Leases:     repositories.NewLeaseRepository(),
		Tenants:    repositories.NewTenantRepository(),
		Insurances: repositories.NewInsuranceRepository(),
	}
}
