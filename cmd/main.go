package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/dnstock/realty-backend/internal/app"
	"github.com/dnstock/realty-backend/internal/config"
	"github.com/dnstock/realty-backend/internal/controllers"
	"github.com/dnstock/realty-backend/internal/routes"
	"github.com/dnstock/realty-backend/internal/services"
	"github.com/dnstock/realty-backend/middleware"
	"github.com/dnstock/realty-backend/models"
	"github.com/dnstock/realty-backend/repositories"
	"github.com/dnstock/realty-backend/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize realty-backend:", err)
	}
	defer application.Close()

	runner := repositories.PoolRunner(application.DB)

	userRepo := repositories.NewUserRepository()
	propertyRepo := repositories.NewPropertyRepository()
	buildingRepo := repositories.NewBuildingRepository()
	unitRepo := repositories.NewUnitRepository()
	leaseRepo := repositories.NewLeaseRepository()
	tenantRepo := repositories.NewTenantRepository()
	insuranceRepo := repositories.NewInsuranceRepository()

	authService := services.NewAuthService(cfg, userRepo)
	sweepService := services.NewInsuranceSweepService(application.DB)

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(runner); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed demo data")
		}
	}

	healthController := controllers.NewHealthController()
	authController := controllers.NewAuthController(authService, runner)
	userController := controllers.NewUserController(authService, userRepo, runner)
	propertyController := controllers.NewPropertyController(propertyRepo, runner)
	buildingController := controllers.NewBuildingController(buildingRepo, runner)
	unitController := controllers.NewUnitController(unitRepo, runner)
	leaseController := controllers.NewLeaseController(leaseRepo, runner)
	tenantController := controllers.NewTenantController(tenantRepo, runner)
	insuranceController := controllers.NewInsuranceController(insuranceRepo, runner)

	// The auth middleware loads the full user record on every request so the
	// persistence layer always scopes queries to a fresh account state.
	loadUser := func(ctx context.Context, id int64) (*models.User, error) {
		var user *models.User
		err := runner(ctx, nil, func(rc *repositories.RequestContext) error {
			var err error
			user, err = userRepo.GetByID(rc, id)
			return err
		})
		return user, err
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestID)

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthRefresh, authController.RefreshHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Users, userController.RegisterHandler).Methods(http.MethodPost)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey, cfg.TokenIssuer, loadUser))

	secured.HandleFunc(routes.UsersMe, userController.GetMeHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UsersMe, userController.UpdateMeHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.Properties, propertyController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Properties, propertyController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Property, propertyController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Property, propertyController.UpdateHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.PropertyBuildings, buildingController.ListForPropertyHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyBuildings, buildingController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Buildings, buildingController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Building, buildingController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Building, buildingController.UpdateHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.BuildingUnits, unitController.ListForBuildingHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.BuildingUnits, unitController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Units, unitController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Unit, unitController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Unit, unitController.UpdateHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.UnitLeases, leaseController.ListForUnitHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UnitLeases, leaseController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Leases, leaseController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Lease, leaseController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Lease, leaseController.UpdateHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.LeaseTenants, tenantController.ListForLeaseHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeaseTenants, tenantController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Tenants, tenantController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Tenant, tenantController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Tenant, tenantController.UpdateHandler).Methods(http.MethodPut)

	secured.HandleFunc(routes.TenantInsurances, insuranceController.ListForTenantHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantInsurances, insuranceController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Insurances, insuranceController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Insurance, insuranceController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Insurance, insuranceController.UpdateHandler).Methods(http.MethodPut)

	c := cron.New()
	_, sweepErr := c.AddFunc("0 4 * * *", func() {
		if e := sweepService.SweepDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled insurance sweep failed")
		}
	})
	if sweepErr != nil {
		utils.Logger.WithError(sweepErr).Fatal("Failed to schedule insurance sweep cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("realty-backend failed to start:", err)
	}
}
