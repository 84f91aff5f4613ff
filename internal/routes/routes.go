package routes

const (
	// Health
	Health = "/health"

	// Auth
	AuthLogin   = "/api/v1/auth/login"
	AuthRefresh = "/api/v1/auth/refresh"

	// Users
	Users   = "/api/v1/users"
	UsersMe = "/api/v1/users/me"

	// ───────────────────────────────
	// Portfolio hierarchy
	// ───────────────────────────────
	Properties = "/api/v1/properties"
	Property   = "/api/v1/properties/{id:[0-9]+}"

	PropertyBuildings = "/api/v1/properties/{parentId:[0-9]+}/buildings"
	Buildings         = "/api/v1/buildings"
	Building          = "/api/v1/buildings/{id:[0-9]+}"

	BuildingUnits = "/api/v1/buildings/{parentId:[0-9]+}/units"
	Units         = "/api/v1/units"
	Unit          = "/api/v1/units/{id:[0-9]+}"

	UnitLeases = "/api/v1/units/{parentId:[0-9]+}/leases"
	Leases     = "/api/v1/leases"
	Lease      = "/api/v1/leases/{id:[0-9]+}"

	LeaseTenants = "/api/v1/leases/{parentId:[0-9]+}/tenants"
	Tenants      = "/api/v1/tenants"
	Tenant       = "/api/v1/tenants/{id:[0-9]+}"

	TenantInsurances = "/api/v1/tenants/{parentId:[0-9]+}/insurances"
	Insurances       = "/api/v1/insurances"
	Insurance        = "/api/v1/insurances/{id:[0-9]+}"
)
