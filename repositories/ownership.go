package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/dnstock/realty-backend/utils"
)

// ownershipPaths declares, per resource type, the ordered hops from a record
// of that type down to the property row carrying manager_id. Each step reads
// one column from one table; resolution always terminates because the
// hierarchy is a fixed acyclic path.
//
// Only six types appear: users own themselves and are never authorized
// through this table.
var ownershipPaths = map[string][]pathStep{
	"Property": {
		{table: "properties", column: managerColumn},
	},
	"Building": {
		{table: "buildings", column: "property_id"},
		{table: "properties", column: managerColumn},
	},
	"Unit": {
		{table: "units", column: "building_id"},
		{table: "buildings", column: "property_id"},
		{table: "properties", column: managerColumn},
	},
	"Lease": {
		{table: "leases", column: "unit_id"},
		{table: "units", column: "building_id"},
		{table: "buildings", column: "property_id"},
		{table: "properties", column: managerColumn},
	},
	"Tenant": {
		{table: "tenants", column: "lease_id"},
		{table: "leases", column: "unit_id"},
		{table: "units", column: "building_id"},
		{table: "buildings", column: "property_id"},
		{table: "properties", column: managerColumn},
	},
	"Insurance": {
		{table: "insurances", column: "tenant_id"},
		{table: "tenants", column: "lease_id"},
		{table: "leases", column: "unit_id"},
		{table: "units", column: "building_id"},
		{table: "buildings", column: "property_id"},
		{table: "properties", column: managerColumn},
	},
}

type pathStep struct {
	table  string
	column string
}

// AuthorizeOwnership walks the declared parent chain of (resourceType, id)
// up to the owning manager and compares it to the context user. Every
// failure mode — unknown type, missing record, broken hop, store error —
// collapses to ErrUnauthorized so callers cannot leak whether a resource
// exists. Internal errors are logged before being swallowed.
func AuthorizeOwnership(rc *RequestContext, resourceType string, resourceID int64) error {
	steps, ok := ownershipPaths[resourceType]
	if !ok {
		utils.Logger.Warnf("ownership check for unknown resource type %q", resourceType)
		return utils.ErrUnauthorized
	}

	current := resourceID
	for _, step := range steps {
		sql := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", step.column, step.table)

		var next int64
		if err := rc.db.QueryRow(rc.Context(), sql, current).Scan(&next); err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				utils.Logger.WithError(err).Errorf("ownership walk failed at %s id=%d", step.table, current)
			}
			return utils.ErrUnauthorized
		}
		current = next
	}

	if current == 0 || current != rc.GetUserID() {
		return utils.ErrUnauthorized
	}
	return nil
}
