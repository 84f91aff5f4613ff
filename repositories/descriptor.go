package repositories

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v4"
)

// managerColumn is the one place ownership is stored: on the property row at
// the root of every chain. Descendant tables never carry a copy.
const managerColumn = "manager_id"

// Record is the capability contract every persisted type satisfies.
type Record interface {
	GetID() int64
	SetID(int64)
}

// Fields is a partial payload keyed by column name. Only the columns present
// are applied, which is what gives updates their patch semantics.
type Fields map[string]interface{}

// Hop is one step of an ownership chain: the child row's Key column
// references Table(id).
type Hop struct {
	Table string
	Key   string
}

// Descriptor binds one record type to its table. The ownership chain is
// declared statically per type and compiled into a join clause once, so
// every list/page query is tenant-filtered inside the SQL itself rather
// than by application code after the fact.
type Descriptor[T Record] struct {
	Table         string
	SelectColumns []string
	ParentColumn  string // immutable FK to the immediate parent, "" for users
	OwnerColumn   string // direct owner column; only properties have one
	Chain         []Hop  // hops up to the table carrying OwnerColumn
	Scan          func(row pgx.Row) (T, error)

	selectSQL  string
	countSQL   string
	ownerJoin  string
	ownerWhere string // fmt verb %d takes the placeholder position
	keyCols    map[string]struct{}
}

// NewDescriptor precomputes the SQL fragments shared by every engine
// operation on the type.
func NewDescriptor[T Record](d Descriptor[T]) *Descriptor[T] {
	cols := make([]string, len(d.SelectColumns))
	for i, c := range d.SelectColumns {
		cols[i] = "r." + c
	}
	d.selectSQL = "SELECT " + strings.Join(cols, ", ") + " FROM " + d.Table + " r"
	d.countSQL = "SELECT COUNT(*) FROM " + d.Table + " r"

	switch {
	case len(d.Chain) > 0:
		var join strings.Builder
		prev := "r"
		for i, hop := range d.Chain {
			alias := fmt.Sprintf("p%d", i+1)
			fmt.Fprintf(&join, " JOIN %s %s ON %s.id = %s.%s", hop.Table, alias, alias, prev, hop.Key)
			prev = alias
		}
		d.ownerJoin = join.String()
		d.ownerWhere = prev + "." + managerColumn + " = $%d"
	case d.OwnerColumn != "":
		d.ownerWhere = "r." + d.OwnerColumn + " = $%d"
	}

	// Columns that a payload can never set: the primary key, the parent FK,
	// the owner column, and the store-managed timestamps.
	d.keyCols = map[string]struct{}{
		"id":         {},
		"created_at": {},
		"updated_at": {},
	}
	if d.ParentColumn != "" {
		d.keyCols[d.ParentColumn] = struct{}{}
	}
	if d.OwnerColumn != "" {
		d.keyCols[d.OwnerColumn] = struct{}{}
	}

	return &d
}

// stripKeys drops primary/foreign key columns from a payload so an update or
// create can never renumber, reparent, or reassign ownership of a record.
func (d *Descriptor[T]) stripKeys(in Fields) Fields {
	out := make(Fields, len(in))
	for col, val := range in {
		if _, reserved := d.keyCols[col]; reserved {
			continue
		}
		out[col] = val
	}
	return out
}

// sortedColumns returns the payload's column names in a stable order so the
// generated SQL is deterministic.
func (f Fields) sortedColumns() []string {
	cols := make([]string, 0, len(f))
	for col := range f {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// clampPage bounds a page window to the actual row count:
// start = min(skip, rowCount), end = min(skip+limit, rowCount).
func clampPage(skip, limit, rowCount int) (start, end int) {
	start = skip
	if start > rowCount {
		start = rowCount
	}
	end = skip + limit
	if end > rowCount {
		end = rowCount
	}
	return start, end
}
