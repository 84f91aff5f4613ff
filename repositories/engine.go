package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgconn"

	"github.com/dnstock/realty-backend/utils"
)

// Page is the result shape of every list operation.
type Page[T Record] struct {
	Rows      []T `json:"rows"`
	RowCount  int `json:"rowCount"`
	PageStart int `json:"pageStart"`
	PageEnd   int `json:"pageEnd"`
}

/*
Generic persistence operations, parameterized by descriptor. Every path that
returns more than one row or mutates a row carries the derived-owner predicate
inside the SQL, so rows belonging to another manager are never even loaded.
Expected outcomes come back as the utils sentinel errors; unexpected store
failures are logged and collapse to utils.ErrInternal (the surrounding request
transaction rolls back when that propagates).
*/

// ExistsWhere reports whether any owned row has column = value.
func ExistsWhere[T Record](rc *RequestContext, d *Descriptor[T], column string, value interface{}) (bool, error) {
	sql := d.countSQL + d.ownerJoin + " WHERE r." + column + " = $1"
	args := []interface{}{value}
	if d.ownerWhere != "" {
		args = append(args, rc.GetUserID())
		sql += " AND " + fmt.Sprintf(d.ownerWhere, len(args))
	}

	var count int64
	if err := rc.db.QueryRow(rc.Context(), sql, args...).Scan(&count); err != nil {
		utils.Logger.WithError(err).Errorf("exists query failed on %s.%s", d.Table, column)
		return false, utils.ErrInternal
	}
	return count > 0, nil
}

// GetBy loads the single owned row with column = value. Zero matches and
// multiple matches both come back as ErrNotFound; a duplicated "unique"
// value is logged but deliberately treated the same as absence.
func GetBy[T Record](rc *RequestContext, d *Descriptor[T], column string, value interface{}) (T, error) {
	var zero T

	sql := d.selectSQL + d.ownerJoin + " WHERE r." + column + " = $1"
	args := []interface{}{value}
	if d.ownerWhere != "" {
		args = append(args, rc.GetUserID())
		sql += " AND " + fmt.Sprintf(d.ownerWhere, len(args))
	}
	sql += " LIMIT 2"

	rows, err := rc.db.Query(rc.Context(), sql, args...)
	if err != nil {
		utils.Logger.WithError(err).Errorf("lookup failed on %s.%s", d.Table, column)
		return zero, utils.ErrInternal
	}
	defer rows.Close()

	var matches []T
	for rows.Next() {
		rec, err := d.Scan(rows)
		if err != nil {
			utils.Logger.WithError(err).Errorf("scan failed on %s", d.Table)
			return zero, utils.ErrInternal
		}
		matches = append(matches, rec)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.WithError(err).Errorf("lookup failed on %s.%s", d.Table, column)
		return zero, utils.ErrInternal
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return zero, utils.ErrNotFound
	default:
		utils.Logger.Warnf("multiple %s rows matched %s = %v; treating as not found", d.Table, column, value)
		return zero, utils.ErrNotFound
	}
}

// GetByID is GetBy on the primary key.
func GetByID[T Record](rc *RequestContext, d *Descriptor[T], id int64) (T, error) {
	return GetBy(rc, d, "id", id)
}

// GetPage returns one page of the context user's rows, plus the total count
// of those rows and the clamped window bounds.
func GetPage[T Record](rc *RequestContext, d *Descriptor[T], skip, limit int) (*Page[T], error) {
	return getPage(rc, d, nil, skip, limit)
}

// GetPageForParent is GetPage additionally filtered by the parent FK.
func GetPageForParent[T Record](rc *RequestContext, d *Descriptor[T], parentValue int64, skip, limit int) (*Page[T], error) {
	if d.ParentColumn == "" {
		return nil, utils.ErrInternal
	}
	return getPage(rc, d, &parentValue, skip, limit)
}

func getPage[T Record](rc *RequestContext, d *Descriptor[T], parentValue *int64, skip, limit int) (*Page[T], error) {
	var conds []string
	var args []interface{}

	if parentValue != nil {
		args = append(args, *parentValue)
		conds = append(conds, fmt.Sprintf("r.%s = $%d", d.ParentColumn, len(args)))
	}
	if d.ownerWhere != "" {
		args = append(args, rc.GetUserID())
		conds = append(conds, fmt.Sprintf(d.ownerWhere, len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var rowCount int
	if err := rc.db.QueryRow(rc.Context(), d.countSQL+d.ownerJoin+where, args...).Scan(&rowCount); err != nil {
		utils.Logger.WithError(err).Errorf("count query failed on %s", d.Table)
		return nil, utils.ErrInternal
	}

	pageSQL := fmt.Sprintf("%s%s%s ORDER BY r.id LIMIT $%d OFFSET $%d",
		d.selectSQL, d.ownerJoin, where, len(args)+1, len(args)+2)
	rows, err := rc.db.Query(rc.Context(), pageSQL, append(args, limit, skip)...)
	if err != nil {
		utils.Logger.WithError(err).Errorf("page query failed on %s", d.Table)
		return nil, utils.ErrInternal
	}
	defer rows.Close()

	out := make([]T, 0, limit)
	for rows.Next() {
		rec, err := d.Scan(rows)
		if err != nil {
			utils.Logger.WithError(err).Errorf("scan failed on %s", d.Table)
			return nil, utils.ErrInternal
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.WithError(err).Errorf("page query failed on %s", d.Table)
		return nil, utils.ErrInternal
	}

	start, end := clampPage(skip, limit, rowCount)
	return &Page[T]{Rows: out, RowCount: rowCount, PageStart: start, PageEnd: end}, nil
}

// Create inserts a new row from the payload. The owner column, when the type
// has one, is always the context user — a caller-supplied owner value is
// stripped, never honored. The parent FK is set from parentValue when the
// type has a parent. The stored row is re-read before returning so the
// caller observes its own write.
func Create[T Record](rc *RequestContext, d *Descriptor[T], payload Fields, parentValue int64) (T, error) {
	var zero T

	fields := d.stripKeys(payload)
	if d.OwnerColumn != "" {
		fields[d.OwnerColumn] = rc.GetUserID()
	}
	if d.ParentColumn != "" && parentValue != 0 {
		fields[d.ParentColumn] = parentValue
	}
	if _, ok := fields["is_active"]; !ok {
		fields["is_active"] = true
	}
	if _, ok := fields["is_flagged"]; !ok {
		fields["is_flagged"] = false
	}

	cols := fields.sortedColumns()
	placeholders := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = fields[col]
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s, created_at, updated_at) VALUES (%s, NOW(), NOW()) RETURNING id",
		d.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	var id int64
	if err := rc.db.QueryRow(rc.Context(), sql, args...).Scan(&id); err != nil {
		if isConstraintViolation(err) {
			utils.Logger.WithError(err).Warnf("constraint violation inserting into %s", d.Table)
			return zero, utils.ErrConflict
		}
		utils.Logger.WithError(err).Errorf("insert failed on %s", d.Table)
		return zero, utils.ErrInternal
	}

	return GetByID(rc, d, id)
}

// Update applies the payload to the row with the given id, loading it scoped
// by id AND derived owner first — a record the context user does not own is
// structurally indistinguishable from a missing one. Key columns in the
// payload are stripped, so a record can never be reparented or renumbered.
func Update[T Record](rc *RequestContext, d *Descriptor[T], payload Fields, id int64) (T, error) {
	var zero T

	if _, err := GetByID(rc, d, id); err != nil {
		return zero, err
	}

	fields := d.stripKeys(payload)
	if len(fields) == 0 {
		return GetByID(rc, d, id)
	}

	cols := fields.sortedColumns()
	sets := make([]string, len(cols))
	args := make([]interface{}, 0, len(cols)+1)
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
		args = append(args, fields[col])
	}
	args = append(args, id)

	sql := fmt.Sprintf("UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d",
		d.Table, strings.Join(sets, ", "), len(args))

	if _, err := rc.db.Exec(rc.Context(), sql, args...); err != nil {
		if isConstraintViolation(err) {
			utils.Logger.WithError(err).Warnf("constraint violation updating %s id=%d", d.Table, id)
			return zero, utils.ErrConflict
		}
		utils.Logger.WithError(err).Errorf("update failed on %s id=%d", d.Table, id)
		return zero, utils.ErrInternal
	}

	return GetByID(rc, d, id)
}

// isConstraintViolation reports whether err is a PostgreSQL integrity
// constraint violation (class 23: unique, foreign key, not null, check).
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23")
}
