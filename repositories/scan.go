package repositories

import "github.com/jackc/pgtype"

// Nullable column helpers shared by the scan functions.

func textPtr(t pgtype.Text) *string {
	if t.Status != pgtype.Present {
		return nil
	}
	s := t.String
	return &s
}

func float8Ptr(f pgtype.Float8) *float64 {
	if f.Status != pgtype.Present {
		return nil
	}
	v := f.Float
	return &v
}
