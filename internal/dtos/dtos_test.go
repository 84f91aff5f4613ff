package dtos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dnstock/realty-backend/repositories"
)

func strPtr(s string) *string   { return &s }
func boolPtr(b bool) *bool      { return &b }
func f64Ptr(f float64) *float64 { return &f }

func TestCreatePropertyFieldsIncludesAllColumns(t *testing.T) {
	req := CreatePropertyRequest{
		Name:         "Riverside",
		Address:      "410 Riverside Dr",
		City:         "Albany",
		State:        "NY",
		ZipCode:      "12202",
		PropertyType: "residential",
	}

	f := req.Fields()
	assert.Equal(t, repositories.Fields{
		"name":          "Riverside",
		"address":       "410 Riverside Dr",
		"city":          "Albany",
		"state":         "NY",
		"zip_code":      "12202",
		"property_type": "residential",
	}, f)
}

func TestCreatePropertyFieldsOptionalNotes(t *testing.T) {
	req := CreatePropertyRequest{
		Name: "Riverside", Address: "a", City: "c", State: "NY",
		ZipCode: "12202", PropertyType: "residential",
		Notes: strPtr("corner lot"),
	}

	assert.Equal(t, "corner lot", req.Fields()["notes"])
}

func TestUpdatePropertyFieldsOnlySetColumns(t *testing.T) {
	req := UpdatePropertyRequest{
		Name:     strPtr("Renamed"),
		IsActive: boolPtr(false),
	}

	f := req.Fields()
	assert.Equal(t, repositories.Fields{
		"name":      "Renamed",
		"is_active": false,
	}, f)
}

func TestUpdatePropertyFieldsEmpty(t *testing.T) {
	var req UpdatePropertyRequest
	assert.Empty(t, req.Fields())
}

func TestUpdateLeaseFields(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	req := UpdateLeaseRequest{
		StartDate: &start,
		Rent:      f64Ptr(2100),
		Deposit:   f64Ptr(2100),
	}

	f := req.Fields()
	assert.Equal(t, repositories.Fields{
		"start_date": start,
		"rent":       2100.0,
		"deposit":    2100.0,
	}, f)
}

func TestUpdateUnitFieldsFlags(t *testing.T) {
	req := UpdateUnitRequest{
		IsVacant:  boolPtr(true),
		IsFlagged: boolPtr(true),
	}

	f := req.Fields()
	assert.Equal(t, repositories.Fields{
		"is_vacant":  true,
		"is_flagged": true,
	}, f)
}
