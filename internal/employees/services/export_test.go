package services

import (
	"bytes"
	"testing"
	"time"

	"go-staffhub/internal/employees/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRenderWorkbook(t *testing.T) {
	hired := time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC)
	employees := []models.Employee{
		{
			FirstName:  "Ada",
			LastName:   "Lovelace",
			Email:      "ada@example.com",
			Position:   "Engineer",
			Department: "R&D",
			SalaryBand: "B3",
			Status:     models.StatusActive,
			HiredAt:    &hired,
		},
		{
			FirstName:  "Grace",
			LastName:   "Hopper",
			Email:      "grace@example.com",
			Department: "R&D",
			Status:     models.StatusOnLeave,
		},
	}

	data, err := renderWorkbook(employees)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Ada Lovelace", rows[1][0])
	assert.Equal(t, "2022-03-14", rows[1][7])
	assert.Equal(t, "Grace Hopper", rows[2][0])
	assert.Equal(t, models.StatusOnLeave, rows[2][6])
}

func TestRenderWorkbook_Empty(t *testing.T) {
	data, err := renderWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
