package services

import (
	"testing"
	"time"

	"haulhub/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportServiceFuelReportGroupsByTruck(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	scheduled := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	rowA := tripRow("t-1", "Delivered", scheduled)
	rowB := tripRow("t-2", "Delivered", scheduled.Add(24*time.Hour))
	rowC := tripRow("t-3", "Delivered", scheduled.Add(48*time.Hour))
	// t-3 runs on a different truck
	rowC[7] = "TRK-9"

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE").
		WillReturnRows(sqlmock.NewRows(tripTestColumns).
			AddRow(rowA...).AddRow(rowB...).AddRow(rowC...))

	rows, err := ReportService{TripRepo: repositories.TripRepository{DB: db}}.
		FuelReport(ReportFilter{StartDate: "2026-03-01", EndDate: "2026-03-31"})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "TRK-7", rows[0].TruckID)
	assert.Equal(t, 2, rows[0].Trips)
	assert.Equal(t, 1300, rows[0].TotalMiles)
	assert.InDelta(t, 780.0, rows[0].FuelTotalCost, 1e-9)
	assert.InDelta(t, 0.60, rows[0].CostPerMile, 1e-9)
	assert.InDelta(t, 650.0, rows[0].AvgMilesPerTrip, 1e-9)

	assert.Equal(t, "TRK-9", rows[1].TruckID)
	assert.Equal(t, 1, rows[1].Trips)
}

func TestReportServiceFinanceReportSums(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	scheduled := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE").
		WillReturnRows(sqlmock.NewRows(tripTestColumns).
			AddRow(tripRow("t-1", "Delivered", scheduled)...).
			AddRow(tripRow("t-2", "Paid", scheduled.Add(24*time.Hour))...))

	sum, err := ReportService{TripRepo: repositories.TripRepository{DB: db}}.
		FinanceReport(ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Trips)
	assert.InDelta(t, 3600.0, sum.Revenue, 1e-9)
	assert.InDelta(t, 2150.0, sum.TotalExpenses, 1e-9)
	assert.InDelta(t, 1450.0, sum.NetProfit, 1e-9)
	assert.InDelta(t, 1040.0, sum.DriverPay, 1e-9)
	assert.InDelta(t, 780.0, sum.FuelCost, 1e-9)
	assert.InDelta(t, 120.0, sum.FactoringCost, 1e-9)
	assert.InDelta(t, 130.0, sum.DispatcherPay, 1e-9)
}

func TestReportServiceFinanceReportEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE").
		WillReturnRows(sqlmock.NewRows(tripTestColumns))

	sum, err := ReportService{TripRepo: repositories.TripRepository{DB: db}}.
		FinanceReport(ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, FinanceSummary{}, sum)
}
