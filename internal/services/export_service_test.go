package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"haulhub/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportRowLayout(t *testing.T) {
	trip := settlementTrip()
	trip.OrderConfirmation = "OC-100"
	trip.OrderRate = ptr(2000)
	trip.NetProfit = ptr(725)

	row := exportRow(trip)
	require.Len(t, row, len(exportHeaders))

	assert.Equal(t, "t-1", row[0])
	assert.Equal(t, "Delivered", row[2])
	assert.Equal(t, "2026-03-01T09:30:00Z", row[4])
	assert.Equal(t, "Dallas, TX", row[6])
	assert.Equal(t, 650, row[10])
	assert.Equal(t, 2000.0, row[11])
	// unset optionals export as empty cells
	assert.Equal(t, "", row[12])
	assert.Equal(t, 725.0, row[21])
}

func TestCSVCell(t *testing.T) {
	assert.Equal(t, "Dallas", csvCell("Dallas"))
	assert.Equal(t, "650", csvCell(650))
	assert.Equal(t, "520.00", csvCell(520.0))
	assert.Equal(t, "", csvCell(""))
}

func TestExportServiceTripsCSV(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	scheduled := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE").
		WillReturnRows(sqlmock.NewRows(tripTestColumns).
			AddRow(tripRow("t-1", "Delivered", scheduled)...))

	data, name, err := ExportService{TripRepo: repositories.TripRepository{DB: db}}.
		TripsCSV(repositories.TripFilter{})
	require.NoError(t, err)
	assert.Contains(t, name, ".csv")

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, "t-1", records[1][0])
	assert.Equal(t, "650", records[1][10])
	assert.Equal(t, "520.00", records[1][13])
}

func TestExportServiceTripsXLSX(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	scheduled := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE").
		WillReturnRows(sqlmock.NewRows(tripTestColumns).
			AddRow(tripRow("t-1", "Delivered", scheduled)...))

	data, name, err := ExportService{TripRepo: repositories.TripRepository{DB: db}}.
		TripsXLSX(repositories.TripFilter{})
	require.NoError(t, err)
	assert.Contains(t, name, ".xlsx")

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	got, err := file.GetCellValue("Trips", "A2")
	require.NoError(t, err)
	assert.Equal(t, "t-1", got)

	header, err := file.GetCellValue("Trips", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Trip ID", header)
}

func TestExportServiceEmptyListStillWritesHeader(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE").
		WillReturnRows(sqlmock.NewRows(tripTestColumns))

	data, _, err := ExportService{TripRepo: repositories.TripRepository{DB: db}}.
		TripsCSV(repositories.TripFilter{})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, exportHeaders, records[0])
}
