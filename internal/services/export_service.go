package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"haulhub/internal/domain/models"
	"haulhub/internal/repositories"
	"haulhub/internal/utils"

	"github.com/xuri/excelize/v2"
)

// ExportService renders bulk trip exports for the back office. Exports carry
// the full record: they are admin/dispatcher tooling, so no role filtering
// applies here (the handler gates access instead).
type ExportService struct {
	TripRepo  repositories.TripRepository
	RequestID string
}

var exportHeaders = []string{
	"Trip ID", "Confirmation", "Status",
	"Scheduled", "Picked Up", "Delivered",
	"Pickup", "Delivery",
	"Loaded Miles", "Empty Miles", "Total Miles",
	"Order Rate", "Revenue",
	"Driver Payment", "Truck Owner Payment", "Dispatcher Payment",
	"Fuel Cost", "Factoring Cost", "Lumper Fees", "Detention Fees",
	"Total Expenses", "Net Profit",
	"Notes",
}

func exportRow(t models.Trip) []any {
	ts := func(p *time.Time) string {
		if p == nil {
			return ""
		}
		return utils.FormatTimestamp(*p)
	}
	money := func(p *float64) any {
		if p == nil {
			return ""
		}
		return utils.RoundCents(*p)
	}
	return []any{
		t.TripID, t.OrderConfirmation, string(t.OrderStatus),
		ts(t.ScheduledTimestamp), ts(t.PickupTimestamp), ts(t.DeliveryTimestamp),
		t.PickupCity + ", " + t.PickupState, t.DeliveryCity + ", " + t.DeliveryState,
		t.LoadedMiles, t.EmptyMiles, t.TotalMiles,
		money(t.OrderRate), money(t.OrderRevenue),
		money(t.DriverPayment), money(t.TruckOwnerPayment), money(t.DispatcherPayment),
		money(t.FuelTotalCost), money(t.FactoryCost), money(t.LumperFees), money(t.DetentionFees),
		money(t.TotalExpenses), money(t.NetProfit),
		t.Notes,
	}
}

// TripsXLSX builds an Excel workbook of the filtered trips.
func (s ExportService) TripsXLSX(f repositories.TripFilter) ([]byte, string, error) {
	trips, err := s.TripRepo.List(f)
	if err != nil {
		return nil, "", err
	}

	file := excelize.NewFile()
	sheet := "Trips"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	_ = file.DeleteSheet("Sheet1")
	file.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = file.SetCellValue(sheet, cell, header)
	}

	for rowIdx, t := range trips {
		for colIdx, v := range exportRow(t) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = file.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("trips_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	return buf.Bytes(), name, nil
}

// TripsCSV builds a CSV of the filtered trips with the same column layout
// as the Excel export.
func (s ExportService) TripsCSV(f repositories.TripFilter) ([]byte, string, error) {
	trips, err := s.TripRepo.List(f)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, "", err
	}
	for _, t := range trips {
		row := make([]string, 0, len(exportHeaders))
		for _, v := range exportRow(t) {
			row = append(row, csvCell(v))
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("trips_%s.csv", time.Now().UTC().Format("20060102_150405"))
	return buf.Bytes(), name, nil
}

func csvCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return utils.FormatMoney(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
