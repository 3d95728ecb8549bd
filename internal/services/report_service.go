package services

import (
	"sort"

	"haulhub/internal/domain/models"
	"haulhub/internal/repositories"
	"haulhub/internal/utils"
)

type ReportFilter struct {
	StartDate string
	EndDate   string
	TruckID   string
}

// FuelReportRow aggregates fuel spend per truck over a date range.
type FuelReportRow struct {
	TruckID         string  `json:"truckId"`
	Trips           int     `json:"trips"`
	TotalMiles      int     `json:"totalMiles"`
	FuelTotalCost   float64 `json:"fuelTotalCost"`
	CostPerMile     float64 `json:"costPerMile"`
	AvgMilesPerTrip float64 `json:"avgMilesPerTrip"`
}

// FinanceSummary totals the money side of a trip set.
type FinanceSummary struct {
	Trips         int     `json:"trips"`
	Revenue       float64 `json:"revenue"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
	DriverPay     float64 `json:"driverPay"`
	FuelCost      float64 `json:"fuelCost"`
	FactoringCost float64 `json:"factoringCost"`
	DispatcherPay float64 `json:"dispatcherPay"`
}

type ReportService struct {
	TripRepo repositories.TripRepository
}

// FuelReport groups trips by truck and derives spend-per-mile figures.
// Aggregates are rounded to cents here because this is a presentation
// boundary; the underlying stored values stay unrounded.
func (s ReportService) FuelReport(f ReportFilter) ([]FuelReportRow, error) {
	trips, err := s.TripRepo.List(repositories.TripFilter{
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		TruckID:   f.TruckID,
	})
	if err != nil {
		return nil, err
	}

	byTruck := map[string]*FuelReportRow{}
	for _, t := range trips {
		row, ok := byTruck[t.TruckID]
		if !ok {
			row = &FuelReportRow{TruckID: t.TruckID}
			byTruck[t.TruckID] = row
		}
		row.Trips++
		row.TotalMiles += t.TotalMiles
		if t.FuelTotalCost != nil {
			row.FuelTotalCost += *t.FuelTotalCost
		}
	}

	out := make([]FuelReportRow, 0, len(byTruck))
	for _, row := range byTruck {
		if row.TotalMiles > 0 {
			row.CostPerMile = utils.RoundCents(row.FuelTotalCost / float64(row.TotalMiles))
		}
		if row.Trips > 0 {
			row.AvgMilesPerTrip = utils.RoundCents(float64(row.TotalMiles) / float64(row.Trips))
		}
		row.FuelTotalCost = utils.RoundCents(row.FuelTotalCost)
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TruckID < out[j].TruckID })
	return out, nil
}

// FinanceReport sums revenue and every expense bucket across the filtered trips.
func (s ReportService) FinanceReport(f ReportFilter) (FinanceSummary, error) {
	trips, err := s.TripRepo.List(repositories.TripFilter{
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		TruckID:   f.TruckID,
	})
	if err != nil {
		return FinanceSummary{}, err
	}

	sum := FinanceSummary{Trips: len(trips)}
	add := func(dst *float64, v *float64) {
		if v != nil {
			*dst += *v
		}
	}
	for _, t := range trips {
		sum.Revenue += revenueOf(t)
		add(&sum.TotalExpenses, t.TotalExpenses)
		add(&sum.NetProfit, t.NetProfit)
		add(&sum.DriverPay, t.DriverPayment)
		add(&sum.FuelCost, t.FuelTotalCost)
		add(&sum.FactoringCost, t.FactoryCost)
		add(&sum.DispatcherPay, t.DispatcherPayment)
	}

	sum.Revenue = utils.RoundCents(sum.Revenue)
	sum.TotalExpenses = utils.RoundCents(sum.TotalExpenses)
	sum.NetProfit = utils.RoundCents(sum.NetProfit)
	sum.DriverPay = utils.RoundCents(sum.DriverPay)
	sum.FuelCost = utils.RoundCents(sum.FuelCost)
	sum.FactoringCost = utils.RoundCents(sum.FactoringCost)
	sum.DispatcherPay = utils.RoundCents(sum.DispatcherPay)
	return sum, nil
}

func revenueOf(t models.Trip) float64 {
	if t.OrderRevenue != nil {
		return *t.OrderRevenue
	}
	if t.OrderRate != nil {
		return *t.OrderRate
	}
	return 0
}
