package domain

// Trip money math. All functions are pure and total over finite inputs;
// rounding to cents happens only at presentation boundaries.

type TripCalc struct {
	TotalMiles int `json:"totalMiles"`

	DriverPayment     float64 `json:"driverPayment"`
	FuelTotalCost     float64 `json:"fuelTotalCost"`
	FactoryCost       float64 `json:"factoryCost"`
	DispatcherPayment float64 `json:"dispatcherPayment"`

	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
}

// TotalMiles adds loaded and deadhead miles.
func TotalMiles(loaded, empty int) int {
	return loaded + empty
}

// DriverPayment pays the driver per loaded mile minus any advance,
// floored at zero so an oversized advance never produces a negative payment.
func DriverPayment(rate float64, loadedMiles int, advance float64) float64 {
	p := rate*float64(loadedMiles) - advance
	if p < 0 {
		return 0
	}
	return p
}

// FuelCost estimates fuel spend over the full trip distance.
func FuelCost(totalMiles int, gallonsPerMile, costPerGallon float64) float64 {
	return float64(totalMiles) * gallonsPerMile * costPerGallon
}

// FactoringCost is the factoring company's fee as a percentage of order rate.
func FactoringCost(orderRate, factoryRatePercent float64) float64 {
	return orderRate * (factoryRatePercent / 100.0)
}

// DispatcherPayment pays the dispatcher per total mile.
func DispatcherPayment(dispatcherRate float64, totalMiles int) float64 {
	return dispatcherRate * float64(totalMiles)
}

// TotalExpenses sums every cost bucket of a trip.
func TotalExpenses(driverPayment, fuelCost, lumperFees, detentionFees, factoringCost, dispatcherPayment float64) float64 {
	return driverPayment + fuelCost + lumperFees + detentionFees + factoringCost + dispatcherPayment
}

// NetProfit is signed; a loss is a valid result, not an error.
func NetProfit(revenue, totalExpenses float64) float64 {
	return revenue - totalExpenses
}

type TripCalcInput struct {
	LoadedMiles int
	EmptyMiles  int

	OrderRate     float64
	Revenue       float64
	DriverRate    float64
	DriverAdvance float64

	FuelGallonsPerMile float64
	FuelCostPerGallon  float64

	FactoryRatePercent float64
	DispatcherRate     float64

	LumperFees    float64
	DetentionFees float64
}

// ComputeTrip derives every calculated field for one trip in a single pass.
// Used on create/update so stored records always carry consistent derived values.
func ComputeTrip(in TripCalcInput) TripCalc {
	total := TotalMiles(in.LoadedMiles, in.EmptyMiles)

	driver := DriverPayment(in.DriverRate, in.LoadedMiles, in.DriverAdvance)
	fuel := FuelCost(total, in.FuelGallonsPerMile, in.FuelCostPerGallon)
	factoring := FactoringCost(in.OrderRate, in.FactoryRatePercent)
	dispatcher := DispatcherPayment(in.DispatcherRate, total)

	expenses := TotalExpenses(driver, fuel, in.LumperFees, in.DetentionFees, factoring, dispatcher)

	return TripCalc{
		TotalMiles:        total,
		DriverPayment:     driver,
		FuelTotalCost:     fuel,
		FactoryCost:       factoring,
		DispatcherPayment: dispatcher,
		TotalExpenses:     expenses,
		NetProfit:         NetProfit(in.Revenue, expenses),
	}
}
