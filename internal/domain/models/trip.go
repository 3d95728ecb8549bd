package models

import (
	"strings"
	"time"
)

// OrderStatus is the trip lifecycle state.
type OrderStatus string

const (
	StatusScheduled OrderStatus = "Scheduled"
	StatusPickedUp  OrderStatus = "PickedUp"
	StatusInTransit OrderStatus = "InTransit"
	StatusDelivered OrderStatus = "Delivered"
	StatusPaid      OrderStatus = "Paid"
)

var orderStatusSeq = map[OrderStatus]int{
	StatusScheduled: 0,
	StatusPickedUp:  1,
	StatusInTransit: 2,
	StatusDelivered: 3,
	StatusPaid:      4,
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusSeq[s]
	return ok
}

// CanTransition allows only single forward steps through the lifecycle.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	from, ok := orderStatusSeq[s]
	if !ok {
		return false
	}
	next, ok := orderStatusSeq[to]
	if !ok {
		return false
	}
	return next == from+1
}

// ParseOrderStatus resolves a status string case-insensitively.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	for s := range orderStatusSeq {
		if strings.EqualFold(strings.TrimSpace(raw), string(s)) {
			return s, true
		}
	}
	return "", false
}

// Trip is the canonical freight haul record. Financial fields and the
// pickup/delivery timestamps are pointers so "not yet set" stays distinct
// from zero.
type Trip struct {
	TripID            string `json:"tripId"`
	OrderConfirmation string `json:"orderConfirmation"`

	DispatcherID string `json:"dispatcherId"`
	DriverID     string `json:"driverId"`
	TruckOwnerID string `json:"truckOwnerId"`
	CarrierID    string `json:"carrierId"`
	BrokerID     string `json:"brokerId"`

	TruckID   string `json:"truckId"`
	TrailerID string `json:"trailerId"`

	OrderStatus        OrderStatus `json:"orderStatus"`
	ScheduledTimestamp *time.Time  `json:"scheduledTimestamp,omitempty"`
	PickupTimestamp    *time.Time  `json:"pickupTimestamp,omitempty"`
	DeliveryTimestamp  *time.Time  `json:"deliveryTimestamp,omitempty"`

	PickupCity    string `json:"pickupCity"`
	PickupState   string `json:"pickupState"`
	DeliveryCity  string `json:"deliveryCity"`
	DeliveryState string `json:"deliveryState"`

	LoadedMiles int `json:"loadedMiles"`
	EmptyMiles  int `json:"emptyMiles"`
	TotalMiles  int `json:"totalMiles"`

	OrderRate    *float64 `json:"orderRate,omitempty"`
	OrderRevenue *float64 `json:"orderRevenue,omitempty"`

	BrokerPayment *float64 `json:"brokerPayment,omitempty"`
	BrokerRate    *float64 `json:"brokerRate,omitempty"`
	BrokerAdvance *float64 `json:"brokerAdvance,omitempty"`
	BrokerCost    *float64 `json:"brokerCost,omitempty"`

	DriverPayment *float64 `json:"driverPayment,omitempty"`
	DriverRate    *float64 `json:"driverRate,omitempty"`
	DriverAdvance *float64 `json:"driverAdvance,omitempty"`

	TruckOwnerPayment *float64 `json:"truckOwnerPayment,omitempty"`

	DispatcherPayment *float64 `json:"dispatcherPayment,omitempty"`
	DispatcherRate    *float64 `json:"dispatcherRate,omitempty"`

	FactoryRate    *float64 `json:"factoryRate,omitempty"`
	FactoryCost    *float64 `json:"factoryCost,omitempty"`
	FactoryAdvance *float64 `json:"factoryAdvance,omitempty"`

	FuelGallonsPerMile *float64 `json:"fuelGallonsPerMile,omitempty"`
	FuelCostPerGallon  *float64 `json:"fuelCostPerGallon,omitempty"`
	FuelTotalCost      *float64 `json:"fuelTotalCost,omitempty"`

	LumperFees    *float64 `json:"lumperFees,omitempty"`
	DetentionFees *float64 `json:"detentionFees,omitempty"`

	TotalExpenses *float64 `json:"totalExpenses,omitempty"`
	NetProfit     *float64 `json:"netProfit,omitempty"`

	Notes string `json:"notes"`
}

const tsLayout = "2006-01-02T15:04:05Z"

// ToRecord flattens the trip into the field-name vocabulary consumed by the
// projection layer. Unset optional fields are omitted entirely.
func (t Trip) ToRecord() map[string]any {
	rec := map[string]any{
		"tripId":            t.TripID,
		"orderConfirmation": t.OrderConfirmation,
		"dispatcherId":      t.DispatcherID,
		"driverId":          t.DriverID,
		"truckOwnerId":      t.TruckOwnerID,
		"carrierId":         t.CarrierID,
		"brokerId":          t.BrokerID,
		"truckId":           t.TruckID,
		"trailerId":         t.TrailerID,
		"orderStatus":       string(t.OrderStatus),
		"pickupCity":        t.PickupCity,
		"pickupState":       t.PickupState,
		"deliveryCity":      t.DeliveryCity,
		"deliveryState":     t.DeliveryState,
		"loadedMiles":       t.LoadedMiles,
		"emptyMiles":        t.EmptyMiles,
		"totalMiles":        t.TotalMiles,
		"notes":             t.Notes,
	}

	putTime := func(key string, ts *time.Time) {
		if ts != nil {
			rec[key] = ts.UTC().Truncate(time.Second).Format(tsLayout)
		}
	}
	putTime("scheduledTimestamp", t.ScheduledTimestamp)
	putTime("pickupTimestamp", t.PickupTimestamp)
	putTime("deliveryTimestamp", t.DeliveryTimestamp)

	putMoney := func(key string, v *float64) {
		if v != nil {
			rec[key] = *v
		}
	}
	putMoney("orderRate", t.OrderRate)
	putMoney("orderRevenue", t.OrderRevenue)
	putMoney("brokerPayment", t.BrokerPayment)
	putMoney("brokerRate", t.BrokerRate)
	putMoney("brokerAdvance", t.BrokerAdvance)
	putMoney("brokerCost", t.BrokerCost)
	putMoney("driverPayment", t.DriverPayment)
	putMoney("driverRate", t.DriverRate)
	putMoney("driverAdvance", t.DriverAdvance)
	putMoney("truckOwnerPayment", t.TruckOwnerPayment)
	putMoney("dispatcherPayment", t.DispatcherPayment)
	putMoney("dispatcherRate", t.DispatcherRate)
	putMoney("factoryRate", t.FactoryRate)
	putMoney("factoryCost", t.FactoryCost)
	putMoney("factoryAdvance", t.FactoryAdvance)
	putMoney("fuelGallonsPerMile", t.FuelGallonsPerMile)
	putMoney("fuelCostPerGallon", t.FuelCostPerGallon)
	putMoney("fuelTotalCost", t.FuelTotalCost)
	putMoney("lumperFees", t.LumperFees)
	putMoney("detentionFees", t.DetentionFees)
	putMoney("totalExpenses", t.TotalExpenses)
	putMoney("netProfit", t.NetProfit)

	return rec
}

// TimestampOrderOK checks scheduled <= pickup <= delivery across whichever
// timestamps are present.
func (t Trip) TimestampOrderOK() bool {
	pairs := [][2]*time.Time{
		{t.ScheduledTimestamp, t.PickupTimestamp},
		{t.PickupTimestamp, t.DeliveryTimestamp},
		{t.ScheduledTimestamp, t.DeliveryTimestamp},
	}
	for _, p := range pairs {
		if p[0] != nil && p[1] != nil && p[0].After(*p[1]) {
			return false
		}
	}
	return true
}
