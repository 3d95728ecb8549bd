package services

import (
	"strings"
	"time"

	"haulhub/internal/domain"
	"haulhub/internal/domain/models"
	"haulhub/internal/projection"
	"haulhub/internal/repositories"
	"haulhub/internal/utils"
	"haulhub/pkg/logger"

	"github.com/google/uuid"
)

// TripService owns the trip lifecycle: create/update recompute every derived
// financial field, status transitions stamp the matching timestamp, and all
// reads go out through the role projection.
type TripService struct {
	TripRepo  repositories.TripRepository
	RequestID string
	Now       func() time.Time
}

func (s TripService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// TripInput carries the raw fields a dispatcher submits. Derived fields
// (payments, fuel cost, totals) are never accepted from the caller.
type TripInput struct {
	OrderConfirmation string `json:"orderConfirmation"`

	DispatcherID string `json:"dispatcherId"`
	DriverID     string `json:"driverId"`
	TruckOwnerID string `json:"truckOwnerId"`
	CarrierID    string `json:"carrierId"`
	BrokerID     string `json:"brokerId"`

	TruckID   string `json:"truckId"`
	TrailerID string `json:"trailerId"`

	ScheduledTimestamp string `json:"scheduledTimestamp"`

	PickupCity    string `json:"pickupCity"`
	PickupState   string `json:"pickupState"`
	DeliveryCity  string `json:"deliveryCity"`
	DeliveryState string `json:"deliveryState"`

	LoadedMiles int `json:"loadedMiles"`
	EmptyMiles  int `json:"emptyMiles"`

	OrderRate    *float64 `json:"orderRate"`
	OrderRevenue *float64 `json:"orderRevenue"`

	BrokerRate    *float64 `json:"brokerRate"`
	BrokerAdvance *float64 `json:"brokerAdvance"`

	DriverRate    *float64 `json:"driverRate"`
	DriverAdvance *float64 `json:"driverAdvance"`

	TruckOwnerPayment *float64 `json:"truckOwnerPayment"`

	DispatcherRate *float64 `json:"dispatcherRate"`

	FactoryRate    *float64 `json:"factoryRate"`
	FactoryAdvance *float64 `json:"factoryAdvance"`

	FuelGallonsPerMile *float64 `json:"fuelGallonsPerMile"`
	FuelCostPerGallon  *float64 `json:"fuelCostPerGallon"`

	LumperFees    *float64 `json:"lumperFees"`
	DetentionFees *float64 `json:"detentionFees"`

	Notes string `json:"notes"`
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func ptr(v float64) *float64 { return &v }

func validateInput(in TripInput) error {
	if in.LoadedMiles < 0 {
		return domain.ValidationError{Field: "loadedMiles", Msg: "must be non-negative"}
	}
	if in.EmptyMiles < 0 {
		return domain.ValidationError{Field: "emptyMiles", Msg: "must be non-negative"}
	}
	rates := map[string]*float64{
		"orderRate":          in.OrderRate,
		"orderRevenue":       in.OrderRevenue,
		"brokerRate":         in.BrokerRate,
		"brokerAdvance":      in.BrokerAdvance,
		"driverRate":         in.DriverRate,
		"driverAdvance":      in.DriverAdvance,
		"truckOwnerPayment":  in.TruckOwnerPayment,
		"dispatcherRate":     in.DispatcherRate,
		"factoryRate":        in.FactoryRate,
		"factoryAdvance":     in.FactoryAdvance,
		"fuelGallonsPerMile": in.FuelGallonsPerMile,
		"fuelCostPerGallon":  in.FuelCostPerGallon,
		"lumperFees":         in.LumperFees,
		"detentionFees":      in.DetentionFees,
	}
	for field, v := range rates {
		if v != nil && *v < 0 {
			return domain.ValidationError{Field: field, Msg: "must be non-negative"}
		}
	}
	return nil
}

// applyCalc fills every derived field from the raw inputs. Stored records
// always carry a consistent set of computed values.
func applyCalc(t *models.Trip) {
	revenue := deref(t.OrderRevenue)
	if t.OrderRevenue == nil {
		revenue = deref(t.OrderRate)
	}

	calc := domain.ComputeTrip(domain.TripCalcInput{
		LoadedMiles:        t.LoadedMiles,
		EmptyMiles:         t.EmptyMiles,
		OrderRate:          deref(t.OrderRate),
		Revenue:            revenue,
		DriverRate:         deref(t.DriverRate),
		DriverAdvance:      deref(t.DriverAdvance),
		FuelGallonsPerMile: deref(t.FuelGallonsPerMile),
		FuelCostPerGallon:  deref(t.FuelCostPerGallon),
		FactoryRatePercent: deref(t.FactoryRate),
		DispatcherRate:     deref(t.DispatcherRate),
		LumperFees:         deref(t.LumperFees),
		DetentionFees:      deref(t.DetentionFees),
	})

	t.TotalMiles = calc.TotalMiles
	t.DriverPayment = ptr(calc.DriverPayment)
	t.FuelTotalCost = ptr(calc.FuelTotalCost)
	t.FactoryCost = ptr(calc.FactoryCost)
	t.DispatcherPayment = ptr(calc.DispatcherPayment)
	t.TotalExpenses = ptr(calc.TotalExpenses)
	t.NetProfit = ptr(calc.NetProfit)
}

func fromInput(in TripInput, now time.Time) (models.Trip, error) {
	t := models.Trip{
		OrderConfirmation:  strings.TrimSpace(in.OrderConfirmation),
		DispatcherID:       strings.TrimSpace(in.DispatcherID),
		DriverID:           strings.TrimSpace(in.DriverID),
		TruckOwnerID:       strings.TrimSpace(in.TruckOwnerID),
		CarrierID:          strings.TrimSpace(in.CarrierID),
		BrokerID:           strings.TrimSpace(in.BrokerID),
		TruckID:            strings.TrimSpace(in.TruckID),
		TrailerID:          strings.TrimSpace(in.TrailerID),
		PickupCity:         strings.TrimSpace(in.PickupCity),
		PickupState:        strings.TrimSpace(in.PickupState),
		DeliveryCity:       strings.TrimSpace(in.DeliveryCity),
		DeliveryState:      strings.TrimSpace(in.DeliveryState),
		LoadedMiles:        in.LoadedMiles,
		EmptyMiles:         in.EmptyMiles,
		OrderRate:          in.OrderRate,
		OrderRevenue:       in.OrderRevenue,
		BrokerRate:         in.BrokerRate,
		BrokerAdvance:      in.BrokerAdvance,
		DriverRate:         in.DriverRate,
		DriverAdvance:      in.DriverAdvance,
		TruckOwnerPayment:  in.TruckOwnerPayment,
		DispatcherRate:     in.DispatcherRate,
		FactoryRate:        in.FactoryRate,
		FactoryAdvance:     in.FactoryAdvance,
		FuelGallonsPerMile: in.FuelGallonsPerMile,
		FuelCostPerGallon:  in.FuelCostPerGallon,
		LumperFees:         in.LumperFees,
		DetentionFees:      in.DetentionFees,
		Notes:              in.Notes,
	}

	scheduled := now
	if raw := strings.TrimSpace(in.ScheduledTimestamp); raw != "" {
		ts, err := utils.ParseTimestamp(raw)
		if err != nil {
			return t, domain.ValidationError{Field: "scheduledTimestamp", Msg: "must be UTC ISO-8601 without fractional seconds", Err: err}
		}
		scheduled = ts
	}
	t.ScheduledTimestamp = &scheduled

	return t, nil
}

// Create registers a new trip with initial status Scheduled. Only
// dispatcher-role (or admin) actors may create trips.
func (s TripService) Create(in TripInput, actor domain.RequestContext) (models.Trip, error) {
	role := projection.ParseRole(actor.Role)
	if role != projection.RoleDispatcher && role != projection.RoleAdmin {
		return models.Trip{}, domain.ForbiddenError{Msg: "only dispatchers may create trips"}
	}
	if err := validateInput(in); err != nil {
		return models.Trip{}, err
	}

	t, err := fromInput(in, s.now())
	if err != nil {
		return models.Trip{}, err
	}
	t.TripID = uuid.NewString()
	t.OrderStatus = models.StatusScheduled
	if t.DispatcherID == "" {
		t.DispatcherID = actor.UserID
	}
	applyCalc(&t)

	if err := s.TripRepo.Insert(t); err != nil {
		return models.Trip{}, err
	}

	logger.L.Info("trip created",
		logger.String("request_id", s.RequestID),
		logger.String("trip_id", t.TripID),
		logger.Int("total_miles", t.TotalMiles),
	)
	return t, nil
}

// Update replaces the raw inputs of an existing trip and recomputes derived
// fields. Lifecycle state and stamped timestamps are preserved.
func (s TripService) Update(tripID string, in TripInput) (models.Trip, error) {
	if err := validateInput(in); err != nil {
		return models.Trip{}, err
	}

	existing, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.Trip{}, err
	}

	t, err := fromInput(in, s.now())
	if err != nil {
		return models.Trip{}, err
	}
	t.TripID = existing.TripID
	t.OrderStatus = existing.OrderStatus
	if strings.TrimSpace(in.ScheduledTimestamp) == "" {
		t.ScheduledTimestamp = existing.ScheduledTimestamp
	}
	t.PickupTimestamp = existing.PickupTimestamp
	t.DeliveryTimestamp = existing.DeliveryTimestamp
	applyCalc(&t)

	if !t.TimestampOrderOK() {
		return models.Trip{}, domain.ValidationError{Field: "scheduledTimestamp", Msg: "must not be after pickup/delivery"}
	}

	if err := s.TripRepo.Update(t); err != nil {
		return models.Trip{}, err
	}

	logger.L.Info("trip updated",
		logger.String("request_id", s.RequestID),
		logger.String("trip_id", t.TripID),
	)
	return t, nil
}

// Transition advances the trip lifecycle one step and stamps the matching
// timestamp. PickedUp stamps pickup, Delivered stamps delivery.
func (s TripService) Transition(tripID string, to models.OrderStatus) (models.Trip, error) {
	if !to.IsValid() {
		return models.Trip{}, domain.ValidationError{Field: "orderStatus", Msg: "unknown status"}
	}

	t, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return models.Trip{}, err
	}

	if !t.OrderStatus.CanTransition(to) {
		return models.Trip{}, domain.ConflictError{
			Resource: "trip",
			Msg:      "cannot move from " + string(t.OrderStatus) + " to " + string(to),
		}
	}

	now := s.now()
	switch to {
	case models.StatusPickedUp:
		t.PickupTimestamp = &now
	case models.StatusDelivered:
		t.DeliveryTimestamp = &now
	}
	t.OrderStatus = to

	if !t.TimestampOrderOK() {
		return models.Trip{}, domain.ConflictError{Resource: "trip", Msg: "timestamps out of order"}
	}

	if err := s.TripRepo.Update(t); err != nil {
		return models.Trip{}, err
	}

	logger.L.Info("trip status changed",
		logger.String("request_id", s.RequestID),
		logger.String("trip_id", t.TripID),
		logger.String("status", string(to)),
	)
	return t, nil
}

// ProcessPayments marks delivered trips as paid in bulk. Trips in any other
// state are skipped, not failed.
func (s TripService) ProcessPayments(tripIDs []string) (int64, error) {
	n, err := s.TripRepo.MarkPaid(tripIDs)
	if err != nil {
		return 0, err
	}
	logger.L.Info("trips marked paid",
		logger.String("request_id", s.RequestID),
		logger.Int64("count", n),
	)
	return n, nil
}

// GetProjected loads a trip and filters it for the caller's role. Records
// are stored unfiltered; projection happens on every read.
func (s TripService) GetProjected(tripID string, role projection.Role) (map[string]any, error) {
	t, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return nil, err
	}
	return projection.Apply(t.ToRecord(), role), nil
}

func (s TripService) ListProjected(f repositories.TripFilter, role projection.Role) ([]map[string]any, error) {
	trips, err := s.TripRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(trips))
	for _, t := range trips {
		out = append(out, projection.Apply(t.ToRecord(), role))
	}
	return out, nil
}
