package repositories

import (
	"database/sql"
	"strings"

	intconfig "haulhub/internal/config"
	intdb "haulhub/internal/db"
	"haulhub/internal/domain"
	"haulhub/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `trip_id, order_confirmation,
	dispatcher_id, driver_id, truck_owner_id, carrier_id, broker_id,
	truck_id, trailer_id,
	order_status, scheduled_at, pickup_at, delivery_at,
	COALESCE(pickup_city,''), COALESCE(pickup_state,''), COALESCE(delivery_city,''), COALESCE(delivery_state,''),
	loaded_miles, empty_miles, total_miles,
	order_rate, order_revenue,
	broker_payment, broker_rate, broker_advance, broker_cost,
	driver_payment, driver_rate, driver_advance,
	truck_owner_payment,
	dispatcher_payment, dispatcher_rate,
	factory_rate, factory_cost, factory_advance,
	fuel_gallons_per_mile, fuel_cost_per_gallon, fuel_total_cost,
	lumper_fees, detention_fees,
	total_expenses, net_profit,
	COALESCE(notes,'')`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	var scheduled, pickup, delivery sql.NullTime
	money := make([]sql.NullFloat64, 22)

	err := row.Scan(
		&t.TripID, &t.OrderConfirmation,
		&t.DispatcherID, &t.DriverID, &t.TruckOwnerID, &t.CarrierID, &t.BrokerID,
		&t.TruckID, &t.TrailerID,
		&t.OrderStatus, &scheduled, &pickup, &delivery,
		&t.PickupCity, &t.PickupState, &t.DeliveryCity, &t.DeliveryState,
		&t.LoadedMiles, &t.EmptyMiles, &t.TotalMiles,
		&money[0], &money[1],
		&money[2], &money[3], &money[4], &money[5],
		&money[6], &money[7], &money[8],
		&money[9],
		&money[10], &money[11],
		&money[12], &money[13], &money[14],
		&money[15], &money[16], &money[17],
		&money[18], &money[19],
		&money[20], &money[21],
		&t.Notes,
	)
	if err != nil {
		return t, err
	}

	if scheduled.Valid {
		v := scheduled.Time
		t.ScheduledTimestamp = &v
	}
	if pickup.Valid {
		v := pickup.Time
		t.PickupTimestamp = &v
	}
	if delivery.Valid {
		v := delivery.Time
		t.DeliveryTimestamp = &v
	}

	targets := []**float64{
		&t.OrderRate, &t.OrderRevenue,
		&t.BrokerPayment, &t.BrokerRate, &t.BrokerAdvance, &t.BrokerCost,
		&t.DriverPayment, &t.DriverRate, &t.DriverAdvance,
		&t.TruckOwnerPayment,
		&t.DispatcherPayment, &t.DispatcherRate,
		&t.FactoryRate, &t.FactoryCost, &t.FactoryAdvance,
		&t.FuelGallonsPerMile, &t.FuelCostPerGallon, &t.FuelTotalCost,
		&t.LumperFees, &t.DetentionFees,
		&t.TotalExpenses, &t.NetProfit,
	}
	for i, n := range money {
		if n.Valid {
			v := n.Float64
			*targets[i] = &v
		}
	}

	return t, nil
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func tripArgs(t models.Trip) []any {
	return []any{
		t.TripID, t.OrderConfirmation,
		t.DispatcherID, t.DriverID, t.TruckOwnerID, t.CarrierID, t.BrokerID,
		t.TruckID, t.TrailerID,
		string(t.OrderStatus), t.ScheduledTimestamp, t.PickupTimestamp, t.DeliveryTimestamp,
		intdb.NullIfEmpty(t.PickupCity), intdb.NullIfEmpty(t.PickupState),
		intdb.NullIfEmpty(t.DeliveryCity), intdb.NullIfEmpty(t.DeliveryState),
		t.LoadedMiles, t.EmptyMiles, t.TotalMiles,
		nullFloat(t.OrderRate), nullFloat(t.OrderRevenue),
		nullFloat(t.BrokerPayment), nullFloat(t.BrokerRate), nullFloat(t.BrokerAdvance), nullFloat(t.BrokerCost),
		nullFloat(t.DriverPayment), nullFloat(t.DriverRate), nullFloat(t.DriverAdvance),
		nullFloat(t.TruckOwnerPayment),
		nullFloat(t.DispatcherPayment), nullFloat(t.DispatcherRate),
		nullFloat(t.FactoryRate), nullFloat(t.FactoryCost), nullFloat(t.FactoryAdvance),
		nullFloat(t.FuelGallonsPerMile), nullFloat(t.FuelCostPerGallon), nullFloat(t.FuelTotalCost),
		nullFloat(t.LumperFees), nullFloat(t.DetentionFees),
		nullFloat(t.TotalExpenses), nullFloat(t.NetProfit),
		intdb.NullIfEmpty(t.Notes),
	}
}

func (r TripRepository) Insert(t models.Trip) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", 43), ", ")
	_, err := r.db().Exec(`
		INSERT INTO trips (
		  trip_id, order_confirmation,
		  dispatcher_id, driver_id, truck_owner_id, carrier_id, broker_id,
		  truck_id, trailer_id,
		  order_status, scheduled_at, pickup_at, delivery_at,
		  pickup_city, pickup_state, delivery_city, delivery_state,
		  loaded_miles, empty_miles, total_miles,
		  order_rate, order_revenue,
		  broker_payment, broker_rate, broker_advance, broker_cost,
		  driver_payment, driver_rate, driver_advance,
		  truck_owner_payment,
		  dispatcher_payment, dispatcher_rate,
		  factory_rate, factory_cost, factory_advance,
		  fuel_gallons_per_mile, fuel_cost_per_gallon, fuel_total_cost,
		  lumper_fees, detention_fees,
		  total_expenses, net_profit,
		  notes
		) VALUES (`+placeholders+`)`,
		tripArgs(t)...,
	)
	if err != nil {
		return domain.InternalError{Msg: "failed to insert trip", Err: err}
	}
	return nil
}

func (r TripRepository) Update(t models.Trip) error {
	args := tripArgs(t)
	// move trip_id to the WHERE position
	args = append(args[1:], t.TripID)
	res, err := r.db().Exec(`
		UPDATE trips SET
		  order_confirmation=?,
		  dispatcher_id=?, driver_id=?, truck_owner_id=?, carrier_id=?, broker_id=?,
		  truck_id=?, trailer_id=?,
		  order_status=?, scheduled_at=?, pickup_at=?, delivery_at=?,
		  pickup_city=?, pickup_state=?, delivery_city=?, delivery_state=?,
		  loaded_miles=?, empty_miles=?, total_miles=?,
		  order_rate=?, order_revenue=?,
		  broker_payment=?, broker_rate=?, broker_advance=?, broker_cost=?,
		  driver_payment=?, driver_rate=?, driver_advance=?,
		  truck_owner_payment=?,
		  dispatcher_payment=?, dispatcher_rate=?,
		  factory_rate=?, factory_cost=?, factory_advance=?,
		  fuel_gallons_per_mile=?, fuel_cost_per_gallon=?, fuel_total_cost=?,
		  lumper_fees=?, detention_fees=?,
		  total_expenses=?, net_profit=?,
		  notes=?
		WHERE trip_id=?`,
		args...,
	)
	if err != nil {
		return domain.InternalError{Msg: "failed to update trip", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "trip"}
	}
	return nil
}

func (r TripRepository) GetByID(tripID string) (models.Trip, error) {
	row := r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE trip_id=?`, tripID)
	t, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	if err != nil {
		return t, domain.InternalError{Msg: "failed to load trip", Err: err}
	}
	return t, nil
}

type TripFilter struct {
	Status    string
	DriverID  string
	TruckID   string
	StartDate string // inclusive, on scheduled_at
	EndDate   string
}

func (r TripRepository) List(f TripFilter) ([]models.Trip, error) {
	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, "order_status=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.DriverID); s != "" {
		where = append(where, "driver_id=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.TruckID); s != "" {
		where = append(where, "truck_id=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.StartDate); s != "" {
		where = append(where, "scheduled_at>=?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(f.EndDate); s != "" {
		where = append(where, "scheduled_at<=?")
		args = append(args, s)
	}

	rows, err := r.db().Query(
		`SELECT `+tripColumns+` FROM trips WHERE `+strings.Join(where, " AND ")+` ORDER BY scheduled_at DESC, trip_id DESC`,
		args...,
	)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list trips", Err: err}
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, domain.InternalError{Msg: "failed to scan trip", Err: err}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// MarkPaid transitions delivered trips to Paid in one statement and returns
// how many rows changed. Trips not in Delivered state are left untouched.
func (r TripRepository) MarkPaid(tripIDs []string) (int64, error) {
	if len(tripIDs) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(tripIDs)), ",")
	args := make([]any, 0, len(tripIDs)+1)
	args = append(args, string(models.StatusPaid))
	for _, id := range tripIDs {
		args = append(args, id)
	}
	res, err := r.db().Exec(
		`UPDATE trips SET order_status=? WHERE trip_id IN (`+placeholders+`) AND order_status='Delivered'`,
		args...,
	)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to mark trips paid", Err: err}
	}
	n, _ := res.RowsAffected()
	return n, nil
}
