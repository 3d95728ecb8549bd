package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullTripRecord() map[string]any {
	return map[string]any{
		"tripId":             "t-1",
		"orderConfirmation":  "OC-100",
		"orderStatus":        "InTransit",
		"scheduledTimestamp": "2026-03-01T08:00:00Z",
		"pickupTimestamp":    "2026-03-01T09:30:00Z",
		"pickupCity":         "Dallas",
		"pickupState":        "TX",
		"deliveryCity":       "Atlanta",
		"deliveryState":      "GA",
		"loadedMiles":        600,
		"emptyMiles":         50,
		"totalMiles":         650,
		"truckId":            "TRK-7",
		"trailerId":          "TRL-2",
		"notes":              "dock opens at 8",
		"orderRate":          2000.0,
		"orderRevenue":       1800.0,
		"brokerPayment":      150.0,
		"driverPayment":      520.0,
		"driverRate":         1.20,
		"driverAdvance":      200.0,
		"truckOwnerPayment":  300.0,
		"dispatcherPayment":  65.0,
		"factoryCost":        60.0,
		"netProfit":          725.0,
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleDriver, ParseRole("driver"))
	assert.Equal(t, RoleDriver, ParseRole(" Driver "))
	assert.Equal(t, RoleTruckOwner, ParseRole("TruckOwner"))
	assert.Equal(t, RoleTruckOwner, ParseRole("lorryOwner"))
	assert.Equal(t, RoleAdmin, ParseRole("ADMIN"))
	assert.Equal(t, RoleUnknown, ParseRole(""))
	assert.Equal(t, RoleUnknown, ParseRole("accountant"))
}

func TestDriverProjectionLeaksNothing(t *testing.T) {
	out := Apply(fullTripRecord(), RoleDriver)

	for _, forbidden := range []string{
		"brokerPayment", "truckOwnerPayment", "dispatcherPayment",
		"orderRevenue", "orderRate", "factoryCost", "netProfit", "emptyMiles",
	} {
		assert.NotContains(t, out, forbidden)
	}

	assert.Equal(t, 520.0, out["driverPayment"])
	assert.Equal(t, 1.20, out["driverRate"])
	assert.Equal(t, 200.0, out["driverAdvance"])
	assert.Equal(t, "TRK-7", out["truckId"])
	assert.Equal(t, "TRL-2", out["trailerId"])
	assert.Equal(t, 650, out["totalMiles"])
}

func TestTruckOwnerProjectionLeaksNothing(t *testing.T) {
	out := Apply(fullTripRecord(), RoleTruckOwner)

	for _, forbidden := range []string{
		"brokerPayment", "driverPayment", "driverRate", "driverAdvance",
		"dispatcherPayment", "trailerId",
	} {
		assert.NotContains(t, out, forbidden)
	}

	assert.Equal(t, 300.0, out["truckOwnerPayment"])
	assert.Equal(t, "TRK-7", out["truckId"])
}

func TestFullRecordRoles(t *testing.T) {
	rec := fullTripRecord()
	for _, role := range []Role{RoleDispatcher, RoleAdmin, RoleCarrier} {
		out := Apply(rec, role)
		assert.Equal(t, rec, out, "role %s should see the full record", role)
	}
}

func TestUnknownRoleFailsClosed(t *testing.T) {
	out := Apply(fullTripRecord(), RoleUnknown)

	for key := range out {
		assert.Contains(t, baseFields, key)
	}
	assert.Contains(t, out, "tripId")
	assert.NotContains(t, out, "truckId")
	assert.NotContains(t, out, "driverPayment")
}

func TestProjectionOmitsAbsentKeys(t *testing.T) {
	rec := map[string]any{
		"tripId":      "t-2",
		"orderStatus": "Scheduled",
		"loadedMiles": 100,
	}
	out := Apply(rec, RoleDriver)

	require.Len(t, out, 3)
	assert.NotContains(t, out, "driverPayment")
}

func TestProjectionIdempotent(t *testing.T) {
	for _, role := range []Role{RoleDriver, RoleTruckOwner, RoleDispatcher, RoleUnknown} {
		once := Apply(fullTripRecord(), role)
		twice := Apply(once, role)
		assert.Equal(t, once, twice, "role %s", role)
	}
}

func TestOwnPaymentPresentWhenStored(t *testing.T) {
	rec := fullTripRecord()

	driver := Apply(rec, RoleDriver)
	assert.Contains(t, driver, "driverPayment")

	owner := Apply(rec, RoleTruckOwner)
	assert.Contains(t, owner, "truckOwnerPayment")
}

func TestDisjointFinancialViews(t *testing.T) {
	rec := fullTripRecord()
	driver := Apply(rec, RoleDriver)
	owner := Apply(rec, RoleTruckOwner)

	// No financial field shows up in both restricted views.
	financial := []string{
		"driverPayment", "driverRate", "driverAdvance", "truckOwnerPayment",
		"brokerPayment", "dispatcherPayment", "orderRate", "orderRevenue",
	}
	for _, f := range financial {
		_, inDriver := driver[f]
		_, inOwner := owner[f]
		assert.False(t, inDriver && inOwner, "field %s leaked into both views", f)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	rec := fullTripRecord()
	before := len(rec)
	_ = Apply(rec, RoleDriver)
	assert.Len(t, rec, before)
	assert.Contains(t, rec, "brokerPayment")
}
