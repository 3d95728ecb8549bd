package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	forward := []OrderStatus{StatusScheduled, StatusPickedUp, StatusInTransit, StatusDelivered, StatusPaid}
	for i := 0; i < len(forward)-1; i++ {
		assert.True(t, forward[i].CanTransition(forward[i+1]), "%s -> %s", forward[i], forward[i+1])
	}

	assert.False(t, StatusScheduled.CanTransition(StatusInTransit), "no skipping")
	assert.False(t, StatusDelivered.CanTransition(StatusScheduled), "no going back")
	assert.False(t, StatusPaid.CanTransition(StatusPaid), "terminal state")
	assert.False(t, OrderStatus("bogus").CanTransition(StatusPaid))
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus(" pickedup ")
	assert.True(t, ok)
	assert.Equal(t, StatusPickedUp, s)

	_, ok = ParseOrderStatus("lost")
	assert.False(t, ok)
}

func TestToRecordOmitsUnsetOptionals(t *testing.T) {
	trip := Trip{
		TripID:      "t-1",
		OrderStatus: StatusScheduled,
		LoadedMiles: 600,
		EmptyMiles:  50,
		TotalMiles:  650,
	}
	rec := trip.ToRecord()

	assert.NotContains(t, rec, "pickupTimestamp")
	assert.NotContains(t, rec, "deliveryTimestamp")
	assert.NotContains(t, rec, "driverPayment")
	assert.NotContains(t, rec, "orderRate")
	assert.Equal(t, 650, rec["totalMiles"])
	assert.Equal(t, "Scheduled", rec["orderStatus"])
}

func TestToRecordTimestampFormat(t *testing.T) {
	ts := time.Date(2026, 3, 1, 8, 0, 0, 123456789, time.UTC)
	trip := Trip{TripID: "t-1", ScheduledTimestamp: &ts}
	rec := trip.ToRecord()

	assert.Equal(t, "2026-03-01T08:00:00Z", rec["scheduledTimestamp"])
}

func TestTimestampOrderOK(t *testing.T) {
	at := func(h int) *time.Time {
		v := time.Date(2026, 3, 1, h, 0, 0, 0, time.UTC)
		return &v
	}

	ok := Trip{ScheduledTimestamp: at(8), PickupTimestamp: at(9), DeliveryTimestamp: at(17)}
	assert.True(t, ok.TimestampOrderOK())

	partial := Trip{ScheduledTimestamp: at(8)}
	assert.True(t, partial.TimestampOrderOK())

	bad := Trip{ScheduledTimestamp: at(10), PickupTimestamp: at(9)}
	assert.False(t, bad.TimestampOrderOK())

	badDelivery := Trip{PickupTimestamp: at(12), DeliveryTimestamp: at(11)}
	assert.False(t, badDelivery.TimestampOrderOK())
}
