package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRecordRenamesLegacyKeys(t *testing.T) {
	in := map[string]any{
		"tripId":            "t-1",
		"lorryOwnerPayment": 300.0,
		"lorryId":           "TRK-7",
		"mileageOrder":      600,
		"mileageEmpty":      50,
		"mileageTotal":      650,
		"tripStatus":        "Delivered",
	}

	out := NormalizeRecord(in)

	assert.Equal(t, "t-1", out["tripId"])
	assert.Equal(t, 300.0, out["truckOwnerPayment"])
	assert.Equal(t, "TRK-7", out["truckId"])
	assert.Equal(t, 600, out["loadedMiles"])
	assert.Equal(t, 50, out["emptyMiles"])
	assert.Equal(t, 650, out["totalMiles"])
	assert.Equal(t, "Delivered", out["orderStatus"])

	for _, legacy := range []string{"lorryOwnerPayment", "lorryId", "mileageOrder", "mileageEmpty", "mileageTotal", "tripStatus"} {
		assert.NotContains(t, out, legacy)
	}
}

func TestNormalizeRecordCanonicalWins(t *testing.T) {
	in := map[string]any{
		"loadedMiles":  600,
		"mileageOrder": 999,
	}
	out := NormalizeRecord(in)
	assert.Equal(t, 600, out["loadedMiles"])
}

func TestNormalizeRecordPassthrough(t *testing.T) {
	in := map[string]any{"tripId": "t-1", "notes": "x"}
	assert.Equal(t, in, NormalizeRecord(in))
}

func TestCanonicalKey(t *testing.T) {
	assert.Equal(t, "truckOwnerPayment", CanonicalKey("lorryOwnerPayment"))
	assert.Equal(t, "driverPayment", CanonicalKey("driverPayment"))
}
