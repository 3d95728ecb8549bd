// Package compat maps the legacy single-table trip vocabulary
// (lorryOwnerPayment, mileageOrder, combined lorryId) onto the canonical
// truck/trailer schema. The mapping is applied on ingest only; stored
// records and every read path use canonical names.
package compat

var legacyKeyMap = map[string]string{
	"lorryOwnerPayment": "truckOwnerPayment",
	"lorryOwnerId":      "truckOwnerId",
	"lorryId":           "truckId",
	"mileageOrder":      "loadedMiles",
	"mileageEmpty":      "emptyMiles",
	"mileageTotal":      "totalMiles",
	"tripStatus":        "orderStatus",
}

// NormalizeRecord rewrites legacy keys to their canonical names. Canonical
// keys win when a payload carries both spellings.
func NormalizeRecord(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		if _, isLegacy := legacyKeyMap[k]; !isLegacy {
			out[k] = v
		}
	}
	for k, v := range record {
		if canonical, ok := legacyKeyMap[k]; ok {
			if _, exists := record[canonical]; !exists {
				out[canonical] = v
			}
		}
	}
	return out
}

// CanonicalKey resolves a single field name, returning the input unchanged
// when it is not a legacy spelling.
func CanonicalKey(key string) string {
	if canonical, ok := legacyKeyMap[key]; ok {
		return canonical
	}
	return key
}
