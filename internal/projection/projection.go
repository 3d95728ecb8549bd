// Package projection filters full trip records down to the fields one role
// is entitled to see. Records are always stored unfiltered; the filter is
// applied on every read path so no party's compensation leaks to another.
package projection

// Non-financial fields every enumerated role may see on a trip.
var baseFields = []string{
	"tripId",
	"orderConfirmation",
	"orderStatus",
	"scheduledTimestamp",
	"pickupTimestamp",
	"deliveryTimestamp",
	"pickupCity",
	"pickupState",
	"deliveryCity",
	"deliveryState",
	"loadedMiles",
	"totalMiles",
	"notes",
}

// Role-specific additions on top of baseFields. Dispatcher, Admin and
// Carrier are handled separately as full-record roles.
var roleFields = map[Role][]string{
	RoleDriver: {
		"truckId",
		"trailerId",
		"driverPayment",
		"driverRate",
		"driverAdvance",
	},
	RoleTruckOwner: {
		"truckId",
		"truckOwnerPayment",
	},
	// RoleUnknown gets baseFields only.
	RoleUnknown: {},
}

// fullRecord marks roles entitled to every stored field.
var fullRecord = map[Role]bool{
	RoleDispatcher: true,
	RoleAdmin:      true,
	RoleCarrier:    true,
}

// FieldsFor returns the allow-list for a role, or nil when the role sees
// the full record.
func FieldsFor(role Role) []string {
	if fullRecord[role] {
		return nil
	}
	extra, ok := roleFields[role]
	if !ok {
		extra = roleFields[RoleUnknown]
	}
	out := make([]string, 0, len(baseFields)+len(extra))
	out = append(out, baseFields...)
	out = append(out, extra...)
	return out
}

// Apply projects a full trip record for one role. Keys absent from the
// input are omitted from the output; unknown roles see only the
// non-financial base set. The function is pure and idempotent per role.
func Apply(record map[string]any, role Role) map[string]any {
	allowed := FieldsFor(role)
	if allowed == nil {
		out := make(map[string]any, len(record))
		for k, v := range record {
			out[k] = v
		}
		return out
	}

	out := make(map[string]any, len(allowed))
	for _, key := range allowed {
		if v, ok := record[key]; ok {
			out[key] = v
		}
	}
	return out
}
