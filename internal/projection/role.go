package projection

import "strings"

// Role is the closed set of actor types a trip record can be viewed as.
// Anything that does not parse lands on RoleUnknown, which carries the most
// restrictive field policy so the filter fails closed.
type Role string

const (
	RoleDispatcher Role = "Dispatcher"
	RoleDriver     Role = "Driver"
	RoleTruckOwner Role = "TruckOwner"
	RoleAdmin      Role = "Admin"
	RoleCarrier    Role = "Carrier"
	RoleUnknown    Role = "Unknown"
)

// ParseRole normalizes a raw role string. The legacy "LorryOwner" spelling
// maps onto TruckOwner.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dispatcher":
		return RoleDispatcher
	case "driver":
		return RoleDriver
	case "truckowner", "truck_owner", "lorryowner", "lorry_owner":
		return RoleTruckOwner
	case "admin":
		return RoleAdmin
	case "carrier":
		return RoleCarrier
	default:
		return RoleUnknown
	}
}

func (r Role) String() string { return string(r) }
