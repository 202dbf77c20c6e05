package constants

// Machine-checkable error codes returned in the "error" field of failure payloads.
const (
	ERROR_INVALID_ARGUMENT     = "INVALID_ARGUMENT"
	ERROR_NOT_FOUND            = "NOT_FOUND"
	ERROR_ALREADY_RESERVED     = "ALREADY_RESERVED"
	ERROR_SOLD_OUT             = "SOLD_OUT"
	ERROR_UPSTREAM_UNAVAILABLE = "UPSTREAM_UNAVAILABLE"
	ERROR_DELIVERY_DEGRADED    = "DELIVERY_DEGRADED"
	ERROR_UNAUTHORIZED         = "UNAUTHORIZED"
	ERROR_FORBIDDEN            = "FORBIDDEN"
	ERROR_INTERNAL_ERROR       = "INTERNAL"
)

const (
	ROLE_MANAGER = "manager"
	ROLE_USER    = "user"
)
