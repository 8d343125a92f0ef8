package constants

// Redis key formats
const (
	KeyDriverGeo      = "drivers:geo:%s"     // Format: drivers:geo:{vehicle_class}
	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
)

// Redis hash fields
const (
	FieldLatitude     = "lat"
	FieldLongitude    = "lng"
	FieldVehicleClass = "class"
)
