package attendance

import "github.com/shopspring/decimal"

// Geofence is a rectangular latitude/longitude region. All bounds are inclusive.
type Geofence struct {
	MinLatitude  decimal.Decimal
	MaxLatitude  decimal.Decimal
	MinLongitude decimal.Decimal
	MaxLongitude decimal.Decimal
}

// DefaultGeofence covers latitude 3..5 and longitude 6..7.
func DefaultGeofence() Geofence {
	return Geofence{
		MinLatitude:  decimal.NewFromInt(3),
		MaxLatitude:  decimal.NewFromInt(5),
		MinLongitude: decimal.NewFromInt(6),
		MaxLongitude: decimal.NewFromInt(7),
	}
}

// Contains reports whether the point lies inside the geofence.
func (g Geofence) Contains(latitude, longitude decimal.Decimal) bool {
	return latitude.GreaterThanOrEqual(g.MinLatitude) &&
		latitude.LessThanOrEqual(g.MaxLatitude) &&
		longitude.GreaterThanOrEqual(g.MinLongitude) &&
		longitude.LessThanOrEqual(g.MaxLongitude)
}
