package kernel

import (
	"fmt"

	"delivr/internal/pkg/errs"

	"delivr/internal/pkg/guard"
)

const (
	// GeoMinLat and GeoMaxLat bound valid latitudes in degrees.
	GeoMinLat float64 = -90
	GeoMaxLat float64 = 90
	// GeoMinLng and GeoMaxLng bound valid longitudes in degrees.
	GeoMinLng float64 = -180
	GeoMaxLng float64 = 180
)

// ErrGeoPointIsNotConstructed is returned when validating a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable latitude/longitude pair. It tracks a delivery
// partner's last reported position. The zero value is invalid; partners start
// from ZeroGeoPoint (0,0) until their first location report, matching the
// registration default.
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with validated coordinates.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setLat(lat); err != nil {
		return GeoPoint{}, err
	}
	if err := p.setLng(lng); err != nil {
		return GeoPoint{}, err
	}
	return p, nil
}

// ZeroGeoPoint returns the (0,0) point used before a partner reports a
// position for the first time.
func ZeroGeoPoint() GeoPoint {
	p, _ := NewGeoPoint(0, 0)
	return p
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual compares two points by coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// Validate rejects points not created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.6f,%.6f)", p.lat, p.lng)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoMinLat || lat > GeoMaxLat {
		return errs.NewValueIsOutOfRangeError("lat", lat, GeoMinLat, GeoMaxLat)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < GeoMinLng || lng > GeoMaxLng {
		return errs.NewValueIsOutOfRangeError("lng", lng, GeoMinLng, GeoMaxLng)
	}
	p.lng = lng
	return nil
}
