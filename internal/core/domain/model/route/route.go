package route

import (
	"errors"
	"fmt"
	"strings"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through the NewRoute or RestoreRoute factory methods.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

// Route is a known city pair with a measured road distance. Distances feed the
// per-kilometer component of cost quotes; city pairs without a route fall back
// to a configured default distance.
type Route struct {
	id              kernel.UUID
	name            string
	originCity      string
	destinationCity string
	distanceKm      float64
	estimatedHours  *float64
	isActive        bool

	isConstructed bool
}

// NewRoute creates an active route between two cities.
//
// The name is derived from the cities when empty. Distance must be positive,
// cities must differ.
func NewRoute(id kernel.UUID, name, originCity, destinationCity string,
	distanceKm float64, estimatedHours *float64) (*Route, error) {
	r := &Route{
		estimatedHours: estimatedHours,
		isActive:       true,
		isConstructed:  true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setCities(originCity, destinationCity),
		r.setDistance(distanceKm),
	); err != nil {
		return nil, err
	}

	if name == "" {
		name = fmt.Sprintf("%s — %s", r.originCity, r.destinationCity)
	}
	r.name = name
	return r, nil
}

// RestoreRoute rebuilds a route from persistence, including its active flag.
func RestoreRoute(id kernel.UUID, name, originCity, destinationCity string,
	distanceKm float64, estimatedHours *float64, isActive bool) (*Route, error) {
	r, err := NewRoute(id, name, originCity, destinationCity, distanceKm, estimatedHours)
	if err != nil {
		return nil, err
	}
	r.isActive = isActive
	return r, nil
}

// Validate ensures the route was created through a factory method.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// IsEqual compares two routes by their unique identifiers.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID { return r.id }

// Name returns the display name of the route.
func (r *Route) Name() string { return r.name }

// OriginCity returns the departure city.
func (r *Route) OriginCity() string { return r.originCity }

// DestinationCity returns the arrival city.
func (r *Route) DestinationCity() string { return r.destinationCity }

// DistanceKm returns the road distance in kilometers.
func (r *Route) DistanceKm() float64 { return r.distanceKm }

// EstimatedHours returns the expected transit time, or nil if unknown.
func (r *Route) EstimatedHours() *float64 { return r.estimatedHours }

// IsActive reports whether the route is used for distance lookups.
func (r *Route) IsActive() bool { return r.isActive }

// Connects reports whether the route links the given cities in this direction.
// City names are compared exactly, case included, after trimming whitespace.
func (r *Route) Connects(originCity, destinationCity string) bool {
	return r.originCity == strings.TrimSpace(originCity) &&
		r.destinationCity == strings.TrimSpace(destinationCity)
}

// Deactivate excludes the route from distance lookups.
func (r *Route) Deactivate() {
	r.isActive = false
}

// Activate includes the route in distance lookups again.
func (r *Route) Activate() {
	r.isActive = true
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setCities(originCity, destinationCity string) error {
	originCity = strings.TrimSpace(originCity)
	destinationCity = strings.TrimSpace(destinationCity)

	if len(originCity) < 2 {
		return errs.NewValueIsRequiredError("originCity")
	}
	if len(destinationCity) < 2 {
		return errs.NewValueIsRequiredError("destinationCity")
	}
	if equalCity(originCity, destinationCity) {
		return errs.NewValueIsInvalidErrorWithCause("destinationCity",
			errors.New("origin and destination must differ"))
	}

	r.originCity = originCity
	r.destinationCity = destinationCity
	return nil
}

func (r *Route) setDistance(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%.2f is not positive", distanceKm))
	}
	r.distanceKm = distanceKm
	return nil
}

func equalCity(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
