// Package restaurant contains the read-mostly catalog: restaurants and their
// menu items. Checkout snapshots menu item names and prices into the order,
// so the catalog can change freely without rewriting order history.
package restaurant

import (
	"errors"
	"fmt"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant was not created
// through NewRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is a catalog entry a customer can order from.
type Restaurant struct {
	id       kernel.UUID
	name     string
	cuisine  string
	address  string
	location kernel.GeoPoint
	rating   float64
	isOpen   bool

	guard guard.ConstructorGuard
}

// NewRestaurant creates a validated restaurant entry.
func NewRestaurant(
	id kernel.UUID,
	name string,
	cuisine string,
	address string,
	location kernel.GeoPoint,
	rating float64,
	isOpen bool,
) (*Restaurant, error) {
	r := &Restaurant{
		cuisine: cuisine,
		isOpen:  isOpen,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
		r.setLocation(location),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the restaurant was created through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant name.
func (r *Restaurant) Name() string {
	return r.name
}

// Cuisine returns the cuisine label, possibly empty.
func (r *Restaurant) Cuisine() string {
	return r.cuisine
}

// Address returns the street address.
func (r *Restaurant) Address() string {
	return r.address
}

// Location returns the restaurant's position.
func (r *Restaurant) Location() kernel.GeoPoint {
	return r.location
}

// Rating returns the average customer rating.
func (r *Restaurant) Rating() float64 {
	return r.rating
}

// IsOpen reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsOpen() bool {
	return r.isOpen
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("restaurant address")
	}
	r.address = address
	return nil
}

func (r *Restaurant) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}

func (r *Restaurant) setRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0.0, 5.0)
	}
	r.rating = rating
	return nil
}

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
// through NewMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is one orderable dish on a restaurant's menu. Price is in whole
// currency units.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        int64
	category     string
	isVeg        bool
	isAvailable  bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates a validated menu item.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	price int64,
	category string,
	isVeg bool,
	isAvailable bool,
) (*MenuItem, error) {
	m := &MenuItem{
		description: description,
		category:    category,
		isVeg:       isVeg,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setRestaurantID(restaurantID),
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the menu item was created through NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's id.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the dish description, possibly empty.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the price per unit.
func (m *MenuItem) Price() int64 {
	return m.price
}

// Category returns the menu section, possibly empty.
func (m *MenuItem) Category() string {
	return m.category
}

// IsVeg reports whether the dish is vegetarian.
func (m *MenuItem) IsVeg() bool {
	return m.isVeg
}

// IsAvailable reports whether the dish can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%d is negative", price))
	}
	m.price = price
	return nil
}
