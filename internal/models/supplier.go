package models

import (
	"slices"
	"strings"
	"time"
)

const initialReliabilityRating = 5.0

type Supplier struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email"`
	Address               string    `json:"address"`
	ReliabilityRating     float64   `json:"reliability_rating"`
	Specialties           []string  `json:"specialties"`
	Active                bool      `json:"active"`
	TotalOrdersPlaced     int       `json:"total_orders_placed"`
	OrdersDeliveredOnTime int       `json:"orders_delivered_on_time"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// NewSupplier starts every supplier at a perfect rating. The rating only
// moves once deliveries are recorded.
func NewSupplier(name, phone, email, address string) *Supplier {
	return &Supplier{
		Name:              name,
		Phone:             phone,
		Email:             email,
		Address:           address,
		ReliabilityRating: initialReliabilityRating,
		Active:            true,
	}
}

// RecordOrder counts an order placement. Placements alone never move the
// rating; only deliveries do.
func (s *Supplier) RecordOrder() {
	s.TotalOrdersPlaced++
}

// RecordOnTimeDelivery counts an on-time delivery and recomputes the
// rating from the on-time ratio.
func (s *Supplier) RecordOnTimeDelivery() {
	s.OrdersDeliveredOnTime++
	s.updateReliabilityRating()
}

// RecordLateDelivery recomputes the rating without crediting an on-time
// delivery, so the rating drifts toward the floor as placements outgrow
// on-time deliveries. Nothing in the delivery flow calls this yet; the
// overdue check is a pure query.
func (s *Supplier) RecordLateDelivery() {
	s.updateReliabilityRating()
}

// Rating stays at its initial value until at least one order is placed.
func (s *Supplier) updateReliabilityRating() {
	if s.TotalOrdersPlaced > 0 {
		onTime := float64(s.OrdersDeliveredOnTime) / float64(s.TotalOrdersPlaced)
		s.ReliabilityRating = 1.0 + onTime*4.0
	}
}

func (s *Supplier) OnTimeDeliveryPercentage() float64 {
	if s.TotalOrdersPlaced == 0 {
		return 100.0
	}

	return float64(s.OrdersDeliveredOnTime) / float64(s.TotalOrdersPlaced) * 100.0
}

func (s *Supplier) ReliabilityDescription() string {
	switch {
	case s.ReliabilityRating >= 4.5:
		return "Excellent"
	case s.ReliabilityRating >= 3.5:
		return "Good"
	case s.ReliabilityRating >= 2.5:
		return "Average"
	case s.ReliabilityRating >= 1.5:
		return "Poor"
	default:
		return "Very Poor"
	}
}

// AddSpecialty tags the supplier with a product category. Duplicates are
// a no-op.
func (s *Supplier) AddSpecialty(specialty string) {
	if !s.HasSpecialty(specialty) {
		s.Specialties = append(s.Specialties, specialty)
	}
}

func (s *Supplier) RemoveSpecialty(specialty string) {
	s.Specialties = slices.DeleteFunc(s.Specialties, func(v string) bool {
		return v == specialty
	})
}

func (s *Supplier) HasSpecialty(specialty string) bool {
	return slices.Contains(s.Specialties, specialty)
}

// ContactInfo joins phone and email, skipping whichever is empty.
func (s *Supplier) ContactInfo() string {
	var parts []string

	if s.Phone != "" {
		parts = append(parts, s.Phone)
	}

	if s.Email != "" {
		parts = append(parts, s.Email)
	}

	return strings.Join(parts, " / ")
}

type CreateSupplierRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Phone       string   `json:"phone" validate:"omitempty,max=50"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Address     string   `json:"address" validate:"omitempty,max=500"`
	Specialties []string `json:"specialties,omitempty" validate:"omitempty,dive,min=1,max=100"`
}

type SpecialtyRequest struct {
	Specialty string `json:"specialty" validate:"required,min=1,max=100"`
}

type SetSupplierActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}
