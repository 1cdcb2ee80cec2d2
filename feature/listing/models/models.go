package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a customer of the business, optionally linked to an agency.
type Customer struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	AgencyID  *int64    `json:"agency_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Agency is a business partner compensated via commission.
type Agency struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
	City string `json:"city"`

	// CommissionRate is a percentage in [0,100]. NULL means no agreement
	// yet and counts as 0 in reconciliation.
	CommissionRate *decimal.Decimal `gorm:"type:decimal(5,2)" json:"commission_rate"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Hotel is a partner property bookable through the dashboard.
type Hotel struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"created_at"`
}

// Appointment is a scheduled meeting between a customer and a staff member.
type Appointment struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	CustomerID  int64     `json:"customer_id"`
	StaffID     int64     `json:"staff_id"`
	Subject     string    `json:"subject"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// Order is a placed order with its monetary total.
type Order struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	CustomerID  int64           `json:"customer_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// StaffMember is an employee visible on the staff page.
type StaffMember struct {
	ID      int64     `gorm:"primaryKey" json:"id"`
	Name    string    `json:"name"`
	Title   string    `json:"title"`
	HiredAt time.Time `json:"hired_at"`
}

// Transaction is a money movement with a direction and an agency reference.
type Transaction struct {
	ID int64 `gorm:"primaryKey" json:"id"`

	// AgencyID references the agency this movement concerns, if any.
	AgencyID *int64 `json:"agency_id"`

	// AgencyRole is the side the agency sits on (source, destination).
	AgencyRole string `json:"agency_role"`

	// Direction is income, expense, or transfer.
	Direction string `json:"direction"`

	Amount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}
