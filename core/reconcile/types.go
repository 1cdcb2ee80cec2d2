package reconcile

import "github.com/shopspring/decimal"

// MovementDirection classifies a money movement.
type MovementDirection string

const (
	// DirectionIncome is money flowing into the company.
	DirectionIncome MovementDirection = "income"
	// DirectionExpense is money flowing out of the company.
	DirectionExpense MovementDirection = "expense"
	// DirectionTransfer is an internal move between accounts.
	DirectionTransfer MovementDirection = "transfer"
)

// AgencyRole is the side of a movement an agency sits on.
type AgencyRole string

const (
	// RoleSource marks the agency as the movement's origin.
	RoleSource AgencyRole = "source"
	// RoleDestination marks the agency as the movement's target.
	RoleDestination AgencyRole = "destination"
)

// Agency is a business partner compensated via commission.
type Agency struct {
	// ID is unique within the collection.
	ID int64 `json:"id"`

	// Name is the display name. May be empty for dirty rows.
	Name string `json:"name"`

	// CommissionRate is a percentage in [0, 100]. Nil counts as 0.
	CommissionRate *decimal.Decimal `json:"commission_rate"`
}

// Customer is a customer optionally linked to an agency.
type Customer struct {
	ID int64 `json:"id"`

	// AgencyID links the customer to an agency. Nil means unlinked;
	// unlinked customers are excluded from agency statistics.
	AgencyID *int64 `json:"agency_id"`
}

// Order is a placed order attributed to an agency through its customer.
type Order struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customer_id"`

	// TotalAmount is the order total, expected >= 0.
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Movement is a signed financial transaction referencing an agency.
type Movement struct {
	ID int64 `json:"id"`

	// AgencyID is the referenced agency. Nil movements are ignored.
	AgencyID *int64 `json:"agency_id"`

	// AgencyRole is the side of the movement the agency sits on.
	AgencyRole AgencyRole `json:"agency_role"`

	// Direction is income, expense, or transfer.
	Direction MovementDirection `json:"direction"`

	// Amount is signed; the settlement rules work on its absolute value.
	Amount decimal.Decimal `json:"amount"`
}

// RankedAgency is one entry of the top-agencies summary card.
type RankedAgency struct {
	ID int64 `json:"id"`

	// Name is the agency display name, or a synthetic "Agency #<id>" label
	// when the record carries none.
	Name string `json:"name"`

	// Customers is the number of linked customers.
	Customers int `json:"customers"`
}

// Statistics is the dashboard summary derived from the four collections.
type Statistics struct {
	// TotalAgencies is the number of distinct agencies in the collection.
	TotalAgencies int `json:"total_agencies"`

	// TopAgencies ranks up to three agencies by linked-customer count.
	TopAgencies []RankedAgency `json:"top_agencies"`

	// TotalOutstanding sums the per-agency outstanding balances.
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

// Balance is the per-agency reconciliation breakdown.
type Balance struct {
	AgencyID int64  `json:"agency_id"`
	Name     string `json:"name"`

	// Customers is the number of linked customers.
	Customers int `json:"customers"`

	// Owed is commission earned from the agency's customers' orders.
	Owed decimal.Decimal `json:"owed"`

	// Paid is commission already settled per the movement rules.
	Paid decimal.Decimal `json:"paid"`

	// Outstanding is max(0, Owed - Paid).
	Outstanding decimal.Decimal `json:"outstanding"`
}
