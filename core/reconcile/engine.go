package reconcile

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// topAgencyCount is how many agencies the summary ranking shows.
const topAgencyCount = 3

var oneHundred = decimal.NewFromInt(100)

// ComputeStatistics derives the dashboard summary from the four collections.
// It is a pure synchronous derivation: no input slice is mutated, identical
// inputs produce identical output, and absent or malformed collections
// degrade to empty statistics rather than failing.
func ComputeStatistics(agencies []Agency, customers []Customer, orders []Order, movements []Movement) Statistics {
	balances := AgencyBalances(agencies, customers, orders, movements)

	stats := Statistics{
		TotalAgencies:    len(balances),
		TotalOutstanding: decimal.Zero,
	}

	for _, b := range balances {
		stats.TotalOutstanding = stats.TotalOutstanding.Add(b.Outstanding)
	}

	// Rank by linked-customer count descending. The stable sort keeps the
	// input order of the agency collection for equal counts.
	ranked := make([]Balance, len(balances))
	copy(ranked, balances)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Customers > ranked[j].Customers
	})
	if len(ranked) > topAgencyCount {
		ranked = ranked[:topAgencyCount]
	}
	for _, b := range ranked {
		stats.TopAgencies = append(stats.TopAgencies, RankedAgency{
			ID:        b.AgencyID,
			Name:      b.Name,
			Customers: b.Customers,
		})
	}

	return stats
}

// AgencyBalances computes the per-agency reconciliation breakdown in the
// input order of the agency collection. Agencies absent from the collection
// are excluded even when customers or movements reference them; customers
// without a resolvable agency contribute nothing.
func AgencyBalances(agencies []Agency, customers []Customer, orders []Order, movements []Movement) []Balance {
	index := make(map[int64]Agency, len(agencies))
	order := make([]int64, 0, len(agencies))
	for _, a := range agencies {
		if _, seen := index[a.ID]; seen {
			continue
		}
		index[a.ID] = a
		order = append(order, a.ID)
	}

	// Customer attribution: customer id → agency id, only for customers
	// whose agency actually exists.
	customerAgency := make(map[int64]int64, len(customers))
	counts := make(map[int64]int, len(index))
	for _, c := range customers {
		if c.AgencyID == nil {
			continue
		}
		if _, ok := index[*c.AgencyID]; !ok {
			continue
		}
		customerAgency[c.ID] = *c.AgencyID
		counts[*c.AgencyID]++
	}

	// Commission owed: order total × rate/100, attributed through the
	// order's customer.
	owed := make(map[int64]decimal.Decimal, len(index))
	for _, o := range orders {
		agencyID, ok := customerAgency[o.CustomerID]
		if !ok {
			continue
		}
		rate := decimal.Zero
		if r := index[agencyID].CommissionRate; r != nil {
			rate = *r
		}
		if rate.IsZero() || o.TotalAmount.IsZero() {
			continue
		}
		earned := o.TotalAmount.Mul(rate).Div(oneHundred)
		owed[agencyID] = owed[agencyID].Add(earned)
	}

	// Commission paid. The directional convention is preserved exactly as
	// the business runs it: destination+expense credits the settled amount,
	// source+income debits it, every other shape is ignored.
	paid := make(map[int64]decimal.Decimal, len(index))
	for _, m := range movements {
		if m.AgencyID == nil {
			continue
		}
		id := *m.AgencyID
		if _, ok := index[id]; !ok {
			continue
		}
		switch {
		case m.AgencyRole == RoleDestination && m.Direction == DirectionExpense:
			paid[id] = paid[id].Add(m.Amount.Abs())
		case m.AgencyRole == RoleSource && m.Direction == DirectionIncome:
			paid[id] = paid[id].Sub(m.Amount.Abs())
		}
	}

	balances := make([]Balance, 0, len(order))
	for _, id := range order {
		a := index[id]
		b := Balance{
			AgencyID:  id,
			Name:      displayName(a),
			Customers: counts[id],
			Owed:      valueOrZero(owed[id]),
			Paid:      valueOrZero(paid[id]),
		}
		b.Outstanding = b.Owed.Sub(b.Paid)
		if b.Outstanding.IsNegative() {
			b.Outstanding = decimal.Zero
		}
		balances = append(balances, b)
	}

	return balances
}

func displayName(a Agency) string {
	if a.Name != "" {
		return a.Name
	}
	return fmt.Sprintf("Agency #%d", a.ID)
}

// valueOrZero normalizes the zero value of decimal.Decimal so JSON output is
// always "0" rather than an uninitialized internal representation.
func valueOrZero(d decimal.Decimal) decimal.Decimal {
	return d.Add(decimal.Zero)
}
