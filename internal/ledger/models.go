// Package ledger holds the transaction and statistics shapes shared by the
// ingest, aggregation and report stages.
package ledger

import (
	"iter"

	"cloud.google.com/go/civil"
)

// PaymentType marks balance payoffs, which are not purchases.
const PaymentType = "Payment"

// OtherCategory is the fallback for categories outside the allow-list.
const OtherCategory = "Other"

// Transaction is one row of a card statement. Raw amounts are negative for
// charges; sanitized amounts are the money owed.
type Transaction struct {
	Date        civil.Date
	Description string
	Category    string
	Type        string
	Amount      float64
}

// TransactionSetStats summarizes a set of transactions. Transactions is
// sorted by amount, largest first.
type TransactionSetStats struct {
	MaxTxn        Transaction
	TotalAmount   float64
	AverageAmount float64
	Transactions  []Transaction
}

// Count returns the number of transactions in the set.
func (s TransactionSetStats) Count() int {
	return len(s.Transactions)
}

// CategoryStats maps category names to their stats, keeping the order in
// which categories were added.
type CategoryStats struct {
	names  []string
	byName map[string]TransactionSetStats
}

// NewCategoryStats returns an empty CategoryStats.
func NewCategoryStats() *CategoryStats {
	return &CategoryStats{byName: make(map[string]TransactionSetStats)}
}

// Set stores stats for name. A new name is appended; an existing one keeps
// its position.
func (c *CategoryStats) Set(name string, stats TransactionSetStats) {
	if c.byName == nil {
		c.byName = make(map[string]TransactionSetStats)
	}
	if _, ok := c.byName[name]; !ok {
		c.names = append(c.names, name)
	}
	c.byName[name] = stats
}

// Get returns the stats for name.
func (c *CategoryStats) Get(name string) (TransactionSetStats, bool) {
	if c == nil {
		return TransactionSetStats{}, false
	}
	s, ok := c.byName[name]
	return s, ok
}

// Len returns the number of categories.
func (c *CategoryStats) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Names returns the category names in insertion order.
func (c *CategoryStats) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// All iterates categories in insertion order.
func (c *CategoryStats) All() iter.Seq2[string, TransactionSetStats] {
	return func(yield func(string, TransactionSetStats) bool) {
		if c == nil {
			return
		}
		for _, name := range c.names {
			if !yield(name, c.byName[name]) {
				return
			}
		}
	}
}
