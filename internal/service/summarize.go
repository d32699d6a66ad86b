package service

import (
	"cmp"
	"errors"
	"slices"

	"github.com/jask/txnreport/internal/ledger"
)

// ErrNoTransactions is returned when there is nothing to summarize.
var ErrNoTransactions = errors.New("no transactions to summarize")

// Summarize computes stats over txns as a whole and per category. Categories
// appear in the order they are first seen in the amount-sorted list.
func Summarize(txns []ledger.Transaction) (ledger.TransactionSetStats, *ledger.CategoryStats, error) {
	stats, err := summarizeSet(txns)
	if err != nil {
		return ledger.TransactionSetStats{}, nil, err
	}

	var order []string
	groups := make(map[string][]ledger.Transaction)
	for _, tx := range stats.Transactions {
		if _, ok := groups[tx.Category]; !ok {
			order = append(order, tx.Category)
		}
		groups[tx.Category] = append(groups[tx.Category], tx)
	}

	perCategory := ledger.NewCategoryStats()
	for _, name := range order {
		s, err := summarizeSet(groups[name])
		if err != nil {
			return ledger.TransactionSetStats{}, nil, err
		}
		perCategory.Set(name, s)
	}
	return stats, perCategory, nil
}

func summarizeSet(txns []ledger.Transaction) (ledger.TransactionSetStats, error) {
	if len(txns) == 0 {
		return ledger.TransactionSetStats{}, ErrNoTransactions
	}

	sorted := slices.Clone(txns)
	slices.SortStableFunc(sorted, func(a, b ledger.Transaction) int {
		return cmp.Compare(b.Amount, a.Amount)
	})

	var total float64
	for _, tx := range sorted {
		total += tx.Amount
	}

	return ledger.TransactionSetStats{
		MaxTxn:        sorted[0],
		TotalAmount:   total,
		AverageAmount: total / float64(len(sorted)),
		Transactions:  sorted,
	}, nil
}
