package service

import (
	"github.com/jask/txnreport/internal/ledger"
)

// Sanitize turns raw statement rows into report-ready transactions. Each step
// builds a new slice; txns is never written to.
func Sanitize(c *Categorizer, txns []ledger.Transaction) []ledger.Transaction {
	return categorize(c, negateAmounts(dropPayments(txns)))
}

// dropPayments removes balance payoffs, which are not purchases.
func dropPayments(txns []ledger.Transaction) []ledger.Transaction {
	out := make([]ledger.Transaction, 0, len(txns))
	for _, tx := range txns {
		if tx.Type == ledger.PaymentType {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// negateAmounts flips charges into positive amounts owed.
func negateAmounts(txns []ledger.Transaction) []ledger.Transaction {
	out := make([]ledger.Transaction, len(txns))
	for i, tx := range txns {
		tx.Amount = -tx.Amount
		out[i] = tx
	}
	return out
}

func categorize(c *Categorizer, txns []ledger.Transaction) []ledger.Transaction {
	out := make([]ledger.Transaction, len(txns))
	for i, tx := range txns {
		tx.Category = c.Categorize(tx)
		out[i] = tx
	}
	return out
}
