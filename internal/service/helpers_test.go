package service

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"

	"github.com/jask/txnreport/internal/config"
	"github.com/jask/txnreport/internal/ledger"
)

var defaultDate = civil.Date{Year: 2021, Month: 10, Day: 27}

// txnBuilder builds raw transactions with sensible defaults. Raw amounts are
// negative because a charge is money owed.
type txnBuilder struct {
	tx ledger.Transaction
}

func newTxn() *txnBuilder {
	return &txnBuilder{tx: ledger.Transaction{
		Date:        defaultDate,
		Description: "default description",
		Category:    "Shopping",
		Type:        "Sale",
		Amount:      -1,
	}}
}

func (b *txnBuilder) description(d string) *txnBuilder { b.tx.Description = d; return b }
func (b *txnBuilder) category(c string) *txnBuilder    { b.tx.Category = c; return b }
func (b *txnBuilder) typ(t string) *txnBuilder         { b.tx.Type = t; return b }
func (b *txnBuilder) amount(a float64) *txnBuilder     { b.tx.Amount = a; return b }

func (b *txnBuilder) raw() ledger.Transaction { return b.tx }

// sanitized returns the transaction as Sanitize would emit it, minus any
// category change.
func (b *txnBuilder) sanitized() ledger.Transaction {
	tx := b.tx
	if tx.Amount < 0 {
		tx.Amount = -tx.Amount
	}
	return tx
}

func defaultCategorizer(t *testing.T) *Categorizer {
	t.Helper()
	rules, err := config.Default().Compile()
	require.NoError(t, err)
	return NewCategorizer(rules)
}
