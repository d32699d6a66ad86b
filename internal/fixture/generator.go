// Package fixture generates reproducible card statement data for tests.
package fixture

import (
	"encoding/csv"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"cloud.google.com/go/civil"

	"github.com/jask/txnreport/internal/ledger"
)

// Header is the column order of a card statement export.
var Header = []string{"Transaction Date", "Post Date", "Description", "Category", "Type", "Amount", "Memo"}

var (
	descriptions = []string{
		"SUPER FRESH", "DUNKIN #339369 Q35", "KEY FOOD MARKET PLACE", "RITE AID 10574",
		"INKDROP", "GITHUB", "HELP.HBOMAX.COM", "AMAZON.COM*XYZ", "7-ELEVEN 33221",
	}
	categories = []string{
		"Groceries", "Food & Drink", "Health & Wellness", "Gas", "Shopping",
		"Bills & Utilities", "Entertainment", "Home", "Gifts & Donations", "Travel",
	}
)

// Transactions returns n raw statement rows generated from seed. The same seed
// always yields the same rows. Sales are negative; payments and returns are
// positive, as they appear in a real export.
func Transactions(seed uint64, n int) []ledger.Transaction {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	start := civil.Date{Year: 2021, Month: 10, Day: 1}

	out := make([]ledger.Transaction, 0, n)
	for range n {
		cents := rng.IntN(20000) + 1
		amount := float64(cents) / 100
		tx := ledger.Transaction{
			Date:        start.AddDays(rng.IntN(45)),
			Description: descriptions[rng.IntN(len(descriptions))],
			Category:    categories[rng.IntN(len(categories))],
			Type:        "Sale",
			Amount:      -amount,
		}
		switch roll := rng.IntN(10); {
		case roll == 0:
			tx.Type = ledger.PaymentType
			tx.Description = "Payment Thank You-Mobile"
			tx.Category = ""
			tx.Amount = amount
		case roll == 1:
			tx.Type = "Return"
			tx.Amount = amount
		}
		out = append(out, tx)
	}
	return out
}

// WriteCSV writes txns as a statement export, header included.
func WriteCSV(w io.Writer, txns []ledger.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, tx := range txns {
		date := formatDate(tx.Date)
		rec := []string{
			date,
			date,
			tx.Description,
			tx.Category,
			tx.Type,
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			"",
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatDate(d civil.Date) string {
	return d.In(time.UTC).Format("01/02/2006")
}
