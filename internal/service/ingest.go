package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/jask/txnreport/internal/ledger"
	"github.com/jask/txnreport/internal/logger"
)

// Statement export column headers. Post Date and Memo are present in the
// export but not used.
const (
	colTransactionDate = "transaction date"
	colDescription     = "description"
	colCategory        = "category"
	colType            = "type"
	colAmount          = "amount"
)

// dateLayout accepts MM/dd/yyyy, with or without leading zeros.
const dateLayout = "1/2/2006"

// decimalAmount is a plain decimal number once thousands separators are gone.
var decimalAmount = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

var requiredColumns = []string{colTransactionDate, colDescription, colCategory, colType, colAmount}

// ErrMissingColumn is returned when the header row lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// ImportFile reads a statement CSV from path.
func ImportFile(ctx context.Context, path string) ([]ledger.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transactions: %w", err)
	}
	defer f.Close()

	txns, err := ImportCSV(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return txns, nil
}

// ImportCSV parses a statement export with a header row. Columns are matched
// by name, case-insensitively. The first malformed row aborts the import.
func ImportCSV(ctx context.Context, r io.Reader) ([]ledger.Transaction, error) {
	log := logger.FromContext(ctx)

	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	header, err := csvr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}

	var out []ledger.Transaction
	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := csvr.FieldPos(0)
		tx, err := parseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d %w", line, err)
		}
		out = append(out, tx)
	}

	log.Debug().Int("rows", len(out)).Msg("rows parsed")
	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		name := strings.ToLower(strings.TrimSpace(h))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

func parseRow(rec []string, cols map[string]int) (ledger.Transaction, error) {
	field := func(name string) (string, error) {
		i := cols[name]
		if i >= len(rec) {
			return "", fmt.Errorf("%s: expected %d columns, got %d", name, i+1, len(rec))
		}
		return strings.TrimSpace(rec[i]), nil
	}

	var vals [5]string
	for i, name := range requiredColumns {
		v, err := field(name)
		if err != nil {
			return ledger.Transaction{}, err
		}
		vals[i] = v
	}

	date, err := parseDate(vals[0])
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("transaction date: %w", err)
	}
	amount, err := parseAmount(vals[4])
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("amount: %w", err)
	}

	return ledger.Transaction{
		Date:        date,
		Description: vals[1],
		Category:    vals[2],
		Type:        vals[3],
		Amount:      amount,
	}, nil
}

func parseDate(s string) (civil.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return civil.Date{}, err
	}
	return civil.DateOf(t), nil
}

func parseAmount(s string) (float64, error) {
	plain := strings.ReplaceAll(s, ",", "")
	if !decimalAmount.MatchString(plain) {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}
	v, err := strconv.ParseFloat(plain, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return v, nil
}
