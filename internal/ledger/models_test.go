package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryStatsKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	cs := NewCategoryStats()
	cs.Set("Shopping", TransactionSetStats{TotalAmount: 1})
	cs.Set("Bills", TransactionSetStats{TotalAmount: 2})
	cs.Set("Convenience", TransactionSetStats{TotalAmount: 3})
	cs.Set("Bills", TransactionSetStats{TotalAmount: 20})

	require.Equal(t, 3, cs.Len())
	require.Equal(t, []string{"Shopping", "Bills", "Convenience"}, cs.Names())

	bills, ok := cs.Get("Bills")
	require.True(t, ok)
	require.Equal(t, 20.0, bills.TotalAmount)

	var seen []string
	for name := range cs.All() {
		seen = append(seen, name)
	}
	require.Equal(t, cs.Names(), seen)
}

func TestCategoryStatsNamesIsACopy(t *testing.T) {
	t.Parallel()

	cs := NewCategoryStats()
	cs.Set("a", TransactionSetStats{})
	names := cs.Names()
	names[0] = "mutated"
	require.Equal(t, []string{"a"}, cs.Names())
}

func TestCategoryStatsNilAndZeroValue(t *testing.T) {
	t.Parallel()

	var nilStats *CategoryStats
	require.Equal(t, 0, nilStats.Len())
	require.Nil(t, nilStats.Names())
	_, ok := nilStats.Get("x")
	require.False(t, ok)
	for range nilStats.All() {
		t.Fatal("nil stats should not yield")
	}

	var zero CategoryStats
	zero.Set("x", TransactionSetStats{})
	require.Equal(t, 1, zero.Len())
}

func TestAllStopsEarly(t *testing.T) {
	t.Parallel()

	cs := NewCategoryStats()
	cs.Set("a", TransactionSetStats{})
	cs.Set("b", TransactionSetStats{})
	n := 0
	for range cs.All() {
		n++
		break
	}
	require.Equal(t, 1, n)
}
