package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/txnreport/internal/config"
	"github.com/jask/txnreport/internal/ledger"
)

func TestCategorizePrecedence(t *testing.T) {
	t.Parallel()

	rules, err := config.Config{
		Categories: []string{"Bills", "Convenience", "Groceries"},
		CategoryMappings: []config.Mapping{
			{From: "^Gas$", To: "Convenience"},
			{From: "Food", To: "Restaurant"},
			{From: "Food & Drink", To: "Never"},
		},
		DescriptionMappings: []config.Mapping{
			{From: "^GITHUB", To: "Bills"},
			{From: "GIT", To: "Never"},
		},
	}.Compile()
	require.NoError(t, err)
	c := NewCategorizer(rules)

	tests := []struct {
		name        string
		description string
		category    string
		want        string
	}{
		{"description mapping beats category mapping", "GITHUB INC", "Gas", "Bills"},
		{"category mapping", "SHELL OIL", "Gas", "Convenience"},
		{"first category mapping wins", "CAFE", "Food & Drink", "Restaurant"},
		{"mapping target need not be listed", "CAFE", "Fast Food", "Restaurant"},
		{"listed category is kept", "KEY FOOD", "Groceries", "Groceries"},
		{"unlisted category falls back", "HOTEL", "Travel", ledger.OtherCategory},
		{"empty category falls back", "HOTEL", "", ledger.OtherCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tx := newTxn().description(tt.description).category(tt.category).raw()
			require.Equal(t, tt.want, c.Categorize(tx))
		})
	}
}

func TestCategorizeWithEmptyConfig(t *testing.T) {
	t.Parallel()

	rules, err := config.Config{}.Compile()
	require.NoError(t, err)
	c := NewCategorizer(rules)

	require.Equal(t, ledger.OtherCategory, c.Categorize(newTxn().category("Bills").raw()))
}

func TestCategorizeDefaultRules(t *testing.T) {
	t.Parallel()

	c := defaultCategorizer(t)
	for _, m := range config.Default().CategoryMappings {
		from := m.From[1 : len(m.From)-1]
		require.Equal(t, m.To, c.Categorize(newTxn().category(from).raw()), from)
	}
	for _, desc := range []string{"INKDROP", "HELP.HBOMAX.COM", "GITHUB"} {
		require.Equal(t, "Bills", c.Categorize(newTxn().description(desc).category("Shopping").raw()), desc)
	}
	require.Equal(t, ledger.OtherCategory, c.Categorize(newTxn().category("Gasoline").raw()))
}
