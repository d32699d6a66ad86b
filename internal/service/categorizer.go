package service

import (
	"github.com/jask/txnreport/internal/config"
	"github.com/jask/txnreport/internal/ledger"
)

// Categorizer applies categorization precedence:
//  1. description mappings
//  2. category mappings
//  3. "Other" for anything outside the category list
//  4. the category as-is
type Categorizer struct {
	Rules *config.Rules
}

// NewCategorizer returns a Categorizer for rules.
func NewCategorizer(rules *config.Rules) *Categorizer {
	return &Categorizer{Rules: rules}
}

// Categorize returns the resolved category for tx. It has no side effects.
func (c *Categorizer) Categorize(tx ledger.Transaction) string {
	for _, r := range c.Rules.DescriptionRules {
		if r.Pattern.MatchString(tx.Description) {
			return r.To
		}
	}
	for _, r := range c.Rules.CategoryRules {
		if r.Pattern.MatchString(tx.Category) {
			return r.To
		}
	}
	if !c.Rules.Allowed(tx.Category) {
		return ledger.OtherCategory
	}
	return tx.Category
}
