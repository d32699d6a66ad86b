package config

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/txnreport/internal/ledger"
)

// Warning is a non-fatal problem found in a Config.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// Lint reports likely mistakes: mapping targets outside the category list,
// duplicate categories and empty patterns. It never rejects a config;
// Compile does that for patterns that cannot be used at all.
func Lint(c Config) []Warning {
	var out []Warning

	seen := make(map[string]struct{}, len(c.Categories))
	for i, name := range c.Categories {
		if _, dup := seen[name]; dup {
			out = append(out, Warning{
				Field:   fmt.Sprintf("categories[%d]", i),
				Message: fmt.Sprintf("%q is listed more than once", name),
			})
			continue
		}
		seen[name] = struct{}{}
	}

	lintMappings := func(list string, mappings []Mapping) {
		for i, m := range mappings {
			field := fmt.Sprintf("%s[%d]", list, i)
			if m.From == "" {
				out = append(out, Warning{Field: field + ".from", Message: "empty pattern matches every transaction"})
			}
			if len(c.Categories) == 0 || m.To == ledger.OtherCategory {
				continue
			}
			if _, ok := seen[m.To]; ok {
				continue
			}
			msg := fmt.Sprintf("%q is not a listed category", m.To)
			if s := closest(m.To, c.Categories); s != "" {
				msg += fmt.Sprintf("; did you mean %q?", s)
			}
			out = append(out, Warning{Field: field + ".to", Message: msg})
		}
	}
	lintMappings("descriptionMappings", c.DescriptionMappings)
	lintMappings("categoryMappings", c.CategoryMappings)

	return out
}

// closest returns the candidate nearest to name by edit distance, or "" when
// nothing is near enough to be a plausible typo.
func closest(name string, candidates []string) string {
	best, bestDist := "", -1
	target := strings.ToLower(name)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(target, strings.ToLower(c))
		if bestDist == -1 || d < bestDist {
			best, bestDist = c, d
		}
	}
	limit := max(2, len(name)/3)
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}
