package config

import (
	"fmt"
	"regexp"
)

// Rule is a compiled Mapping.
type Rule struct {
	Pattern *regexp.Regexp
	To      string
}

// Rules is the compiled form of Config, ready for classification.
type Rules struct {
	DescriptionRules []Rule
	CategoryRules    []Rule

	allowed map[string]struct{}
}

// Compile validates every pattern up front so a bad expression fails the run
// before any transaction is touched.
func (c Config) Compile() (*Rules, error) {
	desc, err := compileMappings("descriptionMappings", c.DescriptionMappings)
	if err != nil {
		return nil, err
	}
	cat, err := compileMappings("categoryMappings", c.CategoryMappings)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]struct{}, len(c.Categories))
	for _, name := range c.Categories {
		allowed[name] = struct{}{}
	}
	return &Rules{DescriptionRules: desc, CategoryRules: cat, allowed: allowed}, nil
}

func compileMappings(list string, mappings []Mapping) ([]Rule, error) {
	out := make([]Rule, 0, len(mappings))
	for i, m := range mappings {
		re, err := regexp.Compile(m.From)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: compile %q: %w", list, i, m.From, err)
		}
		out = append(out, Rule{Pattern: re, To: m.To})
	}
	return out, nil
}

// Allowed reports whether category is in the canonical list.
func (r *Rules) Allowed(category string) bool {
	_, ok := r.allowed[category]
	return ok
}
