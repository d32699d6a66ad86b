package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Mapping rewrites a category. From is a regular expression matched against
// the original category or the description, depending on the list it is in.
type Mapping struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

// Config holds the categorization rules. Order within each mapping list is
// significant: the first match wins.
type Config struct {
	Categories          []string  `mapstructure:"categories"`
	CategoryMappings    []Mapping `mapstructure:"categoryMappings"`
	DescriptionMappings []Mapping `mapstructure:"descriptionMappings"`
}

// Default returns the built-in rule set used when no config file is given.
func Default() Config {
	return Config{
		Categories: []string{"Convenience", "Shopping", "Bills", "Restaurant", "Donations"},
		CategoryMappings: []Mapping{
			{From: `^Health & Wellness$`, To: "Convenience"},
			{From: `^Gas$`, To: "Convenience"},
			{From: `^Bills & Utilities$`, To: "Bills"},
			{From: `^Food & Drink$`, To: "Restaurant"},
			{From: `^Entertainment$`, To: "Shopping"},
			{From: `^Gifts & Donations$`, To: "Donations"},
			{From: `^Home$`, To: "Shopping"},
		},
		// subscriptions that do not always arrive as Bills & Utilities
		DescriptionMappings: []Mapping{
			{From: `^INKDROP$`, To: "Bills"},
			{From: `^HELP\.HBOMAX\.COM$`, To: "Bills"},
			{From: `^GITHUB$`, To: "Bills"},
		},
	}
}

// Load reads the YAML rules file at path. An empty path yields Default().
// Absent keys are left empty.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	return c, nil
}
