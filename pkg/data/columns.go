package data

import (
	"errors"
	"fmt"
)

// Columns names the source columns each Record field is read from.
type Columns struct {
	Age      string `yaml:"age"`
	Sex      string `yaml:"sex"`
	BMI      string `yaml:"bmi"`
	Children string `yaml:"children"`
	Smoker   string `yaml:"smoker"`
	Region   string `yaml:"region"`
	Charges  string `yaml:"charges"`
}

// DefaultColumns returns the column names of the standard insurance dataset.
func DefaultColumns() Columns {
	return Columns{
		Age:      "age",
		Sex:      "sex",
		BMI:      "bmi",
		Children: "children",
		Smoker:   "smoker",
		Region:   "region",
		Charges:  "charges",
	}
}

// Required lists the configured column names in canonical order.
func (c Columns) Required() []string {
	return []string{c.Age, c.Sex, c.BMI, c.Children, c.Smoker, c.Region, c.Charges}
}

// WithDefaults fills empty names from DefaultColumns.
func (c Columns) WithDefaults() Columns {
	d := DefaultColumns()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&c.Age, d.Age)
	fill(&c.Sex, d.Sex)
	fill(&c.BMI, d.BMI)
	fill(&c.Children, d.Children)
	fill(&c.Smoker, d.Smoker)
	fill(&c.Region, d.Region)
	fill(&c.Charges, d.Charges)
	return c
}

// Validate rejects empty or repeated column names.
func (c Columns) Validate() error {
	seen := make(map[string]bool, 7)
	for _, name := range c.Required() {
		if name == "" {
			return errors.New("column name must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("column %q mapped more than once", name)
		}
		if name == SmokerFlagColumn || name == LogChargesColumn {
			return fmt.Errorf("column %q collides with a derived column", name)
		}
		seen[name] = true
	}
	return nil
}
