// Package catalog loads the priced packages and form options shown on the site.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xavierca1/alpha-site/internal/entity"
)

//go:embed pricing.yaml
var defaultCatalog []byte

type Catalog struct {
	PlanList    []entity.PricingCard `yaml:"plans"`
	BudgetList  []entity.BudgetRange `yaml:"budget_ranges"`
	ServiceList []entity.Option      `yaml:"services"`
	Timelines   []entity.Option      `yaml:"timelines"`
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.PlanList))
	for _, p := range c.PlanList {
		if p.ID == "" || p.Title == "" {
			return fmt.Errorf("catalog: plan needs id and title")
		}
		if seen[p.ID] {
			return fmt.Errorf("catalog: duplicate plan %q", p.ID)
		}
		seen[p.ID] = true
		if p.Amount < 0 {
			return fmt.Errorf("catalog: plan %q has negative amount", p.ID)
		}
		if p.Amount == 0 && p.PriceLabel == "" {
			return fmt.Errorf("catalog: plan %q needs amount or price_label", p.ID)
		}
	}
	for _, b := range c.BudgetList {
		if b.Value == "" {
			return fmt.Errorf("catalog: budget range without value")
		}
		if b.Upper > 0 && b.Lower >= b.Upper {
			return fmt.Errorf("catalog: budget range %q has lower >= upper", b.Value)
		}
	}
	return nil
}

func (c *Catalog) Plans() []entity.PricingCard        { return c.PlanList }
func (c *Catalog) BudgetRanges() []entity.BudgetRange { return c.BudgetList }
func (c *Catalog) Services() []entity.Option          { return c.ServiceList }
func (c *Catalog) TimelineOptions() []entity.Option   { return c.Timelines }
