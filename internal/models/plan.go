package models

// Plan is a subscription tier from the catalog. Price is in cents; the
// PriceID is the Stripe-side price the checkout session is created
// against.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	PriceID     string   `json:"-"`
	Features    []string `json:"features"`
}

// PlanCatalog holds the immutable plan set, built once at startup.
type PlanCatalog struct {
	plans map[string]Plan
	order []string
}

func NewPlanCatalog(starterPriceID, proPriceID string) *PlanCatalog {
	plans := []Plan{
		{
			ID:          "starter",
			Name:        "Starter Plan",
			Description: "Perfect for small teams getting started",
			Price:       2900,
			PriceID:     starterPriceID,
			Features: []string{
				"Up to 1,000 tasks per month",
				"5 active workflows",
				"Email support",
				"Community access",
				"Mobile app access",
			},
		},
		{
			ID:          "pro",
			Name:        "Pro Plan",
			Description: "Maximum power for demanding organizations",
			Price:       7900,
			PriceID:     proPriceID,
			Features: []string{
				"Up to 100,000 tasks per month",
				"Unlimited everything",
				"Premium integrations",
				"24/7 priority support",
				"Dedicated account manager",
				"Custom API limits",
				"Advanced security",
				"SLA guarantee",
				"White-label options",
			},
		},
	}

	catalog := &PlanCatalog{plans: make(map[string]Plan, len(plans))}
	for _, p := range plans {
		catalog.plans[p.ID] = p
		catalog.order = append(catalog.order, p.ID)
	}
	return catalog
}

func (c *PlanCatalog) Get(id string) (Plan, bool) {
	plan, ok := c.plans[id]
	return plan, ok
}

// All returns plans in catalog order.
func (c *PlanCatalog) All() []Plan {
	out := make([]Plan, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.plans[id])
	}
	return out
}
