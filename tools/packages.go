package tools

import (
	"context"
	"fmt"
	"strings"

	"wayfarer/errors"
)

// PackageRecommendationTool compares up to three flight+hotel bundles
// against a budget and picks the best value. Pure heuristic, no
// external calls.
type PackageRecommendationTool struct{}

func (PackageRecommendationTool) Name() string { return "recommend_best_package" }

func (PackageRecommendationTool) Description() string {
	return "Compare flight+hotel package totals against the traveller's budget and recommend the best value option. Provide option totals as option1_total, option2_total, option3_total."
}

func (PackageRecommendationTool) Schema() Schema {
	return Schema{
		"budget":        {Type: TypeNumber, Description: "Total budget in USD", Required: true},
		"option1_total": {Type: TypeNumber, Description: "Total cost of option 1 in USD", Required: true},
		"option1_label": {Type: TypeString, Description: "Short label for option 1", Required: false},
		"option2_total": {Type: TypeNumber, Description: "Total cost of option 2 in USD", Required: false},
		"option2_label": {Type: TypeString, Description: "Short label for option 2", Required: false},
		"option3_total": {Type: TypeNumber, Description: "Total cost of option 3 in USD", Required: false},
		"option3_label": {Type: TypeString, Description: "Short label for option 3", Required: false},
	}
}

func (PackageRecommendationTool) Execute(_ context.Context, args map[string]interface{}) (string, error) {
	budget := floatArg(args, "budget", -1)
	if budget < 0 {
		return "", errors.New("budget is required")
	}

	type option struct {
		label string
		total float64
	}
	var options []option
	for i := 1; i <= 3; i++ {
		total := floatArg(args, fmt.Sprintf("option%d_total", i), -1)
		if total < 0 {
			continue
		}
		label := stringArg(args, fmt.Sprintf("option%d_label", i), fmt.Sprintf("Option %d", i))
		options = append(options, option{label: label, total: total})
	}
	if len(options) == 0 {
		return "", errors.New("at least option1_total is required")
	}

	// Best value: the most expensive option that still fits the budget,
	// otherwise the cheapest overall.
	best := -1
	for i, o := range options {
		if o.total > budget {
			continue
		}
		if best == -1 || o.total > options[best].total {
			best = i
		}
	}
	overBudget := best == -1
	if overBudget {
		for i, o := range options {
			if best == -1 || o.total < options[best].total {
				best = i
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Budget: $%.2f\n", budget)
	for _, o := range options {
		marker := "within budget"
		if o.total > budget {
			marker = fmt.Sprintf("$%.2f over budget", o.total-budget)
		}
		fmt.Fprintf(&b, "- %s: $%.2f (%s)\n", o.label, o.total, marker)
	}
	if overBudget {
		fmt.Fprintf(&b, "All options exceed the budget; the cheapest is %s at $%.2f, $%.2f over.",
			options[best].label, options[best].total, options[best].total-budget)
	} else {
		fmt.Fprintf(&b, "Recommended: %s at $%.2f, leaving $%.2f of the budget.",
			options[best].label, options[best].total, budget-options[best].total)
	}
	return b.String(), nil
}
