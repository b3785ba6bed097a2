package calc

import (
	"math"

	"github.com/VpkDevs/Tax-Filing-Tool/finance"
)

// addBusinessFormulas registers the single-formula business entries:
// interest shortcuts, investment ratios, pricing, depreciation, project
// metrics, cash-flow analysis, and currency helpers.
func addBusinessFormulas(c map[string]entry) {
	c["simple_interest"] = num3("simple_interest", func(p, r, t float64) (float64, error) {
		return p * (1 + r*t), nil
	})
	c["roi"] = num2("roi", func(gain, cost float64) (float64, error) {
		ratio, err := safeDiv(gain-cost, cost)
		if err != nil {
			return 0, err
		}
		return ratio * 100, nil
	})
	c["payback_period"] = num2("payback_period", func(cost, annualCashflow float64) (float64, error) {
		return safeDiv(cost, annualCashflow)
	})
	c["break_even"] = num3("break_even", func(fixedCosts, price, variableCost float64) (float64, error) {
		return safeDiv(fixedCosts, price-variableCost)
	})

	c["markup"] = num2("markup", func(cost, percentage float64) (float64, error) {
		return cost * (1 + percentage/100), nil
	})
	c["margin"] = num2("margin", func(price, cost float64) (float64, error) {
		ratio, err := safeDiv(price-cost, price)
		if err != nil {
			return 0, err
		}
		return ratio * 100, nil
	})
	c["discount"] = num2("discount", func(price, percentage float64) (float64, error) {
		return price * (1 - percentage/100), nil
	})

	// mortgage takes the rate as a percentage, unlike amortization.
	c["mortgage"] = num3("mortgage", func(principal, rate, years float64) (float64, error) {
		return finance.AmortizationPayment(principal, rate/100, years)
	})
	c["rent_ratio"] = num2("rent_ratio", func(price, monthlyRent float64) (float64, error) {
		return safeDiv(price, monthlyRent*12)
	})
	c["cap_rate"] = num2("cap_rate", func(noi, propertyValue float64) (float64, error) {
		ratio, err := safeDiv(noi, propertyValue)
		if err != nil {
			return 0, err
		}
		return ratio * 100, nil
	})

	c["after_tax"] = num2("after_tax", func(amount, taxRate float64) (float64, error) {
		return amount * (1 - taxRate/100), nil
	})
	c["sales_tax"] = num2("sales_tax", func(amount, taxRate float64) (float64, error) {
		return amount * (1 + taxRate/100), nil
	})

	// effective_tax takes [[amount, rate], ...] pairs.
	c["effective_tax"] = fixed(1, func(_ *Evaluator, args []any) (any, error) {
		pairs, err := toMatrix("effective_tax", 0, args[0])
		if err != nil {
			return nil, err
		}
		var weighted, total float64
		for _, pair := range pairs {
			if len(pair) != 2 {
				return nil, errGeneral("effective_tax() argument 1 must be a list of [amount, rate] pairs")
			}
			weighted += pair[0] * pair[1]
			total += pair[0]
		}
		return safeDiv(weighted, total)
	})

	c["straight_line"] = num3("straight_line", func(cost, salvage, life float64) (float64, error) {
		return safeDiv(cost-salvage, life)
	})
	c["declining_balance"] = num3("declining_balance", func(cost, rate, life float64) (float64, error) {
		return cost * (rate / 100) * math.Pow(1-rate/100, life-1), nil
	})

	c["earned_value"] = num3("earned_value", func(planned, actual, completed float64) (float64, error) {
		return (completed/100)*planned - actual, nil
	})
	c["cost_variance"] = num2("cost_variance", func(earned, actual float64) (float64, error) {
		return earned - actual, nil
	})
	c["schedule_variance"] = num2("schedule_variance", func(earned, planned float64) (float64, error) {
		return earned - planned, nil
	})

	// npv discounts cash flows at (1+rate)^i with i starting at 0.
	c["npv"] = fixed(2, func(_ *Evaluator, args []any) (any, error) {
		cashFlows, err := toNumbers("npv", 0, args[0])
		if err != nil {
			return nil, err
		}
		rate, err := toNumber("npv", 1, args[1])
		if err != nil {
			return nil, err
		}
		if rate <= -1 {
			return nil, errValidation("npv rate must be greater than -1")
		}
		npv := 0.0
		for i, cf := range cashFlows {
			npv += cf / math.Pow(1+rate, float64(i))
		}
		return npv, nil
	})
	c["irr"] = fixed(1, func(_ *Evaluator, args []any) (any, error) {
		cashFlows, err := toNumbers("irr", 0, args[0])
		if err != nil {
			return nil, err
		}
		return irr(cashFlows)
	})
	c["payback"] = fixed(1, func(_ *Evaluator, args []any) (any, error) {
		cashFlows, err := toNumbers("payback", 0, args[0])
		if err != nil {
			return nil, err
		}
		idx, err := paybackIndex(cashFlows)
		if err != nil {
			return nil, err
		}
		return float64(idx), nil
	})

	c["total_cost"] = num3("total_cost", func(fixedCost, variable, units float64) (float64, error) {
		return fixedCost + variable*units, nil
	})
	c["unit_cost"] = num2("unit_cost", func(totalCost, units float64) (float64, error) {
		return safeDiv(totalCost, units)
	})
	c["overhead_rate"] = num2("overhead_rate", func(overhead, directLabor float64) (float64, error) {
		return safeDiv(overhead, directLabor)
	})

	c["cost_plus"] = num2("cost_plus", func(cost, markup float64) (float64, error) {
		return cost * (1 + markup/100), nil
	})
	c["target_price"] = num2("target_price", func(targetProfit, cost float64) (float64, error) {
		return safeDiv(cost, 1-targetProfit/100)
	})
	c["elasticity"] = num4("elasticity", func(deltaDemand, deltaPrice, p1, q1 float64) (float64, error) {
		demandRatio, err := safeDiv(deltaDemand, q1)
		if err != nil {
			return 0, err
		}
		priceRatio, err := safeDiv(deltaPrice, p1)
		if err != nil {
			return 0, err
		}
		return safeDiv(demandRatio, priceRatio)
	})

	c["exchange"] = num2("exchange", func(amount, rate float64) (float64, error) {
		return amount * rate, nil
	})
	c["cross_rate"] = num2("cross_rate", func(rate1, rate2 float64) (float64, error) {
		return safeDiv(rate1, rate2)
	})
	c["forward_rate"] = num3("forward_rate", func(spot, interestDiff, time float64) (float64, error) {
		return spot * (1 + interestDiff*time), nil
	})
}
