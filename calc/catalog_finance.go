package calc

import (
	"github.com/VpkDevs/Tax-Filing-Tool/finance"
)

// addFinanceLibrary registers the multi-step financial models. Structured
// results come back as string-keyed mappings so they serialize to JSON the
// same way scalar results do.
func addFinanceLibrary(c map[string]entry) {
	c["compound_interest"] = ranged(3, 4, func(_ *Evaluator, args []any) (any, error) {
		v, err := toNumberArgs("compound_interest", args)
		if err != nil {
			return nil, err
		}
		compounds := float64(finance.DefaultCompoundsPerYear)
		if len(v) == 4 {
			compounds = v[3]
		}
		return finance.CompoundInterest(v[0], v[1], v[2], compounds)
	})

	c["amortization"] = num3("amortization", finance.AmortizationPayment)

	c["loan_comparison"] = ranged(3, 4, func(_ *Evaluator, args []any) (any, error) {
		principal, err := toNumber("loan_comparison", 0, args[0])
		if err != nil {
			return nil, err
		}
		rates, err := toNumbers("loan_comparison", 1, args[1])
		if err != nil {
			return nil, err
		}
		terms, err := toNumbers("loan_comparison", 2, args[2])
		if err != nil {
			return nil, err
		}
		var fees []float64
		if len(args) == 4 && args[3] != nil {
			fees, err = toNumbers("loan_comparison", 3, args[3])
			if err != nil {
				return nil, err
			}
		}
		options, err := finance.LoanComparison(principal, rates, terms, fees)
		if err != nil {
			return nil, err
		}
		out := make([]any, len(options))
		for i, opt := range options {
			out[i] = map[string]any{
				"monthly_payment": opt.MonthlyPayment,
				"total_cost":      opt.TotalCost,
				"total_interest":  opt.TotalInterest,
			}
		}
		return out, nil
	})

	c["extra_payment_impact"] = ranged(3, 5, func(_ *Evaluator, args []any) (any, error) {
		v, err := toNumberArgs("extra_payment_impact", args)
		if err != nil {
			return nil, err
		}
		extraMonthly, extraYearly := 0.0, 0.0
		if len(v) >= 4 {
			extraMonthly = v[3]
		}
		if len(v) == 5 {
			extraYearly = v[4]
		}
		impact, err := finance.ExtraPaymentImpact(v[0], v[1], v[2], extraMonthly, extraYearly)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"original_term_months": impact.OriginalTermMonths,
			"new_term_months":      impact.NewTermMonths,
			"months_saved":         impact.MonthsSaved,
			"interest_saved":       impact.InterestSaved,
		}, nil
	})

	c["refinance_analysis"] = fixed(6, func(_ *Evaluator, args []any) (any, error) {
		v, err := toNumberArgs("refinance_analysis", args)
		if err != nil {
			return nil, err
		}
		analysis, err := finance.RefinanceAnalysis(v[0], v[1], v[2], v[3], v[4], v[5])
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"monthly_savings":       analysis.MonthlySavings,
			"total_cost_difference": analysis.TotalCostDifference,
			"breakeven_months":      analysis.BreakevenMonths,
			"recommendation":        analysis.Recommendation,
		}, nil
	})

	c["portfolio_return"] = fixed(2, func(_ *Evaluator, args []any) (any, error) {
		investments, err := toNumbers("portfolio_return", 0, args[0])
		if err != nil {
			return nil, err
		}
		returns, err := toNumbers("portfolio_return", 1, args[1])
		if err != nil {
			return nil, err
		}
		return finance.PortfolioReturn(investments, returns)
	})

	c["portfolio_risk"] = ranged(2, 3, func(_ *Evaluator, args []any) (any, error) {
		returns, err := toNumbers("portfolio_risk", 0, args[0])
		if err != nil {
			return nil, err
		}
		weights, err := toNumbers("portfolio_risk", 1, args[1])
		if err != nil {
			return nil, err
		}
		var correlation [][]float64
		if len(args) == 3 && args[2] != nil {
			correlation, err = toMatrix("portfolio_risk", 2, args[2])
			if err != nil {
				return nil, err
			}
		}
		return finance.PortfolioRisk(returns, weights, correlation)
	})

	c["tax_equivalent_yield"] = num2("tax_equivalent_yield", finance.TaxEquivalentYield)

	c["dollar_cost_averaging"] = fixed(3, func(_ *Evaluator, args []any) (any, error) {
		monthly, err := toNumber("dollar_cost_averaging", 0, args[0])
		if err != nil {
			return nil, err
		}
		months, err := toInt("dollar_cost_averaging", 1, args[1])
		if err != nil {
			return nil, err
		}
		expectedReturn, err := toNumber("dollar_cost_averaging", 2, args[2])
		if err != nil {
			return nil, err
		}
		result, err := finance.DollarCostAveraging(monthly, months, expectedReturn)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"lump_sum_result":    result.LumpSumResult,
			"dca_result":         result.DCAResult,
			"difference":         result.Difference,
			"difference_percent": result.DifferencePercent,
		}, nil
	})

	c["retirement_savings_goal"] = fixed(5, func(_ *Evaluator, args []any) (any, error) {
		v, err := toNumberArgs("retirement_savings_goal", args)
		if err != nil {
			return nil, err
		}
		return finance.RetirementSavingsGoal(v[0], v[1], v[2], v[3], v[4])
	})

	c["withdrawal_analysis"] = fixed(5, func(_ *Evaluator, args []any) (any, error) {
		v, err := toNumberArgs("withdrawal_analysis", args)
		if err != nil {
			return nil, err
		}
		years, err := toInt("withdrawal_analysis", 4, args[4])
		if err != nil {
			return nil, err
		}
		result, err := finance.WithdrawalAnalysis(v[0], v[1], v[2], v[3], years)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"success":              result.Success,
			"years_sustained":      float64(result.YearsSustained),
			"funds_remaining":      result.FundsRemaining,
			"safe_withdrawal_rate": result.SafeWithdrawalRate,
		}, nil
	})

	c["dcf_valuation"] = ranged(2, 4, func(_ *Evaluator, args []any) (any, error) {
		cashFlows, err := toNumbers("dcf_valuation", 0, args[0])
		if err != nil {
			return nil, err
		}
		discountRate, err := toNumber("dcf_valuation", 1, args[1])
		if err != nil {
			return nil, err
		}
		terminalGrowth := finance.DefaultTerminalGrowthRate
		terminalYear := finance.DefaultTerminalYear
		if len(args) >= 3 {
			terminalGrowth, err = toNumber("dcf_valuation", 2, args[2])
			if err != nil {
				return nil, err
			}
		}
		if len(args) == 4 {
			terminalYear, err = toInt("dcf_valuation", 3, args[3])
			if err != nil {
				return nil, err
			}
		}
		return finance.DCFValuation(cashFlows, discountRate, terminalGrowth, terminalYear)
	})

	c["comparable_valuation"] = fixed(4, func(_ *Evaluator, args []any) (any, error) {
		revenue, err := toNumber("comparable_valuation", 0, args[0])
		if err != nil {
			return nil, err
		}
		earnings, err := toNumber("comparable_valuation", 1, args[1])
		if err != nil {
			return nil, err
		}
		ebitda, err := toNumber("comparable_valuation", 2, args[2])
		if err != nil {
			return nil, err
		}
		multiples, err := toNumberMap("comparable_valuation", 3, args[3])
		if err != nil {
			return nil, err
		}
		return finance.ComparableValuation(revenue, earnings, ebitda, multiples)
	})

	c["startup_valuation"] = fixed(4, func(_ *Evaluator, args []any) (any, error) {
		v, err := toNumberArgs("startup_valuation", args)
		if err != nil {
			return nil, err
		}
		result, err := finance.StartupValuation(v[0], v[1], v[2], v[3])
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"valuation":         result.Valuation,
			"monthly_revenue":   result.MonthlyRevenue,
			"annual_revenue":    result.AnnualRevenue,
			"runway_months":     result.RunwayMonths,
			"adjusted_multiple": result.AdjustedMultiple,
		}, nil
	})

	c["monte_carlo_simulation"] = ranged(4, 5, func(ev *Evaluator, args []any) (any, error) {
		initial, err := toNumber("monte_carlo_simulation", 0, args[0])
		if err != nil {
			return nil, err
		}
		years, err := toInt("monte_carlo_simulation", 1, args[1])
		if err != nil {
			return nil, err
		}
		expectedReturn, err := toNumber("monte_carlo_simulation", 2, args[2])
		if err != nil {
			return nil, err
		}
		volatility, err := toNumber("monte_carlo_simulation", 3, args[3])
		if err != nil {
			return nil, err
		}
		simulations := finance.DefaultSimulations
		if len(args) == 5 {
			simulations, err = toInt("monte_carlo_simulation", 4, args[4])
			if err != nil {
				return nil, err
			}
		}
		result, err := finance.MonteCarloSimulation(ev.rng, initial, years, expectedReturn, volatility, simulations)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"mean":          result.Mean,
			"median":        result.Median,
			"percentile_10": result.Percentile10,
			"percentile_90": result.Percentile90,
			"min":           result.Min,
			"max":           result.Max,
		}, nil
	})

	// brackets come in as [[rate, thresholdOrNone], ...]; the final bracket
	// carries None and absorbs remaining income.
	c["tax_bracket_optimization"] = fixed(3, func(_ *Evaluator, args []any) (any, error) {
		income, err := toNumber("tax_bracket_optimization", 0, args[0])
		if err != nil {
			return nil, err
		}
		deductions, err := toNumber("tax_bracket_optimization", 1, args[1])
		if err != nil {
			return nil, err
		}
		rawBrackets, ok := args[2].([]any)
		if !ok {
			return nil, errGeneral("tax_bracket_optimization() argument 3 must be a list of [rate, threshold] pairs")
		}
		brackets := make([]finance.TaxBracket, 0, len(rawBrackets))
		for _, raw := range rawBrackets {
			pair, ok := raw.([]any)
			if !ok || len(pair) != 2 {
				return nil, errGeneral("tax_bracket_optimization() argument 3 must be a list of [rate, threshold] pairs")
			}
			rate, ok := pair[0].(float64)
			if !ok {
				return nil, errGeneral("tax_bracket_optimization() bracket rates must be numbers")
			}
			bracket := finance.TaxBracket{Rate: rate}
			if pair[1] != nil {
				threshold, ok := pair[1].(float64)
				if !ok {
					return nil, errGeneral("tax_bracket_optimization() bracket thresholds must be numbers or None")
				}
				bracket.Threshold = &threshold
			}
			brackets = append(brackets, bracket)
		}
		result, err := finance.TaxBracketOptimization(income, deductions, brackets)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"income":           result.Income,
			"taxable_income":   result.TaxableIncome,
			"tax_amount":       result.TaxAmount,
			"effective_rate":   result.EffectiveRate,
			"after_tax_income": result.AfterTaxIncome,
		}, nil
	})

	c["capital_gains_harvesting"] = fixed(5, func(_ *Evaluator, args []any) (any, error) {
		raw, ok := args[0].(map[string]any)
		if !ok {
			return nil, errGeneral("capital_gains_harvesting() argument 1 must be a portfolio dict")
		}
		portfolio := finance.Portfolio{}
		fields := []struct {
			key string
			dst *float64
		}{
			{"unrealized_gains", &portfolio.UnrealizedGains},
			{"total_value", &portfolio.TotalValue},
			{"cost_basis", &portfolio.CostBasis},
		}
		for _, field := range fields {
			f, ok := raw[field.key].(float64)
			if !ok {
				return nil, errGeneral("capital_gains_harvesting() portfolio requires numeric '%s'", field.key)
			}
			*field.dst = f
		}
		rest, err := toNumberArgs("capital_gains_harvesting", args[1:])
		if err != nil {
			return nil, err
		}
		result, err := finance.CapitalGainsHarvesting(portfolio, rest[0], rest[1], rest[2], rest[3])
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"sell_now_future_value":       result.SellNowFutureValue,
			"hold_future_value_after_tax": result.HoldFutureValueAfterTax,
			"difference":                  result.Difference,
			"recommendation":              result.Recommendation,
		}, nil
	})
}
