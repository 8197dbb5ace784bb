package reports

// NormalizeFounders rescales raw founder percentages so they sum to 100.
// When the raw sum is zero every normalised percentage is zero; there is no
// division by zero.
func NormalizeFounders(founders []FounderShare) []FounderAllocation {
	var sum float64
	for _, f := range founders {
		sum += f.Percentage
	}
	allocations := make([]FounderAllocation, 0, len(founders))
	for _, f := range founders {
		var pct float64
		if sum != 0 {
			pct = f.Percentage / sum * 100
		}
		allocations = append(allocations, FounderAllocation{
			ID:         f.ID,
			Name:       f.Name,
			Percentage: pct,
		})
	}
	return allocations
}

// Distribute splits a net profit into the business and founder pools and
// allocates the founder pool across normalised founder shares. Losses and
// break-even periods are not distributed: the result is nil when netProfit
// is zero or negative.
func Distribute(netProfit float64, cfg DistributionConfig, founders []FounderShare) *Distribution {
	if netProfit <= 0 {
		return nil
	}
	businessAmount := netProfit * cfg.BusinessPercentage / 100
	founderAmount := netProfit * cfg.FounderPercentage / 100

	allocations := NormalizeFounders(founders)
	for i := range allocations {
		allocations[i].Amount = founderAmount * allocations[i].Percentage / 100
	}

	return &Distribution{
		NetProfit:                 netProfit,
		BusinessAmount:            businessAmount,
		FounderAmount:             founderAmount,
		BusinessSavingsAmount:     businessAmount * cfg.BusinessSavingsPercentage / 100,
		BusinessOperationalAmount: businessAmount * cfg.BusinessOperationalPercentage / 100,
		Founders:                  allocations,
	}
}
