package finance

import "fmt"

// MilestoneSummary buckets milestone amounts by status in the contract's
// native currency.
type MilestoneSummary struct {
	Paid     float64 `json:"paid"`
	InReview float64 `json:"inReview"`
	Pending  float64 `json:"pending"`
	Total    float64 `json:"total"`
}

// SummarizeMilestones classifies each milestone and sums amounts per
// bucket. Hourly contracts carry no milestones, so an empty slice yields
// an all-zero summary. Negative and missing amounts count as zero and
// are flagged.
func SummarizeMilestones(milestones []MilestoneRecord) (MilestoneSummary, []Warning) {
	var summary MilestoneSummary
	var warnings []Warning

	for _, m := range milestones {
		amount := m.Amount
		if amount < 0 {
			warnings = append(warnings, dataQuality(m.ID,
				fmt.Sprintf("milestone %q has negative amount %.2f, treated as 0", m.Title, m.Amount)))
			amount = 0
		} else if amount == 0 {
			warnings = append(warnings, dataQuality(m.ID,
				fmt.Sprintf("milestone %q has no amount", m.Title)))
		}

		switch m.Status {
		case MilestoneCompleted:
			summary.Paid += amount
		case MilestoneInReview:
			summary.InReview += amount
		case MilestoneActive, MilestonePending:
			summary.Pending += amount
		default:
			warnings = append(warnings, dataQuality(m.ID,
				fmt.Sprintf("milestone %q has unknown status %q, treated as pending", m.Title, m.Status)))
			summary.Pending += amount
		}
		summary.Total += amount
	}

	return summary, warnings
}
