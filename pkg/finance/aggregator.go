package finance

import (
	"fmt"
	"math"
)

// Breakdown is the paid / in-review / pending / escrowed view every
// dashboard card renders. All amounts are in the contract's currency;
// TotalAmount comes from the contract terms.
type Breakdown struct {
	AmountPaid     float64 `json:"amountPaid"`
	AmountInReview float64 `json:"amountInReview"`
	AmountPending  float64 `json:"amountPending"`
	AmountEscrowed float64 `json:"amountEscrowed"`
	TotalAmount    float64 `json:"totalAmount"`
}

// Rollup is the multi-contract summary for dashboard header cards,
// expressed in a single reporting currency.
type Rollup struct {
	TotalEarned        float64 `json:"totalEarned"`
	TotalEscrowed      float64 `json:"totalEscrowed"`
	TotalPending       float64 `json:"totalPending"`
	UnreconciledCount  int     `json:"unreconciledCount,omitempty"`
	UnreconciledAmount float64 `json:"unreconciledAmount,omitempty"`
}

// Breakdown merges the milestone and payment ledgers for one contract.
// Payments for other contracts in the input are ignored. Pending is a
// residual, never an independent bucket, so the figures reconcile with
// the contracted total: with payment records present it is
// max(0, total - paidFromPayments - escrowed); before any payment exists
// the milestone ledger is the only signal and the residual is
// max(0, total - milestonePaid - milestoneInReview).
func (a *Aggregator) Breakdown(contract ContractRecord, payments []PaymentRecord) (Breakdown, []Warning) {
	msSum, warnings := SummarizeMilestones(contract.Milestones)

	total := contract.TotalAmount
	if total < 0 {
		warnings = append(warnings, dataQuality(contract.ContractID,
			fmt.Sprintf("contract %s has negative total amount %.2f, treated as 0", contract.ContractID, contract.TotalAmount)))
		total = 0
	}
	if contract.PaymentType == PaymentTypeFixed && len(contract.Milestones) > 0 &&
		math.Abs(msSum.Total-total) > 0.01 {
		warnings = append(warnings, dataQuality(contract.ContractID,
			fmt.Sprintf("milestone amounts sum to %.2f but contract total is %.2f", msSum.Total, total)))
	}

	own := payments[:0:0]
	for _, p := range payments {
		if p.ContractID == contract.ContractID {
			own = append(own, p)
		}
	}
	paySum, payWarnings := a.paymentBuckets(own, contract.Currency)
	warnings = append(warnings, payWarnings...)

	b := Breakdown{
		AmountPaid:     msSum.Paid,
		AmountInReview: msSum.InReview,
		AmountEscrowed: paySum.Escrowed,
		TotalAmount:    total,
	}
	// Hourly contracts carry no milestones, so paid can only come from
	// the payment ledger.
	if len(contract.Milestones) == 0 {
		b.AmountPaid = paySum.Paid
		b.AmountInReview = 0
	}

	if len(own) > 0 {
		b.AmountPending = math.Max(0, total-paySum.Paid-paySum.Escrowed)
	} else {
		b.AmountPending = math.Max(0, total-b.AmountPaid-b.AmountInReview)
	}

	b.AmountPaid = Round2(b.AmountPaid)
	b.AmountInReview = Round2(b.AmountInReview)
	b.AmountPending = Round2(b.AmountPending)
	b.AmountEscrowed = Round2(b.AmountEscrowed)
	b.TotalAmount = Round2(b.TotalAmount)
	return b, warnings
}

// PortfolioRollup sums earned, escrowed, and pending across many
// contracts after converting everything to reportingCurrency. Payments
// referencing a contract absent from the input contribute zero and are
// reported as unreconciled; a partially loaded snapshot degrades to
// smaller totals instead of an error.
func (a *Aggregator) PortfolioRollup(contracts []ContractRecord, payments []PaymentRecord, reportingCurrency string) (Rollup, []Warning) {
	var rollup Rollup
	var warnings []Warning

	known := make(map[string]ContractRecord, len(contracts))
	for _, c := range contracts {
		known[c.ContractID] = c
	}

	byContract := make(map[string][]PaymentRecord)
	for _, p := range payments {
		if _, ok := known[p.ContractID]; !ok {
			converted, _ := a.rates.convertOrFallback(p.Gross, p.Currency, reportingCurrency)
			rollup.UnreconciledCount++
			rollup.UnreconciledAmount += converted
			warnings = append(warnings, missingReference(p.ID,
				fmt.Sprintf("payment %s references unknown contract %s", p.ID, p.ContractID)))
			continue
		}
		byContract[p.ContractID] = append(byContract[p.ContractID], p)
	}

	for _, c := range contracts {
		own := byContract[c.ContractID]

		paySum, _ := a.paymentBuckets(own, reportingCurrency)
		rollup.TotalEarned += paySum.Paid
		rollup.TotalEscrowed += paySum.Escrowed

		// Breakdown re-reports the per-payment warnings, so the bucket
		// pass above drops its own copy.
		breakdown, bWarnings := a.Breakdown(c, own)
		warnings = append(warnings, bWarnings...)
		pending, fellBack := a.rates.convertOrFallback(breakdown.AmountPending, c.Currency, reportingCurrency)
		if fellBack {
			warnings = append(warnings, dataQuality(c.ContractID,
				fmt.Sprintf("contract %s: currency %q not in rate table, converted 1:1", c.ContractID, c.Currency)))
		}
		rollup.TotalPending += pending
	}

	rollup.TotalEarned = Round2(rollup.TotalEarned)
	rollup.TotalEscrowed = Round2(rollup.TotalEscrowed)
	rollup.TotalPending = Round2(rollup.TotalPending)
	rollup.UnreconciledAmount = Round2(rollup.UnreconciledAmount)
	return rollup, warnings
}
