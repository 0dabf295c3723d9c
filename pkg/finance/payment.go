package finance

import "fmt"

// PaymentSummary buckets payment amounts by status, converted to the
// requested reporting currency. Failed payments are counted but never
// summed; refunds are a negative adjustment to the paid bucket.
type PaymentSummary struct {
	Paid        float64 `json:"paid"`
	Escrowed    float64 `json:"escrowed"`
	Pending     float64 `json:"pending"`
	FailedCount int     `json:"failedCount"`
}

// Aggregator is the single place dashboard money math happens. It holds
// the rate table and nothing else: every method is a pure function of
// its inputs, safe to re-invoke on every snapshot tick.
type Aggregator struct {
	rates RateTable
}

func NewAggregator(rates RateTable) *Aggregator {
	if rates == nil {
		rates = DefaultRates()
	}
	return &Aggregator{rates: rates}
}

// SummarizePayments classifies payments and sums per-status buckets in
// reportingCurrency. The input may span many contracts; the result is a
// single scalar per bucket either way. Unknown currencies convert at a
// 1:1 rate and are flagged rather than dropped.
func (a *Aggregator) SummarizePayments(payments []PaymentRecord, reportingCurrency string) (PaymentSummary, []Warning) {
	summary, warnings := a.paymentBuckets(payments, reportingCurrency)
	summary.Paid = Round2(summary.Paid)
	summary.Escrowed = Round2(summary.Escrowed)
	summary.Pending = Round2(summary.Pending)
	return summary, warnings
}

// paymentBuckets keeps full precision so composed aggregates round once,
// at the end, instead of compounding per-bucket rounding error.
func (a *Aggregator) paymentBuckets(payments []PaymentRecord, reportingCurrency string) (PaymentSummary, []Warning) {
	var summary PaymentSummary
	var warnings []Warning

	for _, p := range payments {
		gross := p.Gross
		if gross < 0 {
			warnings = append(warnings, dataQuality(p.ID,
				fmt.Sprintf("payment %s has negative amount %.2f, treated as 0", p.ID, p.Gross)))
			gross = 0
		}

		converted, fellBack := a.rates.convertOrFallback(gross, p.Currency, reportingCurrency)
		if fellBack {
			warnings = append(warnings, dataQuality(p.ID,
				fmt.Sprintf("payment %s: currency %q not in rate table, converted 1:1", p.ID, p.Currency)))
		}

		switch p.Status {
		case PaymentCompleted:
			summary.Paid += converted
		case PaymentEscrowed:
			summary.Escrowed += converted
		case PaymentPending:
			summary.Pending += converted
		case PaymentFailed:
			summary.FailedCount++
		case PaymentRefunded:
			// A refund of a completed payment takes its amount back out
			// of the paid bucket.
			summary.Paid -= converted
		default:
			warnings = append(warnings, dataQuality(p.ID,
				fmt.Sprintf("payment %s has unknown status %q, excluded from sums", p.ID, p.Status)))
		}
	}

	// A refund can also reverse an escrow that never reached completed,
	// in which case there is no paid amount to take it out of. The
	// snapshot no longer carries the pre-refund status, so clamp instead
	// of reporting negative earnings.
	if summary.Paid < 0 {
		ref := ""
		if len(payments) > 0 {
			ref = payments[0].ContractID
		}
		warnings = append(warnings, dataQuality(ref,
			fmt.Sprintf("refunds exceed completed payments by %.2f, paid clamped to 0", -summary.Paid)))
		summary.Paid = 0
	}

	return summary, warnings
}
