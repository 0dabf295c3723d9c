package finance

import (
	"reflect"
	"testing"
)

func fixedContract() ContractRecord {
	return ContractRecord{
		ContractID:  "c1",
		TotalAmount: 5000,
		Currency:    "USD",
		PaymentType: PaymentTypeFixed,
		Milestones: []MilestoneRecord{
			{ID: "m1", Title: "Design", Amount: 2000, Status: MilestoneCompleted},
			{ID: "m2", Title: "Build", Amount: 1500, Status: MilestoneInReview},
			{ID: "m3", Title: "Ship", Amount: 1500, Status: MilestonePending},
		},
	}
}

func TestBreakdownFromMilestonesOnly(t *testing.T) {
	agg := NewAggregator(nil)

	b, warnings := agg.Breakdown(fixedContract(), nil)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if b.AmountPaid != 2000 {
		t.Fatalf("expected paid 2000, got %f", b.AmountPaid)
	}
	if b.AmountInReview != 1500 {
		t.Fatalf("expected inReview 1500, got %f", b.AmountInReview)
	}
	if b.AmountPending != 1500 {
		t.Fatalf("expected pending 1500, got %f", b.AmountPending)
	}
	if b.TotalAmount != 5000 {
		t.Fatalf("expected total 5000, got %f", b.TotalAmount)
	}
}

func TestBreakdownEscrowResidual(t *testing.T) {
	agg := NewAggregator(nil)
	payments := []PaymentRecord{
		{ID: "p1", ContractID: "c1", Gross: 2000, Currency: "USD", Status: PaymentCompleted},
		{ID: "p2", ContractID: "c1", Gross: 1000, Currency: "USD", Status: PaymentEscrowed},
	}

	b, _ := agg.Breakdown(fixedContract(), payments)
	if b.AmountEscrowed != 1000 {
		t.Fatalf("expected escrowed 1000, got %f", b.AmountEscrowed)
	}
	if b.AmountPending != 2000 {
		t.Fatalf("expected residual pending 2000, got %f", b.AmountPending)
	}
}

func TestBreakdownIgnoresForeignPayments(t *testing.T) {
	agg := NewAggregator(nil)
	payments := []PaymentRecord{
		{ID: "p1", ContractID: "other", Gross: 9999, Currency: "USD", Status: PaymentCompleted},
	}

	b, _ := agg.Breakdown(fixedContract(), payments)
	if b.AmountEscrowed != 0 {
		t.Fatalf("foreign payment leaked into breakdown: %+v", b)
	}
	// No payments belong to c1, so the milestone residual applies.
	if b.AmountPending != 1500 {
		t.Fatalf("expected pending 1500, got %f", b.AmountPending)
	}
}

func TestBreakdownResidualNeverNegative(t *testing.T) {
	agg := NewAggregator(nil)
	payments := []PaymentRecord{
		{ID: "p1", ContractID: "c1", Gross: 6000, Currency: "USD", Status: PaymentCompleted},
	}

	b, _ := agg.Breakdown(fixedContract(), payments)
	if b.AmountPending != 0 {
		t.Fatalf("overpaid contract must clamp pending to 0, got %f", b.AmountPending)
	}
}

func TestBreakdownHourlyContract(t *testing.T) {
	agg := NewAggregator(nil)
	contract := ContractRecord{
		ContractID:  "c2",
		TotalAmount: 3000,
		Currency:    "USD",
		PaymentType: PaymentTypeHourly,
	}
	payments := []PaymentRecord{
		{ID: "p1", ContractID: "c2", Gross: 1200, Currency: "USD", Status: PaymentCompleted},
	}

	b, warnings := agg.Breakdown(contract, payments)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if b.AmountPaid != 1200 {
		t.Fatalf("hourly paid should come from payments, got %f", b.AmountPaid)
	}
	if b.AmountPending != 1800 {
		t.Fatalf("expected pending 1800, got %f", b.AmountPending)
	}
}

func TestBreakdownMilestoneTotalMismatch(t *testing.T) {
	agg := NewAggregator(nil)
	contract := fixedContract()
	contract.TotalAmount = 6000 // milestones still sum to 5000

	b, warnings := agg.Breakdown(contract, nil)
	if b.TotalAmount != 6000 {
		t.Fatalf("terms amount is authoritative, got %f", b.TotalAmount)
	}
	found := false
	for _, w := range warnings {
		if w.Code == WarnDataQuality && w.Ref == "c1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a mismatch warning, got %v", warnings)
	}
}

func TestBreakdownIdempotent(t *testing.T) {
	agg := NewAggregator(nil)
	contract := fixedContract()
	payments := []PaymentRecord{
		{ID: "p1", ContractID: "c1", Gross: 2000, Currency: "USD", Status: PaymentCompleted},
		{ID: "p2", ContractID: "c1", Gross: 1000, Currency: "EUR", Status: PaymentEscrowed},
	}

	first, firstWarnings := agg.Breakdown(contract, payments)
	second, secondWarnings := agg.Breakdown(contract, payments)
	if first != second {
		t.Fatalf("breakdown not idempotent: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(firstWarnings, secondWarnings) {
		t.Fatalf("warnings not idempotent: %v vs %v", firstWarnings, secondWarnings)
	}
}

func TestPortfolioRollupCurrencyMixing(t *testing.T) {
	agg := NewAggregator(nil)
	contracts := []ContractRecord{
		{ContractID: "c1", TotalAmount: 100, Currency: "EUR", PaymentType: PaymentTypeHourly},
		{ContractID: "c2", TotalAmount: 50, Currency: "USD", PaymentType: PaymentTypeHourly},
	}
	payments := []PaymentRecord{
		{ID: "p1", ContractID: "c1", Gross: 100, Currency: "EUR", Status: PaymentCompleted},
		{ID: "p2", ContractID: "c2", Gross: 50, Currency: "USD", Status: PaymentCompleted},
	}

	rollup, warnings := agg.PortfolioRollup(contracts, payments, "USD")
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if rollup.TotalEarned != 160 {
		t.Fatalf("expected totalEarned 160, got %f", rollup.TotalEarned)
	}
}

func TestPortfolioRollupUnreconciledPayment(t *testing.T) {
	agg := NewAggregator(nil)
	contracts := []ContractRecord{
		{ContractID: "c1", TotalAmount: 100, Currency: "USD", PaymentType: PaymentTypeHourly},
	}
	payments := []PaymentRecord{
		{ID: "p1", ContractID: "c1", Gross: 100, Currency: "USD", Status: PaymentCompleted},
		{ID: "p2", ContractID: "ghost", Gross: 400, Currency: "USD", Status: PaymentCompleted},
	}

	rollup, warnings := agg.PortfolioRollup(contracts, payments, "USD")
	if rollup.TotalEarned != 100 {
		t.Fatalf("unreconciled payment must contribute zero, got %f", rollup.TotalEarned)
	}
	if rollup.UnreconciledCount != 1 || rollup.UnreconciledAmount != 400 {
		t.Fatalf("expected 1 unreconciled payment of 400, got %+v", rollup)
	}
	found := false
	for _, w := range warnings {
		if w.Code == WarnMissingReference && w.Ref == "p2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missing-reference warning, got %v", warnings)
	}
}

func TestPortfolioRollupPendingConversion(t *testing.T) {
	agg := NewAggregator(nil)
	contracts := []ContractRecord{
		{
			ContractID:  "c1",
			TotalAmount: 1000,
			Currency:    "EUR",
			PaymentType: PaymentTypeFixed,
			Milestones: []MilestoneRecord{
				{ID: "m1", Amount: 1000, Status: MilestonePending},
			},
		},
	}

	rollup, _ := agg.PortfolioRollup(contracts, nil, "USD")
	if rollup.TotalPending != 1100 {
		t.Fatalf("expected pending 1000 EUR = 1100 USD, got %f", rollup.TotalPending)
	}
}
