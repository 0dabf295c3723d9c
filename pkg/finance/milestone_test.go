package finance

import "testing"

func TestSummarizeMilestonesEmpty(t *testing.T) {
	summary, warnings := SummarizeMilestones(nil)
	if summary != (MilestoneSummary{}) {
		t.Fatalf("expected all-zero summary, got %+v", summary)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestSummarizeMilestonesBuckets(t *testing.T) {
	milestones := []MilestoneRecord{
		{ID: "m1", Title: "Design", Amount: 2000, Status: MilestoneCompleted},
		{ID: "m2", Title: "Build", Amount: 1500, Status: MilestoneInReview},
		{ID: "m3", Title: "Ship", Amount: 1000, Status: MilestoneActive},
		{ID: "m4", Title: "Docs", Amount: 500, Status: MilestonePending},
	}

	summary, warnings := SummarizeMilestones(milestones)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if summary.Paid != 2000 {
		t.Fatalf("expected paid 2000, got %f", summary.Paid)
	}
	if summary.InReview != 1500 {
		t.Fatalf("expected inReview 1500, got %f", summary.InReview)
	}
	if summary.Pending != 1500 {
		t.Fatalf("expected pending 1500, got %f", summary.Pending)
	}
	if summary.Total != 5000 {
		t.Fatalf("expected total 5000, got %f", summary.Total)
	}
}

func TestSummarizeMilestonesNegativeAmount(t *testing.T) {
	milestones := []MilestoneRecord{
		{ID: "m1", Title: "Design", Amount: -300, Status: MilestoneCompleted},
		{ID: "m2", Title: "Build", Amount: 700, Status: MilestonePending},
	}

	summary, warnings := SummarizeMilestones(milestones)
	if summary.Paid != 0 {
		t.Fatalf("negative amount should contribute 0 to paid, got %f", summary.Paid)
	}
	if summary.Total != 700 {
		t.Fatalf("expected total 700, got %f", summary.Total)
	}
	if len(warnings) != 1 || warnings[0].Code != WarnDataQuality || warnings[0].Ref != "m1" {
		t.Fatalf("expected one data-quality warning for m1, got %v", warnings)
	}
}

func TestSummarizeMilestonesZeroAmount(t *testing.T) {
	milestones := []MilestoneRecord{
		{ID: "m1", Title: "Design", Amount: 0, Status: MilestonePending},
		{ID: "m2", Title: "Build", Amount: 700, Status: MilestonePending},
	}

	summary, warnings := SummarizeMilestones(milestones)
	if summary.Pending != 700 {
		t.Fatalf("expected pending 700, got %f", summary.Pending)
	}
	if summary.Total != 700 {
		t.Fatalf("expected total 700, got %f", summary.Total)
	}
	if len(warnings) != 1 || warnings[0].Code != WarnDataQuality || warnings[0].Ref != "m1" {
		t.Fatalf("expected one data-quality warning for m1, got %v", warnings)
	}
}

func TestSummarizeMilestonesUnknownStatus(t *testing.T) {
	summary, warnings := SummarizeMilestones([]MilestoneRecord{
		{ID: "m1", Title: "Weird", Amount: 100, Status: "archived"},
	})
	if summary.Pending != 100 {
		t.Fatalf("unknown status should land in pending, got %+v", summary)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}
