package domain

import "testing"

func TestRevenueWeekComputeTotal(t *testing.T) {
	week := RevenueWeek{
		ProductRevenue:      1200,
		ClientRevenue:       3500,
		TemplateSalesCount:  7,
		TemplateSalesAmount: 350,
		OtherIncome:         50,
	}

	week.ComputeTotal()

	if week.WeeklyTotal != 5100 {
		t.Errorf("WeeklyTotal = %v, want 5100", week.WeeklyTotal)
	}
}

func TestRevenueWeekComputeTotalIgnoresSalesCount(t *testing.T) {
	week := RevenueWeek{TemplateSalesCount: 100}
	week.ComputeTotal()
	if week.WeeklyTotal != 0 {
		t.Errorf("sales count must not contribute to the total, got %v", week.WeeklyTotal)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range ApplicationStatuses {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []ApplicationStatus{"", "applied", "Ghosted", "Offer "}
	for _, s := range invalid {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
