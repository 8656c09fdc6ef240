package models

import "testing"

func TestComputeTotalsSingleItem(t *testing.T) {
	q := Quotation{
		Items: []QuotationItem{
			{Quantity: 2, UnitPrice: 100, GstPercentage: 18},
		},
	}
	q.ComputeTotals()

	item := q.Items[0]
	if item.Amount != 200 {
		t.Errorf("amount = %v, want 200", item.Amount)
	}
	if item.GstAmount != 36 {
		t.Errorf("gst amount = %v, want 36", item.GstAmount)
	}
	if item.Total != 236 {
		t.Errorf("item total = %v, want 236", item.Total)
	}
	if q.GrandTotal != 236 {
		t.Errorf("grand total = %v, want 236", q.GrandTotal)
	}
}

func TestComputeTotalsTwoItems(t *testing.T) {
	q := Quotation{
		Items: []QuotationItem{
			{Quantity: 2, UnitPrice: 100, GstPercentage: 18},
			{Quantity: 2, UnitPrice: 100, GstPercentage: 18},
		},
	}
	q.ComputeTotals()

	if q.Subtotal != 400 {
		t.Errorf("subtotal = %v, want 400", q.Subtotal)
	}
	if q.TotalGst != 72 {
		t.Errorf("total gst = %v, want 72", q.TotalGst)
	}
	if q.GrandTotal != 472 {
		t.Errorf("grand total = %v, want 472", q.GrandTotal)
	}
}

func TestComputeTotalsRoundsPerItem(t *testing.T) {
	q := Quotation{
		Items: []QuotationItem{
			{Quantity: 3, UnitPrice: 33.33, GstPercentage: 18},
		},
	}
	q.ComputeTotals()

	if q.Items[0].Amount != 99.99 {
		t.Errorf("amount = %v, want 99.99", q.Items[0].Amount)
	}
	if q.Items[0].GstAmount != 18.00 {
		t.Errorf("gst amount = %v, want 18.00", q.Items[0].GstAmount)
	}
	if q.GrandTotal != 117.99 {
		t.Errorf("grand total = %v, want 117.99", q.GrandTotal)
	}
}

func TestMachineRateFor(t *testing.T) {
	m := Machine{DayRate: 4500, WeekRate: 27000, MonthRate: 95000}

	cases := []struct {
		duration string
		want     float64
	}{
		{DurationDay, 4500},
		{DurationWeek, 27000},
		{DurationMonth, 95000},
	}
	for _, tc := range cases {
		got, err := m.RateFor(tc.duration)
		if err != nil {
			t.Fatalf("RateFor(%s): %v", tc.duration, err)
		}
		if got != tc.want {
			t.Errorf("RateFor(%s) = %v, want %v", tc.duration, got, tc.want)
		}
	}

	if _, err := m.RateFor("fortnight"); err == nil {
		t.Error("expected an error for an unknown duration type")
	}
}
