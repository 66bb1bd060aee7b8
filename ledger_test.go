package sellergrid

import (
	"testing"
	"time"
)

// newTestLedger returns a ledger whose highlight timers never fire on
// their own; fired callbacks are collected in the returned slice.
func newTestLedger() (*Ledger, *[]func()) {
	l := NewLedger()
	var timers []func()
	l.schedule = func(_ time.Duration, f func()) { timers = append(timers, f) }
	return l, &timers
}

// fill replaces the grid content with n items priced 1..n.
func fill(t *testing.T, l *Ledger, n int) {
	t.Helper()
	l.ClearAll()
	for i := 1; i < n; i++ {
		l.AddItem()
	}
	for i := 0; i < n; i++ {
		if _, _, err := l.SetPrice(i, float64(i+1)); err != nil {
			t.Fatalf("SetPrice(%d): %v", i, err)
		}
	}
}

func TestAddItem_SeedsDefaults(t *testing.T) {
	l, _ := newTestLedger()
	l.SetProfile(Profile{SellerID: "abc123", DefaultDonation: true, DefaultGender: Girl, DefaultSize: "M"})

	i := l.AddItem()
	it, err := l.At(i)
	if err != nil {
		t.Fatalf("At(%d): %v", i, err)
	}
	if !it.Donation || it.Gender != Girl || it.Size != "M" {
		t.Errorf("new item not seeded from defaults: %+v", it)
	}
	if it.Price != 0 || it.Selected {
		t.Errorf("new item must start unpriced and unselected: %+v", it)
	}
}

func TestLedger_NeverEmpty(t *testing.T) {
	t.Run("remove last item", func(t *testing.T) {
		l, _ := newTestLedger()
		if err := l.RemoveItem(0); err != nil {
			t.Fatalf("RemoveItem: %v", err)
		}
		if l.Len() != 1 {
			t.Errorf("Len() = %d, want 1 default item after removing the last one", l.Len())
		}
	})

	t.Run("remove all selected", func(t *testing.T) {
		l, _ := newTestLedger()
		fill(t, l, 3)
		l.SetSelectAll(true)
		l.ToggleSelectAll()
		if err := l.RemoveSelected(); err != nil {
			t.Fatalf("RemoveSelected: %v", err)
		}
		if l.Len() != 1 {
			t.Errorf("Len() = %d, want 1 default item after bulk removal", l.Len())
		}
		if l.Profile().SelectAll {
			t.Error("SelectAll must reset after the grid was emptied")
		}
	})

	t.Run("clear all", func(t *testing.T) {
		l, _ := newTestLedger()
		fill(t, l, 4)
		l.ClearAll()
		if l.Len() != 1 {
			t.Errorf("Len() = %d, want 1 default item after clear", l.Len())
		}
	})
}

func TestRemoveSelected_NoSelection(t *testing.T) {
	l, _ := newTestLedger()
	fill(t, l, 3)
	if err := l.RemoveSelected(); err != ErrNoSelection {
		t.Fatalf("RemoveSelected() = %v, want ErrNoSelection", err)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, the grid must be untouched on ErrNoSelection", l.Len())
	}
}

func TestRemoveSelected_PreservesOrder(t *testing.T) {
	l, _ := newTestLedger()
	fill(t, l, 4)
	for i, desc := range []string{"a", "b", "c", "d"} {
		if err := l.SetDescription(i, desc); err != nil {
			t.Fatalf("SetDescription: %v", err)
		}
	}
	// select b and d; removal walks from the end so positions stay stable
	if err := l.SetSelected(1, true); err != nil {
		t.Fatal(err)
	}
	if err := l.SetSelected(3, true); err != nil {
		t.Fatal(err)
	}

	if err := l.RemoveSelected(); err != nil {
		t.Fatalf("RemoveSelected: %v", err)
	}

	want := []string{"a", "c"}
	if l.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", l.Len(), len(want))
	}
	for i, w := range want {
		it, _ := l.At(i)
		if it.ItemDescription != w {
			t.Errorf("item %d = %q, want %q", i, it.ItemDescription, w)
		}
	}
}

func TestSelectAll_FixedPoint(t *testing.T) {
	l, _ := newTestLedger()
	fill(t, l, 3)

	l.SetSelectAll(true)
	l.ToggleSelectAll()
	l.RecomputeSelectAll()
	if !l.Profile().SelectAll {
		t.Error("SelectAll must hold after select-all + recompute")
	}
	for i, it := range l.Items() {
		if !it.Selected {
			t.Errorf("item %d unselected after ToggleSelectAll(true)", i)
		}
	}

	// toggling again with the same aggregate is a fixed point
	l.ToggleSelectAll()
	l.RecomputeSelectAll()
	if !l.Profile().SelectAll {
		t.Error("ToggleSelectAll followed by RecomputeSelectAll must be a fixed point")
	}
}

func TestRecomputeSelectAll(t *testing.T) {
	l, _ := newTestLedger()
	fill(t, l, 3)

	l.SetSelectAll(true)
	l.ToggleSelectAll()
	if err := l.SetSelected(1, false); err != nil {
		t.Fatal(err)
	}
	if l.Profile().SelectAll {
		t.Error("SelectAll must drop when one item is deselected")
	}
	if err := l.SetSelected(1, true); err != nil {
		t.Fatal(err)
	}
	if !l.Profile().SelectAll {
		t.Error("SelectAll must rise when the last item is re-selected")
	}
}

func TestSetPrice_HighlightLifecycle(t *testing.T) {
	l, timers := newTestLedger()

	price, corrected, err := l.SetPrice(0, 3.7)
	if err != nil {
		t.Fatalf("SetPrice: %v", err)
	}
	if price != 4 || !corrected {
		t.Fatalf("SetPrice(3.7) = (%v, %v), want (4, true)", price, corrected)
	}
	it, _ := l.At(0)
	if !it.Highlight {
		t.Error("a corrected item must be highlighted")
	}
	if len(*timers) != 1 {
		t.Fatalf("expected 1 scheduled clear, got %d", len(*timers))
	}

	(*timers)[0]()
	it, _ = l.At(0)
	if it.Highlight {
		t.Error("highlight must clear when the timer fires")
	}
}

func TestSetPrice_HighlightRestart(t *testing.T) {
	l, timers := newTestLedger()

	if _, _, err := l.SetPrice(0, 3.7); err != nil {
		t.Fatal(err)
	}
	if _, _, err := l.SetPrice(0, 5.2); err != nil {
		t.Fatal(err)
	}
	if len(*timers) != 2 {
		t.Fatalf("expected 2 scheduled clears, got %d", len(*timers))
	}

	// the first, stale timer must not clear the restarted highlight
	(*timers)[0]()
	it, _ := l.At(0)
	if !it.Highlight {
		t.Error("a stale timer cleared a restarted highlight")
	}
	(*timers)[1]()
	it, _ = l.At(0)
	if it.Highlight {
		t.Error("the fresh timer must clear the highlight")
	}
}

func TestSetPrice_NoHighlightWithoutCorrection(t *testing.T) {
	l, timers := newTestLedger()
	if _, corrected, err := l.SetPrice(0, 12); err != nil || corrected {
		t.Fatalf("SetPrice(12) corrected=%v err=%v, want clean accept", corrected, err)
	}
	it, _ := l.At(0)
	if it.Highlight {
		t.Error("an uncorrected price must not highlight")
	}
	if len(*timers) != 0 {
		t.Errorf("no clear must be scheduled, got %d", len(*timers))
	}
}

func TestTotals(t *testing.T) {
	l, _ := newTestLedger()
	fill(t, l, 4) // prices 1,2,3,4
	if _, _, err := l.SetPrice(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := l.SetSelected(2, true); err != nil { // price 3
		t.Fatal(err)
	}

	testCases := []struct {
		name       string
		pred       func(Item) bool
		wantCount  int
		wantAmount Price
	}{
		{name: "all", pred: AcceptAll, wantCount: 4, wantAmount: 9},
		{name: "valid", pred: Valid, wantCount: 3, wantAmount: 9},
		{name: "selected and valid", pred: SelectedAndValid, wantCount: 1, wantAmount: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := l.Totals(tc.pred)
			if got.Count != tc.wantCount || got.Amount != tc.wantAmount {
				t.Errorf("Totals() = %+v, want {%d %d}", got, tc.wantCount, tc.wantAmount)
			}
		})
	}
}

func TestSelectionSnapshotRestore(t *testing.T) {
	l, _ := newTestLedger()
	fill(t, l, 4)
	if err := l.SetSelected(0, true); err != nil {
		t.Fatal(err)
	}
	if err := l.SetSelected(2, true); err != nil {
		t.Fatal(err)
	}

	snapshot := l.SelectionSnapshot()

	l.SetSelectAll(true)
	l.ToggleSelectAll()
	l.RestoreSelection(snapshot)

	for i, it := range l.Items() {
		want := i == 0 || i == 2
		if it.Selected != want {
			t.Errorf("item %d selected = %v, want %v", i, it.Selected, want)
		}
	}
	if l.Profile().SelectAll {
		t.Error("SelectAll must be recomputed to false after a partial restore")
	}
}

func TestOnChange_FiresOnEveryMutation(t *testing.T) {
	l, _ := newTestLedger()
	saves := 0
	l.OnChange(func() { saves++ })

	l.AddItem()
	if err := l.SetDescription(0, "jeans"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := l.SetPrice(0, 4); err != nil {
		t.Fatal(err)
	}
	if err := l.RemoveItem(1); err != nil {
		t.Fatal(err)
	}
	l.ClearAll()

	if saves < 5 {
		t.Errorf("change callback fired %d times, want at least 5", saves)
	}
}
