package sellergrid

import "testing"

func TestCompileFilter(t *testing.T) {
	it := Item{ItemDescription: "red dress", Size: "8", Gender: Girl, Price: 12, Selected: true}

	testCases := []struct {
		src  string
		want bool
	}{
		{src: "Price > 10", want: true},
		{src: "Price > 20", want: false},
		{src: "Selected && Gender == \"girl\"", want: true},
		{src: "Donation", want: false},
		{src: "Valid && Size != \"\"", want: true},
		{src: "Description contains \"dress\"", want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			pred, err := CompileFilter(tc.src)
			if err != nil {
				t.Fatalf("CompileFilter(%q): %v", tc.src, err)
			}
			if got := pred(it); got != tc.want {
				t.Errorf("filter %q = %v, want %v", tc.src, got, tc.want)
			}
		})
	}
}

func TestCompileFilter_Invalid(t *testing.T) {
	for _, src := range []string{"Price +", "NoSuchField > 1", "Price"} {
		if _, err := CompileFilter(src); err == nil {
			t.Errorf("CompileFilter(%q) must be rejected", src)
		}
	}
}

func TestFilterWithTotals(t *testing.T) {
	l, _ := newTestLedger()
	fill(t, l, 4) // prices 1..4

	pred, err := CompileFilter("Price >= 3")
	if err != nil {
		t.Fatal(err)
	}
	got := l.Totals(pred)
	if got.Count != 2 || got.Amount != 7 {
		t.Errorf("Totals = %+v, want count 2 amount 7", got)
	}
}
