package sellergrid

import (
	"encoding/json"
	"testing"
)

func TestParseGender(t *testing.T) {
	testCases := []struct {
		in      string
		want    Gender
		wantErr bool
	}{
		{in: "boy", want: Boy},
		{in: "girl", want: Girl},
		{in: "unmarked", want: Unmarked},
		{in: "", want: Unmarked},
		{in: "Boys", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseGender(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseGender(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseGender(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGenderJSON_UnknownTag(t *testing.T) {
	// snapshots written by other tools may carry tags we do not know
	var g Gender
	if err := json.Unmarshal([]byte(`"adult"`), &g); err != nil {
		t.Fatalf("unknown tags must not fail the import: %v", err)
	}
	if g != Unmarked {
		t.Errorf("unknown tag decoded to %v, want Unmarked", g)
	}
}
