package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexTimeUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2026-03-01T10:30:00Z"`, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", `"2026-03-01T10:30:00+02:00"`, time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)},
		{"bare datetime", `"2026-03-01T10:30:00"`, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{"date only", `"2026-03-01"`, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"epoch millis", `1772360100000`, time.UnixMilli(1772360100000).UTC()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ft FlexTime
			if err := json.Unmarshal([]byte(tc.in), &ft); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if !ft.Time.UTC().Equal(tc.want) {
				t.Fatalf("got %v, want %v", ft.Time.UTC(), tc.want)
			}
		})
	}
}

func TestFlexTimeUnmarshalNull(t *testing.T) {
	var ft FlexTime
	if err := json.Unmarshal([]byte("null"), &ft); err != nil {
		t.Fatalf("null should decode: %v", err)
	}
	if !ft.Time.IsZero() {
		t.Fatalf("null should leave time zero, got %v", ft.Time)
	}
}

func TestFlexTimeUnmarshalGarbage(t *testing.T) {
	var ft FlexTime
	if err := json.Unmarshal([]byte(`"next tuesday"`), &ft); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
}

func TestFlexTimeMarshal(t *testing.T) {
	ft := FlexTime{Time: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)}
	out, err := json.Marshal(ft)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"2026-03-01T10:30:00Z"` {
		t.Fatalf("got %s", out)
	}

	zero, err := json.Marshal(FlexTime{})
	if err != nil {
		t.Fatal(err)
	}
	if string(zero) != "null" {
		t.Fatalf("zero time should marshal to null, got %s", zero)
	}
}
