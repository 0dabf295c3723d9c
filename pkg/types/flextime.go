package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FlexTime normalizes the timestamp shapes delivered by upstream feeds.
// Document snapshots carry either RFC3339 strings, bare dates, or epoch
// milliseconds depending on which client wrote the record; all of them
// decode into a plain time.Time here so the rest of the code never has
// to re-parse.
type FlexTime struct {
	time.Time
}

var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	// Epoch milliseconds arrive as bare numbers.
	if data[0] != '"' {
		ms, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp %s", data)
		}
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range flexLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp format %q", s)
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}
