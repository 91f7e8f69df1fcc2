package services

import (
	"encoding/json"
	"testing"
)

func TestBuildExportDocumentRegularCycle(t *testing.T) {
	t.Parallel()

	start := mustParseDay(t, "2026-01-01")
	prediction, err := Predict(start, 5, 28, EnrichedVariant())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	document := BuildExportDocument(prediction)

	raw, err := json.Marshal(document)
	if err != nil {
		t.Fatalf("marshal export document: %v", err)
	}
	payload := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal export document: %v", err)
	}

	// The downloaded file is a compatibility surface; key names are fixed.
	wantKeys := []string{
		"bleed_week",
		"power_week",
		"vacation_mode",
		"main_ovulation_day",
		"ovulation_days",
		"crash_round_1",
		"nurture_week",
		"crash_round_2",
	}
	if len(payload) != len(wantKeys) {
		t.Fatalf("expected %d top-level keys, got %d", len(wantKeys), len(payload))
	}
	for _, key := range wantKeys {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing export key %q", key)
		}
	}

	cases := []struct {
		key       string
		interval  ExportInterval
		wantStart string
		wantEnd   string
		wantColor string
	}{
		{key: "bleed_week", interval: document.BleedWeek, wantStart: "2026-01-01", wantEnd: "2026-01-05", wantColor: "0xFFE91E63"},
		{key: "power_week", interval: document.PowerWeek, wantStart: "2026-01-06", wantEnd: "2026-01-17", wantColor: "0xFF68D20D"},
		{key: "vacation_mode", interval: document.VacationMode, wantStart: "2026-01-04", wantEnd: "2026-01-17", wantColor: "0xFFFFFF00"},
		{key: "ovulation_days", interval: document.OvulationDays, wantStart: "2026-01-11", wantEnd: "2026-01-16", wantColor: "0xFFFFC0CB"},
		{key: "crash_round_1", interval: document.CrashRound1, wantStart: "2026-01-18", wantEnd: "2026-01-19", wantColor: "0xFFFFC107"},
		{key: "nurture_week", interval: document.NurtureWeek, wantStart: "2026-01-20", wantEnd: "2026-01-25", wantColor: "0xFF8E8E8E"},
		{key: "crash_round_2", interval: document.CrashRound2, wantStart: "2026-01-26", wantEnd: "2026-01-28", wantColor: "0xFFFFC107"},
	}
	for _, testCase := range cases {
		if testCase.interval.Start != testCase.wantStart {
			t.Fatalf("%s: expected start %s, got %s", testCase.key, testCase.wantStart, testCase.interval.Start)
		}
		if testCase.interval.End != testCase.wantEnd {
			t.Fatalf("%s: expected end %s, got %s", testCase.key, testCase.wantEnd, testCase.interval.End)
		}
		if testCase.interval.Color != testCase.wantColor {
			t.Fatalf("%s: expected color %s, got %s", testCase.key, testCase.wantColor, testCase.interval.Color)
		}
	}

	if document.MainOvulationDay != "2026-01-15" {
		t.Fatalf("expected main ovulation day 2026-01-15, got %s", document.MainOvulationDay)
	}
}

func TestBuildExportDocumentEmptyFertileWindow(t *testing.T) {
	t.Parallel()

	start := mustParseDay(t, "2026-01-01")
	prediction, err := Predict(start, 5, 28, EnrichedVariant())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prediction.FertileDays = nil

	document := BuildExportDocument(prediction)
	if document.OvulationDays.Start != "" || document.OvulationDays.End != "" {
		t.Fatalf("expected blank ovulation dates, got %q/%q", document.OvulationDays.Start, document.OvulationDays.End)
	}
	if document.OvulationDays.Color != "0xFFFFC0CB" {
		t.Fatalf("expected ovulation color to survive an empty window, got %s", document.OvulationDays.Color)
	}
}

func TestBuildExportDocumentClassicVariantStillComplete(t *testing.T) {
	t.Parallel()

	start := mustParseDay(t, "2026-01-01")
	prediction, err := Predict(start, 5, 28, ClassicVariant())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	document := BuildExportDocument(prediction)
	if document.VacationMode.Start != "2026-01-04" || document.VacationMode.End != "2026-01-17" {
		t.Fatalf("expected vacation span derived from the timeline, got %q..%q",
			document.VacationMode.Start, document.VacationMode.End)
	}
}
