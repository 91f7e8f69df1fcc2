package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunPredictCommandTextOutput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	options := PredictOptions{
		Start:     "2026-01-01",
		BleedDays: 5,
		CycleDays: 28,
		Variant:   "enriched",
	}

	if err := RunPredictCommand(options, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"Cycle roadmap (enriched variant)",
		"bleed: 5 days, cycle: 28 days, power week: 12 days",
		"Main ovulation day: 2026-01-15",
		"2026-01-15  <- main",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, text)
		}
	}
}

func TestRunPredictCommandJSONOutput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	options := PredictOptions{
		Start:     "2026-01-01",
		BleedDays: 5,
		CycleDays: 28,
		Variant:   "classic",
		AsJSON:    true,
	}

	if err := RunPredictCommand(options, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload := struct {
		RoundedBleed int    `json:"rounded_bleed"`
		RoundedCycle int    `json:"rounded_cycle"`
		FertileLogic string `json:"fertile_logic"`
		Variant      string `json:"variant"`
	}{}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decode JSON output: %v", err)
	}
	if payload.RoundedBleed != 5 || payload.RoundedCycle != 28 {
		t.Fatalf("expected rounded 5/28, got %d/%d", payload.RoundedBleed, payload.RoundedCycle)
	}
	if payload.FertileLogic != "fixed_window_rule" {
		t.Fatalf("expected fixed window logic for classic variant, got %s", payload.FertileLogic)
	}
	if payload.Variant != "classic" {
		t.Fatalf("expected classic variant label, got %s", payload.Variant)
	}
}

func TestRunPredictCommandWritesExportFile(t *testing.T) {
	t.Parallel()

	exportPath := filepath.Join(t.TempDir(), "calc.json")
	out := &bytes.Buffer{}
	options := PredictOptions{
		Start:      "2026-01-01",
		BleedDays:  5,
		CycleDays:  28,
		Variant:    "enriched",
		ExportPath: exportPath,
	}

	if err := RunPredictCommand(options, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Export written to "+exportPath) {
		t.Fatalf("expected export confirmation in output, got:\n%s", out.String())
	}

	raw, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export file: %v", err)
	}

	document := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &document); err != nil {
		t.Fatalf("decode export file: %v", err)
	}
	for _, key := range []string{"bleed_week", "power_week", "vacation_mode", "main_ovulation_day", "ovulation_days"} {
		if _, ok := document[key]; !ok {
			t.Fatalf("missing export key %q", key)
		}
	}
}

func TestRunPredictCommandErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		options PredictOptions
		want    string
	}{
		{
			name:    "bad start date",
			options: PredictOptions{Start: "tomorrow", BleedDays: 5, CycleDays: 28},
			want:    "invalid start date",
		},
		{
			name:    "bleed out of range",
			options: PredictOptions{Start: "2026-01-01", BleedDays: 2, CycleDays: 28},
			want:    "bleed days must be",
		},
		{
			name:    "cap violation",
			options: PredictOptions{Start: "2026-01-01", BleedDays: 6, CycleDays: 21},
			want:    "max bleed",
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := RunPredictCommand(testCase.options, &bytes.Buffer{})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), testCase.want) {
				t.Fatalf("expected error containing %q, got %v", testCase.want, err)
			}
		})
	}
}
