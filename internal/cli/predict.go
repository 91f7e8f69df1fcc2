package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/ovella/internal/services"
)

type PredictOptions struct {
	Start      string
	BleedDays  float64
	CycleDays  float64
	Variant    string
	AsJSON     bool
	ExportPath string
}

// RunPredictCommand computes a one-shot cycle roadmap and prints it to out.
// With ExportPath set, the calculation document is also written to disk.
func RunPredictCommand(options PredictOptions, out io.Writer) error {
	start, err := services.ParseDay(options.Start)
	if err != nil {
		return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD): %w", options.Start, err)
	}

	variant := services.ResolveVariant(options.Variant)
	prediction, err := services.Predict(start, options.BleedDays, options.CycleDays, variant)
	if err != nil {
		return err
	}

	if options.AsJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(prediction); err != nil {
			return fmt.Errorf("encode prediction: %w", err)
		}
	} else {
		printRoadmap(out, prediction)
	}

	if options.ExportPath != "" {
		document, err := json.MarshalIndent(services.BuildExportDocument(prediction), "", "    ")
		if err != nil {
			return fmt.Errorf("encode export document: %w", err)
		}
		if err := os.WriteFile(options.ExportPath, document, 0o644); err != nil {
			return fmt.Errorf("write export document: %w", err)
		}
		fmt.Fprintf(out, "\nExport written to %s\n", options.ExportPath)
	}

	return nil
}

func printRoadmap(out io.Writer, prediction *services.Prediction) {
	fmt.Fprintf(out, "Cycle roadmap (%s variant)\n", prediction.Variant)
	fmt.Fprintf(out, "  bleed: %d days, cycle: %d days, power week: %d days\n\n",
		prediction.RoundedBleed, prediction.RoundedCycle, prediction.PowerWeekDays)

	fmt.Fprintln(out, "Timeline:")
	for _, segment := range prediction.Timeline {
		fmt.Fprintf(out, "  %-12s %s .. %s (%d days)\n",
			segment.Name,
			segment.Start.Format("2006-01-02"),
			segment.End.Format("2006-01-02"),
			segment.Days)
	}
	if prediction.VacationMode != nil {
		fmt.Fprintf(out, "  %-12s %s .. %s (%d days, overlaps)\n",
			"vacation",
			prediction.VacationMode.Start.Format("2006-01-02"),
			prediction.VacationMode.End.Format("2006-01-02"),
			prediction.VacationMode.Days())
	}

	fmt.Fprintf(out, "\nMain ovulation day: %s\n", prediction.MainOvulationDate.Format("2006-01-02"))
	fmt.Fprintf(out, "Fertile window (%s):\n", prediction.FertileLogic)
	if len(prediction.FertileDays) == 0 {
		fmt.Fprintln(out, "  none (all candidate days overlap the bleed phase)")
		return
	}
	for _, day := range prediction.FertileDays {
		marker := ""
		if day.Equal(prediction.MainOvulationDate) {
			marker = "  <- main"
		}
		fmt.Fprintf(out, "  %s%s\n", day.Format("2006-01-02"), marker)
	}
}
