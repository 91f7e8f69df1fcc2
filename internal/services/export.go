package services

import (
	"time"

	"github.com/terraincognita07/ovella/internal/models"
)

// ExportFileName is the download name clients expect for the calculation
// document.
const ExportFileName = "cycle_calculation.json"

type ExportInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Color string `json:"color"`
}

// ExportDocument mirrors every computed interval of a prediction. The field
// names and color constants are a compatibility surface for clients that
// consume the downloaded file and must be preserved exactly.
type ExportDocument struct {
	BleedWeek        ExportInterval `json:"bleed_week"`
	PowerWeek        ExportInterval `json:"power_week"`
	VacationMode     ExportInterval `json:"vacation_mode"`
	MainOvulationDay string         `json:"main_ovulation_day"`
	OvulationDays    ExportInterval `json:"ovulation_days"`
	CrashRound1      ExportInterval `json:"crash_round_1"`
	NurtureWeek      ExportInterval `json:"nurture_week"`
	CrashRound2      ExportInterval `json:"crash_round_2"`
}

// BuildExportDocument flattens a prediction into the export shape. The
// vacation span is derived from the timeline so the document is complete in
// both deployment variants.
func BuildExportDocument(prediction *Prediction) ExportDocument {
	bleedPhase := prediction.phase(models.PhaseBleed)
	powerPhase := prediction.phase(models.PhasePowerWeek)
	crash1Phase := prediction.phase(models.PhaseCrash1)
	nurturePhase := prediction.phase(models.PhaseNurture)
	crash2Phase := prediction.phase(models.PhaseCrash2)

	document := ExportDocument{
		BleedWeek:        exportInterval(bleedPhase.Start, bleedPhase.End, models.ExportColorBleedWeek),
		PowerWeek:        exportInterval(powerPhase.Start, powerPhase.End, models.ExportColorPowerWeek),
		VacationMode:     exportInterval(bleedPhase.End.AddDate(0, 0, -1), powerPhase.End, models.ExportColorVacationMode),
		MainOvulationDay: formatDay(prediction.MainOvulationDate),
		OvulationDays:    ExportInterval{Color: models.ExportColorOvulationDays},
		CrashRound1:      exportInterval(crash1Phase.Start, crash1Phase.End, models.ExportColorCrashRound),
		NurtureWeek:      exportInterval(nurturePhase.Start, nurturePhase.End, models.ExportColorNurtureWeek),
		CrashRound2:      exportInterval(crash2Phase.Start, crash2Phase.End, models.ExportColorCrashRound),
	}

	// An empty fertile window keeps the key with blank dates.
	if len(prediction.FertileDays) > 0 {
		document.OvulationDays.Start = formatDay(prediction.FertileDays[0])
		document.OvulationDays.End = formatDay(prediction.FertileDays[len(prediction.FertileDays)-1])
	}

	return document
}

func (prediction *Prediction) phase(name string) PhaseSegment {
	for _, segment := range prediction.Timeline {
		if segment.Name == name {
			return segment
		}
	}
	return PhaseSegment{}
}

func exportInterval(start time.Time, end time.Time, color string) ExportInterval {
	return ExportInterval{
		Start: formatDay(start),
		End:   formatDay(end),
		Color: color,
	}
}
