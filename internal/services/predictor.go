package services

import (
	"time"

	"github.com/terraincognita07/ovella/internal/models"
)

// Fixed late-cycle phase lengths. These are part of the calculation contract
// and are deliberately not configurable.
const (
	Crash1Days  = 2
	NurtureDays = 6
	Crash2Days  = 3
)

const fixedPhaseDays = Crash1Days + NurtureDays + Crash2Days

// Names of the fertile-window rules, carried in results for display and audit.
const (
	FertileLogicPowerWeek = "power_week_rule"
	FertileLogicStandard  = "standard_window_rule"
	FertileLogicFixed     = "fixed_window_rule"
)

// maxBleedByCycle caps bleed length for short cycles. Cycles of 26 days and
// above allow the full 10-day maximum.
var maxBleedByCycle = map[int]int{
	21: 5,
	22: 6,
	23: 7,
	24: 8,
	25: 9,
}

type PhaseSegment struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
	Color string    `json:"color"`
}

type DateSpan struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (span DateSpan) Days() int {
	return daysBetween(span.Start, span.End) + 1
}

type Prediction struct {
	RoundedBleed      int            `json:"rounded_bleed"`
	RoundedCycle      int            `json:"rounded_cycle"`
	PowerWeekDays     int            `json:"power_week_days"`
	MainOvulationDate time.Time      `json:"main_ovulation_date"`
	FertileDays       []time.Time    `json:"fertile_days"`
	Timeline          []PhaseSegment `json:"timeline"`
	FertileLogic      string         `json:"fertile_logic"`
	Variant           string         `json:"variant"`
	VacationMode      *DateSpan      `json:"vacation_mode,omitempty"`
}

// Predict rounds the raw averages, validates them, partitions the cycle into
// the five fixed phases starting at start, and derives the fertile window
// under the variant's rule set.
func Predict(start time.Time, rawBleed float64, rawCycle float64, variant Variant) (*Prediction, error) {
	bleed := variant.Rounding.RoundDays(rawBleed)
	cycle := CeilDays(rawCycle)

	if bleed < models.MinBleedDays || bleed > models.MaxBleedDays {
		return nil, validationErrorf("bleed days must be %d-%d (rounded value: %d)", models.MinBleedDays, models.MaxBleedDays, bleed)
	}
	if cycle < models.MinCycleDays || cycle > models.MaxCycleDays {
		return nil, validationErrorf("cycle length must be %d-%d (rounded value: %d)", models.MinCycleDays, models.MaxCycleDays, cycle)
	}

	maxBleed := models.MaxBleedDays
	if capped, ok := maxBleedByCycle[cycle]; ok {
		maxBleed = capped
	}
	if bleed > maxBleed {
		return nil, validationErrorf("for a %d-day cycle, max bleed is %d days, got %d", cycle, maxBleed, bleed)
	}

	powerWeek := cycle - (bleed + fixedPhaseDays)
	// Unreachable through the cap table, but raw averages can be supplied
	// directly and a non-positive phase would corrupt the timeline.
	if powerWeek < 1 {
		return nil, validationErrorf("cycle of %d days with %d bleed days leaves no power week", cycle, bleed)
	}

	day := DateOnly(start)
	bleedPhase := layOutPhase(models.PhaseBleed, day, bleed, models.ColorBleed)
	powerPhase := layOutPhase(models.PhasePowerWeek, bleedPhase.End.AddDate(0, 0, 1), powerWeek, models.ColorPowerWeek)
	crash1Phase := layOutPhase(models.PhaseCrash1, powerPhase.End.AddDate(0, 0, 1), Crash1Days, models.ColorCrash)
	nurturePhase := layOutPhase(models.PhaseNurture, crash1Phase.End.AddDate(0, 0, 1), NurtureDays, models.ColorNurture)
	crash2Phase := layOutPhase(models.PhaseCrash2, nurturePhase.End.AddDate(0, 0, 1), Crash2Days, models.ColorCrash)

	mainOvulationDayNum := bleed + powerWeek - 2
	mainDate := day.AddDate(0, 0, mainOvulationDayNum-1)

	fertileDays, fertileLogic := selectFertileWindow(variant, mainDate, bleedPhase, powerPhase)

	prediction := &Prediction{
		RoundedBleed:      bleed,
		RoundedCycle:      cycle,
		PowerWeekDays:     powerWeek,
		MainOvulationDate: mainDate,
		FertileDays:       fertileDays,
		Timeline:          []PhaseSegment{bleedPhase, powerPhase, crash1Phase, nurturePhase, crash2Phase},
		FertileLogic:      fertileLogic,
		Variant:           variant.Name,
	}

	if variant.RichFertileWindow {
		// Vacation mode overlaps the last two bleed days and all of the
		// power week. Annotation only; the five-phase partition stands.
		prediction.VacationMode = &DateSpan{
			Start: bleedPhase.End.AddDate(0, 0, -1),
			End:   powerPhase.End,
		}
	}

	return prediction, nil
}

func layOutPhase(name string, start time.Time, days int, color string) PhaseSegment {
	return PhaseSegment{
		Name:  name,
		Start: start,
		End:   start.AddDate(0, 0, days-1),
		Days:  days,
		Color: color,
	}
}

func selectFertileWindow(variant Variant, mainDate time.Time, bleedPhase PhaseSegment, powerPhase PhaseSegment) ([]time.Time, string) {
	if variant.RichFertileWindow && powerPhase.Days <= 5 {
		window := make([]time.Time, 0, powerPhase.Days)
		for i := 0; i < powerPhase.Days; i++ {
			window = append(window, powerPhase.Start.AddDate(0, 0, i))
		}
		return window, FertileLogicPowerWeek
	}

	// Four days before the main ovulation date, the date itself, one after.
	window := make([]time.Time, 0, 6)
	for offset := -4; offset <= 1; offset++ {
		window = append(window, mainDate.AddDate(0, 0, offset))
	}
	if !variant.RichFertileWindow {
		return window, FertileLogicFixed
	}

	filtered := make([]time.Time, 0, len(window))
	for _, candidate := range window {
		if candidate.After(bleedPhase.End) {
			filtered = append(filtered, candidate)
		}
	}
	return filtered, FertileLogicStandard
}
