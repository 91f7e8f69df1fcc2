package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/ovella/internal/models"
)

// CycleAverages is recomputed from the full history on every request and is
// never persisted.
type CycleAverages struct {
	BleedAvg    int   `json:"bleed_avg"`
	CycleAvg    int   `json:"cycle_avg"`
	TotalCycles int   `json:"total_cycles"`
	CycleGaps   []int `json:"cycle_gaps"`
}

// ValidateBleedEntry returns the inclusive duration of one bleed episode or a
// ValidationError when it falls outside the plausible 3..10 day range.
func ValidateBleedEntry(start time.Time, end time.Time) (int, error) {
	duration := daysBetween(start, end) + 1
	if duration < models.MinBleedDays {
		return 0, validationErrorf("bleed duration %d days is too short (min %d days)", duration, models.MinBleedDays)
	}
	if duration > models.MaxBleedDays {
		return 0, validationErrorf("bleed duration %d days is too long (max %d days)", duration, models.MaxBleedDays)
	}
	return duration, nil
}

// ProcessHistory validates every recorded bleed interval and derives the
// average bleed duration and cycle length. Input order does not matter. A nil
// result with nil error means the history is empty; a single invalid entry
// fails the whole call.
func ProcessHistory(entries []models.BleedInterval, variant Variant) (*CycleAverages, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	sorted := make([]models.BleedInterval, 0, len(entries))
	sorted = append(sorted, entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	durations := make([]int, 0, len(sorted))
	for _, entry := range sorted {
		duration, err := ValidateBleedEntry(entry.StartDate, entry.EndDate)
		if err != nil {
			return nil, err
		}
		durations = append(durations, duration)
	}

	gaps := make([]int, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, daysBetween(sorted[i-1].StartDate, sorted[i].StartDate))
	}

	// A lone entry is reported exactly, with no averaging or rounding.
	bleedAvg := durations[0]
	if len(durations) > 1 {
		bleedAvg = variant.Rounding.RoundDays(meanInts(durations))
	}

	cycleAvg := models.DefaultCycleLength
	if len(gaps) > 0 {
		cycleAvg = CeilDays(meanInts(gaps))
	}

	return &CycleAverages{
		BleedAvg:    bleedAvg,
		CycleAvg:    cycleAvg,
		TotalCycles: len(sorted),
		CycleGaps:   gaps,
	}, nil
}

func meanInts(values []int) float64 {
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}
