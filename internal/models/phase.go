package models

const (
	PhaseBleed        = "bleed"
	PhasePowerWeek    = "power_week"
	PhaseVacationMode = "vacation_mode"
	PhaseCrash1       = "crash_1"
	PhaseNurture      = "nurture"
	PhaseCrash2       = "crash_2"
)

// Display colors for timeline rows.
const (
	ColorBleed     = "#ffcccc"
	ColorPowerWeek = "#ffffcc"
	ColorCrash     = "#e6e6e6"
	ColorNurture   = "#ccffcc"
)

// ARGB colors of the downloadable calculation document. Clients consume the
// exported file, so these values must stay byte-for-byte stable.
const (
	ExportColorBleedWeek     = "0xFFE91E63"
	ExportColorPowerWeek     = "0xFF68D20D"
	ExportColorVacationMode  = "0xFFFFFF00"
	ExportColorOvulationDays = "0xFFFFC0CB"
	ExportColorCrashRound    = "0xFFFFC107"
	ExportColorNurtureWeek   = "0xFF8E8E8E"
)
