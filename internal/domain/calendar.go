package domain

const DateLayout = "2006-01-02"

// Exclusion marks a single calendar date as unusable for scheduling.
type Exclusion struct {
	ExclusionDate string // YYYY-MM-DD
	ExclusionType ExclusionType
	Reason        string
}

// AcademySchedule is a recurring weekly external commitment that blocks
// scheduler time on its weekday.
type AcademySchedule struct {
	DayOfWeek int // 0 = Sunday
	StartTime string
	EndTime   string
	Subject   string
}

// Block is a named recurring time window of default study time, used only
// when per-date availability data is not supplied.
type Block struct {
	DayOfWeek       int // 0 = Sunday
	BlockIndex      int
	StartTime       string
	EndTime         string
	DurationMinutes int
}

// CycleDay is one non-excluded or excluded date of the period with its
// position in the study/review cadence. Computed once per run.
type CycleDay struct {
	Date           string // YYYY-MM-DD
	DayType        DayType
	CycleDayNumber int // 1-based position within the cycle, 0 for exclusions
	CycleNumber    int // 1-based cycle index
}

// TimeRange is a clock-time window within one day.
type TimeRange struct {
	Start string // HH:MM
	End   string // HH:MM
}

// Minutes returns the window length in minutes, or 0 when malformed.
func (r TimeRange) Minutes() int {
	start, err1 := ParseClock(r.Start)
	end, err2 := ParseClock(r.End)
	if err1 != nil || err2 != nil || end <= start {
		return 0
	}
	return end - start
}

// TimeSlot is a typed segment of a date's timeline.
type TimeSlot struct {
	Type  SlotType
	Start string // HH:MM
	End   string // HH:MM
	Label string
}
