package domain

type ContentType string

const (
	ContentBook    ContentType = "book"
	ContentLecture ContentType = "lecture"
	ContentCustom  ContentType = "custom"
)

// ValidContentTypes is the canonical set of accepted content type strings.
var ValidContentTypes = map[string]bool{
	"book": true, "lecture": true, "custom": true,
}

type DayType string

const (
	DayStudy     DayType = "study"
	DayReview    DayType = "review"
	DayExclusion DayType = "exclusion"
)

type SubjectType string

const (
	SubjectStrategy SubjectType = "strategy"
	SubjectWeakness SubjectType = "weakness"
)

// SlotType classifies a named segment of a day's timeline. Only SlotStudy
// segments accept scheduled work; the rest block time.
type SlotType string

const (
	SlotStudy     SlotType = "study"
	SlotLunch     SlotType = "lunch"
	SlotAcademy   SlotType = "academy"
	SlotTravel    SlotType = "travel"
	SlotSelfStudy SlotType = "self_study"
)

// SchedulerKind selects the cadence policy. KindDefault explicitly means
// "no recognized cadence policy": every usable day is a study day and no
// review days are produced.
type SchedulerKind string

const (
	KindTimetable1730 SchedulerKind = "timetable_1730"
	KindDefault       SchedulerKind = "default"
)

type ExclusionType string

const (
	ExclusionHoliday  ExclusionType = "holiday"
	ExclusionPersonal ExclusionType = "personal"
	ExclusionAcademy  ExclusionType = "academy"
	ExclusionOther    ExclusionType = "other"
)
