package importer

import (
	"fmt"

	"github.com/dhlim/plancycle/internal/domain"
	"github.com/dhlim/plancycle/internal/scheduler"
)

// Convert transforms a validated plan file into a scheduler context.
// Call ValidatePlanFile first; Convert assumes the file is valid.
func Convert(plan *PlanFile) (*scheduler.Context, error) {
	ctx := &scheduler.Context{
		PeriodStart: plan.Period.Start,
		PeriodEnd:   plan.Period.End,
		Kind:        convertKind(plan.Kind),
	}

	for _, e := range plan.Exclusions {
		ctx.Exclusions = append(ctx.Exclusions, domain.Exclusion{
			ExclusionDate: e.Date,
			ExclusionType: domain.ExclusionType(e.Type),
			Reason:        e.Reason,
		})
	}
	for _, a := range plan.AcademySchedules {
		ctx.AcademySchedules = append(ctx.AcademySchedules, domain.AcademySchedule{
			DayOfWeek: a.DayOfWeek,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
			Subject:   a.Subject,
		})
	}
	for _, b := range plan.Blocks {
		start, _ := domain.ParseClock(b.StartTime)
		end, _ := domain.ParseClock(b.EndTime)
		ctx.Blocks = append(ctx.Blocks, domain.Block{
			DayOfWeek:       b.DayOfWeek,
			BlockIndex:      b.BlockIndex,
			StartTime:       b.StartTime,
			EndTime:         b.EndTime,
			DurationMinutes: end - start,
		})
	}

	for _, c := range plan.Contents {
		item, err := domain.NewContentItem(domain.ContentType(c.ContentType), c.ContentID, c.StartRange, c.EndRange)
		if err != nil {
			return nil, fmt.Errorf("converting content: %w", err)
		}
		item.Subject = c.Subject
		item.SubjectCategory = c.SubjectCategory
		item.Chapter = c.Chapter
		ctx.Contents = append(ctx.Contents, item)
	}

	if len(plan.Durations) > 0 {
		ctx.Durations = make(map[string]*domain.ContentDuration, len(plan.Durations))
		for _, d := range plan.Durations {
			info := &domain.ContentDuration{
				ContentID:       d.ContentID,
				ContentType:     domain.ContentType(d.ContentType),
				TotalPages:      d.TotalPages,
				DurationMin:     d.DurationMin,
				TotalPageOrTime: d.TotalPageOrTime,
			}
			for _, ep := range d.Episodes {
				info.Episodes = append(info.Episodes, domain.EpisodeDuration{
					EpisodeNumber: ep.EpisodeNumber,
					DurationMin:   ep.DurationMin,
				})
			}
			ctx.Durations[d.ContentID] = info
		}
	}

	if len(plan.RiskIndex) > 0 {
		ctx.RiskIndex = make(map[string]domain.RiskIndex, len(plan.RiskIndex))
		for subject, score := range plan.RiskIndex {
			ctx.RiskIndex[domain.NormalizeSubject(subject)] = domain.RiskIndex{RiskScore: score}
		}
	}

	if len(plan.DateRanges) > 0 {
		ctx.DateRanges = make(map[string][]domain.TimeRange, len(plan.DateRanges))
		for date, ranges := range plan.DateRanges {
			for _, r := range ranges {
				ctx.DateRanges[date] = append(ctx.DateRanges[date], domain.TimeRange{Start: r.Start, End: r.End})
			}
		}
	}
	if len(plan.DateSlots) > 0 {
		ctx.DateSlots = make(map[string][]domain.TimeSlot, len(plan.DateSlots))
		for date, slots := range plan.DateSlots {
			for _, s := range slots {
				ctx.DateSlots[date] = append(ctx.DateSlots[date], domain.TimeSlot{
					Type:  domain.SlotType(s.Type),
					Start: s.Start,
					End:   s.End,
					Label: s.Label,
				})
			}
		}
	}

	ctx.Options = convertOptions(plan.Options)
	return ctx, nil
}

// convertKind maps the plan file's kind string onto the closed kind sum.
// Empty means the caller asked for no cadence policy.
func convertKind(kind string) domain.SchedulerKind {
	if kind == string(domain.KindTimetable1730) {
		return domain.KindTimetable1730
	}
	return domain.KindDefault
}

func convertOptions(o *OptionsImport) scheduler.Options {
	if o == nil {
		return scheduler.Options{}
	}

	opts := scheduler.Options{
		StudyDays:        domain.IntFromPtrWithDefault(0, o.StudyDays),
		ReviewDays:       domain.IntFromPtrWithDefault(0, o.ReviewDays),
		WeakSubjectFocus: domain.BoolFromPtrWithDefault(false, o.WeakSubjectFocus),
	}

	for _, a := range o.SubjectAllocations {
		opts.SubjectAllocations = append(opts.SubjectAllocations, scheduler.SubjectAllocation{
			SubjectID:   a.SubjectID,
			SubjectName: a.SubjectName,
			SubjectType: domain.SubjectType(a.SubjectType),
			WeeklyDays:  a.WeeklyDays,
		})
	}
	for _, a := range o.ContentAllocations {
		opts.ContentAllocations = append(opts.ContentAllocations, scheduler.ContentAllocation{
			ContentType: domain.ContentType(a.ContentType),
			ContentID:   a.ContentID,
			SubjectType: domain.SubjectType(a.SubjectType),
			WeeklyDays:  a.WeeklyDays,
		})
	}

	return opts
}
