/*
segment.go - Occupancy period reconstruction

Converts the raw assignment-history log plus the live assignment into an
ordered, non-overlapping sequence of tenancy periods. Consecutive periods
share their boundary instant: the day a tenant moves closes one period
and opens the next.

Segmentation is a pure function of the ordered history, the current
assignment, and the two boundary dates. No hidden state.
*/
package rent

// EffectiveEnd resolves the end boundary of the tenancy span: the explicit
// endingDate when set, else the instant the history nulled out the
// assignment, else "now" for a still-assigned tenant.
//
// The second return reports whether the end was inferred from history (the
// tenant is unassigned without an explicit termination), which the status
// classifier treats as Inactive.
func EffectiveEnd(s *TenantSnapshot, now Date) (Date, bool) {
	if s.EndingDate != nil {
		return *s.EndingDate, false
	}
	if s.PropertyID == nil {
		for i := len(s.History) - 1; i >= 0; i-- {
			if s.History[i].PropertyID == nil {
				return s.History[i].UpdatedAt, true
			}
		}
	}
	return now, false
}

// Segments reconstructs the tenancy periods for a snapshot as of now.
//
// With no history the whole span from startingDate to the effective end is
// one period under the live property (possibly nil, meaning never
// assigned). With history, each entry opens a period at its updatedAt and
// the next entry closes it; the last entry runs to the effective end. When
// the live property differs from the last logged entry, the live
// assignment supersedes the last entry's tail: a synthetic period from the
// last entry's instant to the effective end is appended under the live
// property.
//
// Adjacent periods over the same non-nil property are merged, and periods
// with non-positive duration are dropped (two changes on the same day
// would otherwise bill half a month for a moment of occupancy).
func Segments(s *TenantSnapshot, now Date) []TenancyPeriod {
	end, _ := EffectiveEnd(s, now)

	var periods []TenancyPeriod

	if len(s.History) == 0 {
		if s.StartingDate == nil {
			return nil
		}
		periods = append(periods, TenancyPeriod{
			PropertyID: s.PropertyID,
			StartDate:  *s.StartingDate,
			EndDate:    end,
		})
		return finishSegments(periods)
	}

	for i, entry := range s.History {
		p := TenancyPeriod{PropertyID: entry.PropertyID, StartDate: entry.UpdatedAt}
		if i+1 < len(s.History) {
			p.EndDate = s.History[i+1].UpdatedAt
		} else {
			p.EndDate = end
		}
		periods = append(periods, p)
	}

	last := s.History[len(s.History)-1]
	if !samePropertyRef(last.PropertyID, s.PropertyID) {
		// Live assignment postdates the log; it owns the tail of the span.
		periods[len(periods)-1].EndDate = last.UpdatedAt
		periods = append(periods, TenancyPeriod{
			PropertyID: s.PropertyID,
			StartDate:  last.UpdatedAt,
			EndDate:    end,
		})
	}

	return finishSegments(periods)
}

func finishSegments(periods []TenancyPeriod) []TenancyPeriod {
	merged := mergeSegments(periods)

	var out []TenancyPeriod
	for _, p := range merged {
		if DaysBetween(p.StartDate, p.EndDate) <= 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

func mergeSegments(periods []TenancyPeriod) []TenancyPeriod {
	var out []TenancyPeriod
	for _, p := range periods {
		if len(out) > 0 {
			prev := &out[len(out)-1]
			if prev.SameProperty(p) && p.StartDate.BeforeOrEqual(prev.EndDate) {
				if p.EndDate.After(prev.EndDate) {
					prev.EndDate = p.EndDate
				}
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func samePropertyRef(a, b *PropertyID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
