package grocery

import (
	"fmt"
	"time"

	"github.com/platewise/backend/internal/models"
)

// Split rules accepted by Compute.
const (
	RuleSunWedThuSun = "Sun-Wed_Thu-Sun"
	RuleCustom       = "custom"
)

func addDays(date string, n int) (string, error) {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(models.DateLayout), nil
}

// rangeContains relies on ISO dates comparing lexicographically in calendar
// order.
func rangeContains(r models.DateRange, date string) bool {
	return r.From <= date && date <= r.To
}

// Split partitions the planned week into tripCount contiguous, disjoint date
// ranges.
//
// The default two-trip rule follows the calendar shopping week rather than
// the Monday-anchored storage week: the first trip runs from the Sunday
// before startDate through Wednesday, the second from Thursday through the
// week's own Sunday. Every planner date still lands in exactly one trip.
// Any other count under the default rule chunks the Monday week itself,
// earliest chunk absorbing the remainder days.
func Split(startDate string, tripCount int, rule string, custom []models.DateRange) ([]models.DateRange, error) {
	if _, err := time.Parse(models.DateLayout, startDate); err != nil {
		return nil, &InvalidSplitError{Reason: fmt.Sprintf("malformed week start date %q", startDate)}
	}
	if tripCount < 1 {
		return nil, &InvalidSplitError{Reason: fmt.Sprintf("trip count must be at least 1, got %d", tripCount)}
	}

	endDate, _ := addDays(startDate, 6)

	switch rule {
	case RuleCustom:
		return validateCustom(startDate, endDate, tripCount, custom)
	case "", RuleSunWedThuSun:
	default:
		return nil, &InvalidSplitError{Reason: fmt.Sprintf("unknown split rule %q", rule)}
	}

	if tripCount == 1 {
		return []models.DateRange{{From: startDate, To: endDate}}, nil
	}

	if tripCount == 2 {
		sunday, _ := addDays(startDate, -1)
		wednesday, _ := addDays(startDate, 2)
		thursday, _ := addDays(startDate, 3)
		return []models.DateRange{
			{From: sunday, To: wednesday},
			{From: thursday, To: endDate},
		}, nil
	}

	if tripCount > 7 {
		return nil, &InvalidSplitError{Reason: fmt.Sprintf("cannot split 7 days into %d trips", tripCount)}
	}

	size := 7 / tripCount
	remainder := 7 % tripCount
	ranges := make([]models.DateRange, 0, tripCount)
	offset := 0
	for i := 0; i < tripCount; i++ {
		length := size
		if i == 0 {
			length += remainder
		}
		from, _ := addDays(startDate, offset)
		to, _ := addDays(startDate, offset+length-1)
		ranges = append(ranges, models.DateRange{From: from, To: to})
		offset += length
	}
	return ranges, nil
}

// validateCustom checks caller-supplied ranges: correct count, well-formed,
// contiguous, and together covering exactly [startDate, startDate+6].
func validateCustom(startDate, endDate string, tripCount int, ranges []models.DateRange) ([]models.DateRange, error) {
	if len(ranges) != tripCount {
		return nil, &InvalidSplitError{Reason: fmt.Sprintf("expected %d custom ranges, got %d", tripCount, len(ranges))}
	}
	for _, r := range ranges {
		if _, err := time.Parse(models.DateLayout, r.From); err != nil {
			return nil, &InvalidSplitError{Reason: fmt.Sprintf("malformed range start %q", r.From)}
		}
		if _, err := time.Parse(models.DateLayout, r.To); err != nil {
			return nil, &InvalidSplitError{Reason: fmt.Sprintf("malformed range end %q", r.To)}
		}
		if r.To < r.From {
			return nil, &InvalidSplitError{Reason: fmt.Sprintf("range %s..%s ends before it starts", r.From, r.To)}
		}
	}
	if ranges[0].From != startDate {
		return nil, &InvalidSplitError{Reason: fmt.Sprintf("gap before %s: week starts at %s", ranges[0].From, startDate)}
	}
	for i := 1; i < len(ranges); i++ {
		next, _ := addDays(ranges[i-1].To, 1)
		if ranges[i].From > next {
			return nil, &InvalidSplitError{Reason: fmt.Sprintf("gap between %s and %s", ranges[i-1].To, ranges[i].From)}
		}
		if ranges[i].From < next {
			return nil, &InvalidSplitError{Reason: fmt.Sprintf("overlap between %s and %s", ranges[i-1].To, ranges[i].From)}
		}
	}
	if last := ranges[len(ranges)-1].To; last != endDate {
		return nil, &InvalidSplitError{Reason: fmt.Sprintf("ranges end at %s, week ends at %s", last, endDate)}
	}
	return ranges, nil
}

// assignTrip finds the trip whose range contains the item's date.
func assignTrip(ranges []models.DateRange, item *models.PlannerItem) (int, error) {
	for i, r := range ranges {
		if rangeContains(r, item.Date) {
			return i, nil
		}
	}
	return 0, &UnassignedItemError{PlannerItemID: item.ID, Date: item.Date}
}
