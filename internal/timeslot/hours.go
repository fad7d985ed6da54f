// Package timeslot turns a facility's free-text operating hours into bookable slots.
//
// Supported format: "<days> <HH:MM> - <HH:MM>", where <days> is either an inclusive
// range "Mon-Fri" or a list "Mon,Wed,Sat". Week wrap-around ranges ("Fri-Mon") and
// several time windows per day are not supported and are treated as malformed.
package timeslot

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ErrMalformedHours возвращается, если описание часов работы не удалось разобрать
var ErrMalformedHours = errors.New("timeslot: malformed operating hours")

// EndOfDay используется вместо "24:00"
const EndOfDay = 24*time.Hour - time.Millisecond

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

var timeRangeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})$`)

// Hours разобранное описание часов работы
type Hours struct {
	Days  [7]bool       // индекс = time.Weekday
	Start time.Duration // смещение от полуночи
	End   time.Duration // смещение от полуночи, не включительно
}

// IsOpenOn возвращает true, если день недели входит в расписание
func (h *Hours) IsOpenOn(day time.Weekday) bool {
	return h.Days[day]
}

// Parse разбирает описание вида "Mon-Fri 09:00 - 17:00"
func Parse(description string) (*Hours, error) {
	description = strings.TrimSpace(description)

	split := strings.IndexFunc(description, unicode.IsSpace)
	if split < 0 {
		return nil, fmt.Errorf("%w: expected days and time range in %q", ErrMalformedHours, description)
	}
	daysToken := description[:split]
	timeToken := strings.TrimSpace(description[split:])

	days, err := parseDays(daysToken)
	if err != nil {
		return nil, err
	}

	start, end, err := parseTimeRange(timeToken)
	if err != nil {
		return nil, err
	}

	return &Hours{Days: days, Start: start, End: end}, nil
}

func parseDays(token string) ([7]bool, error) {
	var days [7]bool

	if strings.Contains(token, ",") || !strings.Contains(token, "-") {
		for _, part := range strings.Split(token, ",") {
			day, err := lookupDay(part)
			if err != nil {
				return days, err
			}
			days[day] = true
		}
		return days, nil
	}

	bounds := strings.Split(token, "-")
	if len(bounds) != 2 {
		return days, fmt.Errorf("%w: bad day range %q", ErrMalformedHours, token)
	}
	from, err := lookupDay(bounds[0])
	if err != nil {
		return days, err
	}
	to, err := lookupDay(bounds[1])
	if err != nil {
		return days, err
	}
	if from > to {
		return days, fmt.Errorf("%w: wrap-around day range %q is not supported", ErrMalformedHours, token)
	}
	for d := from; d <= to; d++ {
		days[d] = true
	}
	return days, nil
}

func lookupDay(token string) (time.Weekday, error) {
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown weekday %q", ErrMalformedHours, token)
	}
	return day, nil
}

func parseTimeRange(token string) (time.Duration, time.Duration, error) {
	m := timeRangeRe.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: bad time range %q", ErrMalformedHours, token)
	}

	start, err := clockOffset(m[1], m[2], false)
	if err != nil {
		return 0, 0, err
	}
	end, err := clockOffset(m[3], m[4], true)
	if err != nil {
		return 0, 0, err
	}
	if start >= end {
		return 0, 0, fmt.Errorf("%w: start %s is not before end %s", ErrMalformedHours, m[1]+":"+m[2], m[3]+":"+m[4])
	}
	return start, end, nil
}

func clockOffset(hh, mm string, isEnd bool) (time.Duration, error) {
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)

	if isEnd && hours == 24 && minutes == 0 {
		return EndOfDay, nil
	}
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: invalid clock time %s:%s", ErrMalformedHours, hh, mm)
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}
