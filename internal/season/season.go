package season

import "time"

type Season string

const (
	Summer  Season = "summer"
	OffPeak Season = "off"
	Winter  Season = "winter"
	Holiday Season = "holiday"
)

// All lists seasons in the order they are reported.
var All = []Season{Summer, OffPeak, Winter, Holiday}

func (s Season) Valid() bool {
	switch s {
	case Summer, OffPeak, Winter, Holiday:
		return true
	default:
		return false
	}
}

// Classify maps a calendar date to its pricing season. Rules are checked in
// order and the first match wins, so Jan 1-8 and Apr 1-7 are holiday even
// though their months are otherwise off-peak.
func Classify(date time.Time) Season {
	month := date.Month()
	day := date.Day()

	switch {
	case isHoliday(month, day):
		return Holiday
	case month >= time.May && month <= time.October:
		return Summer
	case isOffPeak(month, day):
		return OffPeak
	default:
		return Winter
	}
}

func isHoliday(month time.Month, day int) bool {
	return (month == time.April && day <= 7) || //nolint:gomnd
		(month == time.December && day >= 21) || //nolint:gomnd
		(month == time.January && day <= 8) //nolint:gomnd
}

func isOffPeak(month time.Month, day int) bool {
	return (month == time.April && day >= 8) || //nolint:gomnd
		(month == time.November && day <= 20) || //nolint:gomnd
		month <= time.March
}
