package course

import (
	"strings"
	"unicode"
)

// LineKind tags the role of a single schedule line
type LineKind int

const (
	LineBlank LineKind = iota
	LineDay
	LineTime
	LineLocation
	LineRuntime
)

func (k LineKind) String() string {
	switch k {
	case LineDay:
		return "day"
	case LineTime:
		return "time"
	case LineLocation:
		return "location"
	case LineRuntime:
		return "runtime"
	default:
		return "blank"
	}
}

const (
	// onlineSchedule is the whole schedule block of a course without meetings
	onlineSchedule = "Online"

	locationPrefix = "Location:"
	// locationLeadIn is the fixed lead-in dropped from location lines, "Location: "
	locationLeadIn = 10
)

var dayAbbreviations = []string{"MON", "TUE", "WED", "THU", "FRI"}

// Schedule holds the meeting fields of a course. Fields are nil when unknown.
type Schedule struct {
	Runtime  *string
	Day      *string
	Time     *string
	Location *string
}

// ClassifyLine decides the role of one schedule line. The rules are tried in order:
// a day abbreviation anywhere, a leading digit, the "Location:" prefix, and finally
// runtime for anything else. Empty lines are LineBlank.
func ClassifyLine(line string) (LineKind, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return LineBlank, ""
	}

	for _, day := range dayAbbreviations {
		if strings.Contains(line, day) {
			return LineDay, line
		}
	}

	if unicode.IsDigit(rune(line[0])) {
		return LineTime, line
	}

	if strings.HasPrefix(line, locationPrefix) {
		if len(line) <= locationLeadIn {
			return LineLocation, ""
		}
		return LineLocation, line[locationLeadIn:]
	}

	return LineRuntime, line
}

// ParseSchedule classifies the lines of a schedule block.
//
// The block is expected to end with a line break, so when more than one line is
// present the trailing line is dropped. A block reading exactly "Online" leaves every
// field unset. When several lines classify into the same field the last one wins.
func ParseSchedule(lines []string) Schedule {
	var s Schedule

	if len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}

	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimSpace(l)
	}
	if strings.Join(trimmed, "") == onlineSchedule {
		return s
	}

	for _, l := range trimmed {
		kind, value := ClassifyLine(l)
		switch kind {
		case LineDay:
			s.Day = strPtr(value)
		case LineTime:
			s.Time = strPtr(value)
		case LineLocation:
			s.Location = strPtr(value)
		case LineRuntime:
			s.Runtime = strPtr(value)
		}
	}

	return s
}
