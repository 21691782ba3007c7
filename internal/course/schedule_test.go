package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line      string
		wantKind  LineKind
		wantValue string
	}{
		{"MON", LineDay, "MON"},
		{"TUE THU", LineDay, "TUE THU"},
		{"  FRI  ", LineDay, "FRI"},
		{"10:00 AM - 11:20 AM", LineTime, "10:00 AM - 11:20 AM"},
		{"6:00 PM", LineTime, "6:00 PM"},
		{"Location: Room 202", LineLocation, "Room 202"},
		{"Location: SSM-EW205", LineLocation, "SSM-EW205"},
		{"Location:", LineLocation, ""},
		{"Jan 06 - Apr 11", LineRuntime, "Jan 06 - Apr 11"},
		{"Session 1", LineRuntime, "Session 1"},
		{"", LineBlank, ""},
		{"   ", LineBlank, ""},
		// Day rule wins over the others
		{"Location: MONTREAL", LineDay, "Location: MONTREAL"},
		{"1 MON", LineDay, "1 MON"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kind, value := ClassifyLine(tt.line)
			assert.Equal(t, tt.wantKind, kind, "kind %s", kind)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "day", LineDay.String())
	assert.Equal(t, "time", LineTime.String())
	assert.Equal(t, "location", LineLocation.String())
	assert.Equal(t, "runtime", LineRuntime.String())
	assert.Equal(t, "blank", LineBlank.String())
}

func TestParseSchedule(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name  string
		lines []string
		want  Schedule
	}{
		{
			name:  "day time location",
			lines: []string{"MON", "10:00 AM", "Location: Room 202", ""},
			want:  Schedule{Day: str("MON"), Time: str("10:00 AM"), Location: str("Room 202")},
		},
		{
			name:  "order does not matter",
			lines: []string{"Location: Room 202", "10:00 AM", "MON", ""},
			want:  Schedule{Day: str("MON"), Time: str("10:00 AM"), Location: str("Room 202")},
		},
		{
			name:  "all four fields",
			lines: []string{"Jan 06 - Apr 11", "TUE THU", "1:00 PM - 2:20 PM", "Location: BRA-101", ""},
			want: Schedule{
				Runtime:  str("Jan 06 - Apr 11"),
				Day:      str("TUE THU"),
				Time:     str("1:00 PM - 2:20 PM"),
				Location: str("BRA-101"),
			},
		},
		{
			name:  "online single line",
			lines: []string{"Online"},
			want:  Schedule{},
		},
		{
			name:  "online with trailing line",
			lines: []string{"Online", ""},
			want:  Schedule{},
		},
		{
			name:  "online with surrounding whitespace",
			lines: []string{"  Online  ", "\n"},
			want:  Schedule{},
		},
		{
			name:  "last line per field wins",
			lines: []string{"MON", "WED", "9:00 AM", ""},
			want:  Schedule{Day: str("WED"), Time: str("9:00 AM")},
		},
		{
			name:  "trailing line dropped even when not empty",
			lines: []string{"MON", "9:00 AM"},
			want:  Schedule{Day: str("MON")},
		},
		{
			name:  "single non-online line kept",
			lines: []string{"TBA"},
			want:  Schedule{Runtime: str("TBA")},
		},
		{
			name:  "blank lines ignored",
			lines: []string{"MON", "", "9:00 AM", ""},
			want:  Schedule{Day: str("MON"), Time: str("9:00 AM")},
		},
		{
			name:  "no lines",
			lines: nil,
			want:  Schedule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSchedule(tt.lines))
		})
	}
}
