package course

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCode(t *testing.T) {
	tests := []struct {
		full         string
		wantCode     string
		wantModifier string
	}{
		{"COSC1047EN", "COSC1047", "EN"},
		{"ADMN2606SA", "ADMN2606", "SA"},
		{"AB", "", "AB"},
		{"X", "", "X"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			code, modifier := SplitCode(tt.full)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantModifier, modifier)
			if len(tt.full) >= 2 {
				assert.Len(t, modifier, 2)
				assert.Equal(t, tt.full, code+modifier)
			}
		})
	}
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		wantCodeFull string
		wantName     string
	}{
		{
			name:         "simple title",
			title:        "COSC1047EN - Introduction to Computer Science I",
			wantCodeFull: "COSC1047EN",
			wantName:     "Introduction to Computer Science I",
		},
		{
			name:         "name containing separator",
			title:        "  HIST2906SA - Canada - The Early Years  ",
			wantCodeFull: "HIST2906SA",
			wantName:     "Canada-The Early Years",
		},
		{
			name:         "code only",
			title:        "MATH1036EN",
			wantCodeFull: "MATH1036EN",
			wantName:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codeFull, name := ParseTitle(tt.title)
			assert.Equal(t, tt.wantCodeFull, codeFull)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestClassifyRegistration(t *testing.T) {
	tests := []struct {
		status        string
		wantAvailable bool
		wantLimited   bool
		wantCancelled bool
	}{
		{"REGISTRATION AVAILABLE", true, false, false},
		{"LIMITED REGISTRATION AVAILABLE", false, true, false},
		{"CANCELLED", false, false, true},
		{"FULL", false, false, false},
		{"registration available", false, false, false},
		{"", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			reg := ClassifyRegistration(tt.status)
			assert.Equal(t, tt.status, reg.Status)
			assert.Equal(t, tt.wantAvailable, reg.Available)
			assert.Equal(t, tt.wantLimited, reg.Limited)
			assert.Equal(t, tt.wantCancelled, reg.Cancelled)
		})
	}
}

func TestNewCourse(t *testing.T) {
	c := NewCourse(Panel{
		Title:         "COSC1047EN - Introduction to Computer Science I",
		Registration:  "LIMITED REGISTRATION AVAILABLE",
		ScheduleLines: []string{"Jan 06 - Apr 11", "MON WED", "10:00 AM - 11:20 AM", "Location: SSM-EW205", ""},
		Staff:         []string{"Instructor: A. Smith", "Lecture, In Person"},
		Description:   "An introduction to programming.",
	})

	assert.Equal(t, "COSC1047EN", c.CourseCodeFull)
	assert.Equal(t, "COSC1047", c.CourseCode)
	assert.Equal(t, "EN", c.CourseCodeModifier)
	assert.Equal(t, "Introduction to Computer Science I", c.CourseName)
	assert.True(t, c.LimitedRegistration)
	assert.False(t, c.RegistrationAvailable)
	assert.False(t, c.Cancelled)
	require.NotNil(t, c.Runtime)
	assert.Equal(t, "Jan 06 - Apr 11", *c.Runtime)
	require.NotNil(t, c.Day)
	assert.Equal(t, "MON WED", *c.Day)
	require.NotNil(t, c.Time)
	assert.Equal(t, "10:00 AM - 11:20 AM", *c.Time)
	require.NotNil(t, c.Location)
	assert.Equal(t, "SSM-EW205", *c.Location)
	assert.Equal(t, "A. Smith", c.Instructor)
	assert.Nil(t, c.Coinstructor)
	require.NotNil(t, c.CourseType)
	assert.Equal(t, "Lecture", *c.CourseType)
	require.NotNil(t, c.DeliveryMethod)
	assert.Equal(t, "In Person", *c.DeliveryMethod)
	assert.False(t, c.Online)
	assert.Equal(t, "An introduction to programming.", c.Description)
}

func TestNewCourse_OnlineDelivery(t *testing.T) {
	c := NewCourse(Panel{
		Title:         "ONLN1000EN - Online Course",
		Registration:  "REGISTRATION AVAILABLE",
		ScheduleLines: []string{"Online"},
		Staff:         []string{"Instructor: B. Jones", "Lecture, Online"},
	})

	assert.True(t, c.Online)
	assert.True(t, c.RegistrationAvailable)
	assert.Nil(t, c.Runtime)
	assert.Nil(t, c.Day)
	assert.Nil(t, c.Time)
	assert.Nil(t, c.Location)
}

func TestCourse_JSONOmitsUnsetFields(t *testing.T) {
	c := NewCourse(Panel{
		Title:         "ONLN1000EN - Online Course",
		ScheduleLines: []string{"Online"},
		Staff:         []string{"Instructor: B. Jones"},
	})

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))

	for _, key := range []string{"runtime", "day", "time", "location", "coinstructor", "course_type", "delivery_method"} {
		assert.NotContains(t, fields, key)
	}
	for _, key := range []string{"course_code_full", "course_code", "course_code_modifier", "registration_status", "online", "instructor", "description"} {
		assert.Contains(t, fields, key)
	}
}

func TestScrapeResult(t *testing.T) {
	at := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	r := NewScrapeResult(at)

	assert.Equal(t, at.UnixMilli(), r.ScrapeDate)
	assert.NotNil(t, r.Campuses)
	assert.Zero(t, r.CourseCount())

	r.Campuses["SSM"] = &Campus{Terms: []TermCourses{
		{Code: "202601", Name: "Winter 2026", Courses: []*Course{{}, {}}},
		{Code: "202605", Name: "Spring 2026", Courses: []*Course{{}}},
	}}
	r.Campuses["ONL"] = &Campus{Terms: []TermCourses{{Code: "202601", Name: "Winter 2026"}}}

	assert.Equal(t, 3, r.CourseCount())

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "failures")
}
