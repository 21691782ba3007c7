package course

import (
	"strings"
)

// Term identifies one academic term offered at a campus
type Term struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Course represents a single course panel from the calendar page
type Course struct {
	CourseCodeFull        string  `json:"course_code_full"`
	CourseCode            string  `json:"course_code"`
	CourseCodeModifier    string  `json:"course_code_modifier"`
	CourseName            string  `json:"course_name"`
	RegistrationAvailable bool    `json:"registration_available"`
	LimitedRegistration   bool    `json:"limited_registration"`
	Cancelled             bool    `json:"cancelled"`
	RegistrationStatus    string  `json:"registration_status"`
	Online                bool    `json:"online"`
	Runtime               *string `json:"runtime,omitempty"`
	Day                   *string `json:"day,omitempty"`
	Time                  *string `json:"time,omitempty"`
	Location              *string `json:"location,omitempty"`
	Instructor            string  `json:"instructor"`
	Coinstructor          *string `json:"coinstructor,omitempty"`
	CourseType            *string `json:"course_type,omitempty"`
	DeliveryMethod        *string `json:"delivery_method,omitempty"`
	Description           string  `json:"description"`
}

// Panel holds the raw texts pulled out of one course panel
type Panel struct {
	Title         string   // e.g. "COSC1047EN - Introduction to Computer Science I"
	Registration  string   // registration banner text
	ScheduleLines []string // schedule block split on line breaks
	Staff         []string // trimmed instructor/type fragments
	Description   string
}

// titleSeparator separates the course code from the course name in a panel title
const titleSeparator = " - "

// modifierLength is the number of trailing characters that form the code modifier
const modifierLength = 2

// SplitCode splits a full course code into its base code and two-character modifier.
// Codes shorter than the modifier yield an empty base code.
func SplitCode(full string) (code, modifier string) {
	if len(full) < modifierLength {
		return "", full
	}
	cut := len(full) - modifierLength
	return full[:cut], full[cut:]
}

// ParseTitle splits a panel title into the full course code and the course name
func ParseTitle(title string) (codeFull, name string) {
	parts := strings.Split(strings.TrimSpace(title), titleSeparator)
	return parts[0], strings.TrimSpace(strings.Join(parts[1:], "-"))
}

// NewCourse builds a Course from the raw texts of a panel
func NewCourse(p Panel) *Course {
	codeFull, name := ParseTitle(p.Title)
	code, modifier := SplitCode(codeFull)
	reg := ClassifyRegistration(p.Registration)
	sched := ParseSchedule(p.ScheduleLines)
	staff := ParseStaff(p.Staff)

	return &Course{
		CourseCodeFull:        codeFull,
		CourseCode:            code,
		CourseCodeModifier:    modifier,
		CourseName:            name,
		RegistrationAvailable: reg.Available,
		LimitedRegistration:   reg.Limited,
		Cancelled:             reg.Cancelled,
		RegistrationStatus:    reg.Status,
		Online:                staff.IsOnline(),
		Runtime:               sched.Runtime,
		Day:                   sched.Day,
		Time:                  sched.Time,
		Location:              sched.Location,
		Instructor:            staff.Instructor,
		Coinstructor:          staff.Coinstructor,
		CourseType:            staff.CourseType,
		DeliveryMethod:        staff.DeliveryMethod,
		Description:           p.Description,
	}
}

// strPtr returns a pointer to a copy of s
func strPtr(s string) *string {
	return &s
}
