package storage

import (
	"fmt"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/pfrederiksen/au-courses/internal/course"
)

// CourseRow is one course flattened together with its campus and term
type CourseRow struct {
	Campus                string `csv:"campus"`
	TermCode              string `csv:"term_code"`
	TermName              string `csv:"term_name"`
	CourseCodeFull        string `csv:"course_code_full"`
	CourseCode            string `csv:"course_code"`
	CourseCodeModifier    string `csv:"course_code_modifier"`
	CourseName            string `csv:"course_name"`
	RegistrationStatus    string `csv:"registration_status"`
	RegistrationAvailable bool   `csv:"registration_available"`
	LimitedRegistration   bool   `csv:"limited_registration"`
	Cancelled             bool   `csv:"cancelled"`
	Online                bool   `csv:"online"`
	Runtime               string `csv:"runtime"`
	Day                   string `csv:"day"`
	Time                  string `csv:"time"`
	Location              string `csv:"location"`
	Instructor            string `csv:"instructor"`
	Coinstructor          string `csv:"coinstructor"`
	CourseType            string `csv:"course_type"`
	DeliveryMethod        string `csv:"delivery_method"`
	Description           string `csv:"description"`
}

// Rows flattens a result into CSV rows. Campuses are sorted by code, terms and
// courses keep their page order.
func Rows(result *course.ScrapeResult) []*CourseRow {
	campuses := make([]string, 0, len(result.Campuses))
	for code := range result.Campuses {
		campuses = append(campuses, code)
	}
	sort.Strings(campuses)

	rows := make([]*CourseRow, 0, result.CourseCount())
	for _, code := range campuses {
		for _, term := range result.Campuses[code].Terms {
			for _, c := range term.Courses {
				rows = append(rows, &CourseRow{
					Campus:                code,
					TermCode:              term.Code,
					TermName:              term.Name,
					CourseCodeFull:        c.CourseCodeFull,
					CourseCode:            c.CourseCode,
					CourseCodeModifier:    c.CourseCodeModifier,
					CourseName:            c.CourseName,
					RegistrationStatus:    c.RegistrationStatus,
					RegistrationAvailable: c.RegistrationAvailable,
					LimitedRegistration:   c.LimitedRegistration,
					Cancelled:             c.Cancelled,
					Online:                c.Online,
					Runtime:               deref(c.Runtime),
					Day:                   deref(c.Day),
					Time:                  deref(c.Time),
					Location:              deref(c.Location),
					Instructor:            c.Instructor,
					Coinstructor:          deref(c.Coinstructor),
					CourseType:            deref(c.CourseType),
					DeliveryMethod:        deref(c.DeliveryMethod),
					Description:           c.Description,
				})
			}
		}
	}
	return rows
}

// WriteCSV writes one row per course to path, replacing any existing file
func WriteCSV(path string, result *course.ScrapeResult) error {
	path, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := gocsv.MarshalFile(Rows(result), f); err != nil {
		f.Close() // nolint:errcheck
		return fmt.Errorf("%w: encoding csv: %v", ErrWrite, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
