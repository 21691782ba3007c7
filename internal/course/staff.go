package course

import (
	"strings"
)

const (
	// instructorLabel is the length of the "Instructor: " label
	instructorLabel = 12
	// coinstructorLabel is the length of the co-instructor label
	coinstructorLabel = 14

	deliveryOnline = "Online"
)

// Staff is the parsed instructor/type block of a course panel
type Staff struct {
	Instructor     string
	Coinstructor   *string
	CourseType     *string
	DeliveryMethod *string
}

// IsOnline reports whether the delivery method is exactly "Online"
func (s Staff) IsOnline() bool {
	return s.DeliveryMethod != nil && *s.DeliveryMethod == deliveryOnline
}

// ParseStaff parses the trimmed text fragments of the instructor block.
//
// Two fragments are instructor and "type, delivery"; three fragments carry a
// co-instructor in the middle. Any other count only yields the instructor. The type
// fragment is split on commas: the first part is the type as written, the second part
// trimmed is the delivery method and anything after it is ignored.
func ParseStaff(fragments []string) Staff {
	var s Staff
	if len(fragments) == 0 {
		return s
	}

	s.Instructor = stripLabel(fragments[0], instructorLabel)

	var typeFragment string
	switch len(fragments) {
	case 3:
		s.Coinstructor = strPtr(stripLabel(fragments[1], coinstructorLabel))
		typeFragment = fragments[2]
	case 2:
		typeFragment = fragments[1]
	default:
		return s
	}

	parts := strings.Split(typeFragment, ",")
	s.CourseType = strPtr(parts[0])
	if len(parts) > 1 {
		s.DeliveryMethod = strPtr(strings.TrimSpace(parts[1]))
	}

	return s
}

// stripLabel drops a fixed-width label from the front of a fragment
func stripLabel(fragment string, width int) string {
	if len(fragment) <= width {
		return ""
	}
	return strings.TrimSpace(fragment[width:])
}
