package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStaff(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name       string
		fragments  []string
		want       Staff
		wantOnline bool
	}{
		{
			name:      "two fragments",
			fragments: []string{"Instructor: A. Smith", "Lecture, In Person"},
			want: Staff{
				Instructor:     "A. Smith",
				CourseType:     str("Lecture"),
				DeliveryMethod: str("In Person"),
			},
		},
		{
			name:      "online delivery",
			fragments: []string{"Instructor: A. Smith", "Lecture, Online"},
			want: Staff{
				Instructor:     "A. Smith",
				CourseType:     str("Lecture"),
				DeliveryMethod: str("Online"),
			},
			wantOnline: true,
		},
		{
			name:      "three fragments with co-instructor",
			fragments: []string{"Instructor: A. Smith", "Co-Instructor: B. Jones", "Seminar, Hybrid"},
			want: Staff{
				Instructor:     "A. Smith",
				Coinstructor:   str("B. Jones"),
				CourseType:     str("Seminar"),
				DeliveryMethod: str("Hybrid"),
			},
		},
		{
			name:      "single fragment",
			fragments: []string{"Instructor: TBA"},
			want:      Staff{Instructor: "TBA"},
		},
		{
			name:      "four fragments leave type unset",
			fragments: []string{"Instructor: A. Smith", "x", "y", "z"},
			want:      Staff{Instructor: "A. Smith"},
		},
		{
			name:      "type without delivery",
			fragments: []string{"Instructor: A. Smith", "Lecture"},
			want:      Staff{Instructor: "A. Smith", CourseType: str("Lecture")},
		},
		{
			name:      "online must match exactly",
			fragments: []string{"Instructor: A. Smith", "Lecture, Online Synchronous"},
			want: Staff{
				Instructor:     "A. Smith",
				CourseType:     str("Lecture"),
				DeliveryMethod: str("Online Synchronous"),
			},
		},
		{
			name:      "extra comma parts are ignored",
			fragments: []string{"Instructor: A. Smith", "Lecture, Online, Synchronous"},
			want: Staff{
				Instructor:     "A. Smith",
				CourseType:     str("Lecture"),
				DeliveryMethod: str("Online"),
			},
		},
		{
			name:      "type kept as written",
			fragments: []string{"Instructor: A. Smith", "Lecture , In Person"},
			want: Staff{
				Instructor:     "A. Smith",
				CourseType:     str("Lecture "),
				DeliveryMethod: str("In Person"),
			},
		},
		{
			name:      "no fragments",
			fragments: nil,
			want:      Staff{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStaff(tt.fragments)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOnline, got.IsOnline())
		})
	}
}
