package course

// Registration banner phrases as they appear on the calendar page
const (
	StatusAvailable = "REGISTRATION AVAILABLE"
	StatusLimited   = "LIMITED REGISTRATION AVAILABLE"
	StatusCancelled = "CANCELLED"
)

// Registration is the classified registration banner of a course.
// At most one of Available, Limited and Cancelled is true.
type Registration struct {
	Status    string
	Available bool
	Limited   bool
	Cancelled bool
}

// ClassifyRegistration matches a banner exactly against the known phrases.
// Unknown text is kept in Status with all flags false.
func ClassifyRegistration(status string) Registration {
	return Registration{
		Status:    status,
		Available: status == StatusAvailable,
		Limited:   status == StatusLimited,
		Cancelled: status == StatusCancelled,
	}
}
