package dates

// Urgency classifies how close a deadline is. Statistics and row styling both
// depend on these boundaries.
type Urgency int

const (
	Expired Urgency = iota
	Urgent
	Warning
	Normal
)

const (
	urgentMaxDays  = 7
	warningMaxDays = 14
)

// Classify maps days left to an urgency bucket: <0 expired, 0..7 urgent,
// 8..14 warning, otherwise normal.
func Classify(days int) Urgency {
	switch {
	case days < 0:
		return Expired
	case days <= urgentMaxDays:
		return Urgent
	case days <= warningMaxDays:
		return Warning
	default:
		return Normal
	}
}

func (u Urgency) String() string {
	switch u {
	case Expired:
		return "expired"
	case Urgent:
		return "urgent"
	case Warning:
		return "warning"
	case Normal:
		return "normal"
	default:
		return "unknown"
	}
}

// Label is the statistics label for the bucket.
func (u Urgency) Label() string {
	switch u {
	case Urgent:
		return "urgent (up to 7 days)"
	case Warning:
		return "warning (8-14 days)"
	case Normal:
		return "normal (15+ days)"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// ReportOrder is the fixed order in which urgency buckets are reported.
var ReportOrder = []Urgency{Urgent, Warning, Normal, Expired}
