package participants

// Status is the presentational category of a participant's status label.
type Status int

const (
	StatusNeutral Status = iota
	StatusConfirmed
	StatusPending
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusConfirmed:
		return "confirmed"
	case StatusPending:
		return "pending"
	case StatusCancelled:
		return "cancelled"
	default:
		return "neutral"
	}
}

// Classify maps a status label to its category. Labels outside the known set
// fall back to StatusNeutral.
func Classify(label string) Status {
	switch label {
	case "Confirmé", "Confirmed":
		return StatusConfirmed
	case "En attente", "Pending":
		return StatusPending
	case "Annulé", "Cancelled":
		return StatusCancelled
	default:
		return StatusNeutral
	}
}
