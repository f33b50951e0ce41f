// Package registration validates and submits the event registration form.
//
// Nothing is stored: a submission waits a fixed delay, is written to the
// debug log and acknowledged with a Receipt.
package registration

// Form is the registration form as submitted. Field names match the form
// inputs and the Datastar signals that back them.
type Form struct {
	FirstName string `form:"firstName" json:"firstName" validate:"min=2"`
	LastName  string `form:"lastName" json:"lastName" validate:"min=2"`
	Email     string `form:"email" json:"email" validate:"email"`
	Phone     string `form:"phone" json:"phone" validate:"min=10"`
	BirthDate string `form:"birthDate" json:"birthDate" validate:"required"`
	Event     string `form:"event" json:"event" validate:"required,oneof=conference workshop seminar exhibition"`
}

// Field names, as used in Errors and in the rendered form.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldBirthDate = "birthDate"
	FieldEvent     = "event"
)

// Event is one of the fixed options of the event selector.
type Event struct {
	Value    string
	LabelKey string
}

var events = []Event{
	{Value: "conference", LabelKey: "event.conference"},
	{Value: "workshop", LabelKey: "event.workshop"},
	{Value: "seminar", LabelKey: "event.seminar"},
	{Value: "exhibition", LabelKey: "event.exhibition"},
}

// Events returns the selectable events in display order.
func Events() []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}
