// Package participants holds the dashboard's participant records and the two
// pure functions the listing is built on: Filter and Classify.
package participants

// Participant is one registration as shown on the dashboard. Every field is
// display text; Date is an ISO calendar date.
type Participant struct {
	ID     int    `yaml:"id"`
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Event  string `yaml:"event"`
	Status string `yaml:"status"`
	Date   string `yaml:"date"`
}
