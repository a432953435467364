package status

// Status is a record's position in its review lifecycle. Claims use
// {Pending, Approved, Rejected, Processing}; flight reservations use
// {Pending, Approved, Rejected, Booked}. Booked and Processing are set by
// external processes and are displayable but never reachable from here.
type Status string

const (
	Pending    Status = "Pending"
	Approved   Status = "Approved"
	Rejected   Status = "Rejected"
	Processing Status = "Processing"
	Booked     Status = "Booked"
)

var claimStatuses = map[Status]bool{
	Pending:    true,
	Approved:   true,
	Rejected:   true,
	Processing: true,
}

var flightStatuses = map[Status]bool{
	Pending:  true,
	Approved: true,
	Rejected: true,
	Booked:   true,
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal returns true once the status has left Pending; no further
// transition is ever offered from a terminal status.
func (s Status) IsTerminal() bool {
	return s != Pending
}

// ValidClaimStatus returns true if s belongs to the claim vocabulary.
func ValidClaimStatus(s Status) bool {
	return claimStatuses[s]
}

// ValidFlightStatus returns true if s belongs to the flight vocabulary.
func ValidFlightStatus(s Status) bool {
	return flightStatuses[s]
}
