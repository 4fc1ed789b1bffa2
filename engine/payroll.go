package engine

// =============================================================================
// PAYROLL CALENDAR - External collaborator, consumed not reimplemented
// =============================================================================

// AnchorConfig pins a salary stream to the employer's real payroll
// calendar: the first pay date of the current year plus the pay
// frequency. When present, exact period counting is delegated to the
// payroll calendar service instead of estimated from elapsed days.
type AnchorConfig struct {
	FirstPayDateOfYear string    `json:"first_pay_date_of_year"`
	Frequency          Frequency `json:"frequency,omitempty"`
}

// PayrollCalendar is the external payroll date-anchor lookup service.
// TotalEarnings returns the amount earned from the start of the year
// through asOf for a stream paying netPerPeriod on the anchored
// calendar. The lookup is a synchronous pure function; the engine
// treats its result as authoritative for the regular-salary path.
type PayrollCalendar interface {
	TotalEarnings(anchor AnchorConfig, netPerPeriod Money, asOf Date) Money
}
