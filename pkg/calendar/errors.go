package calendar

import "fmt"

// InvalidDateError is returned when a sowing date does not parse as YYYY-MM-DD.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: use YYYY-MM-DD", e.Value)
}

// ActivityNotFoundError is returned by direct activity updates. The batch
// rescheduler never raises it; it skips missing names and continues.
type ActivityNotFoundError struct {
	Name string
}

func (e *ActivityNotFoundError) Error() string {
	return fmt.Sprintf("activity %q not found in calendar", e.Name)
}
