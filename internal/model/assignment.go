package model

import "time"

// Assignment is one employee-day-template triple materialized after a
// successful solve. It is discarded entirely when the solver does not
// reach SUCCESS.
type Assignment struct {
	EmployeeID      string
	EmployeeName    string
	Date            time.Time
	TemplateID      string
	TemplateName    string
	StartMinutes    int
	EndMinutes      int
	DurationMinutes int
	Color           string
}
