package httpapi

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Softileo/schedule-saas/internal/model"
	"github.com/Softileo/schedule-saas/internal/timeutil"
)

// GenerateScheduleRequest is the wire shape of the one operation the core
// exposes. Field names follow §6 of the scheduling contract exactly so a
// thin external wrapper can forward its payload largely unchanged.
type GenerateScheduleRequest struct {
	Year                 int                      `json:"year"`
	Month                int                      `json:"month"`
	MonthlyHoursNorm     *int                     `json:"monthly_hours_norm"`
	OrganizationSettings organizationSettingsDTO  `json:"organization_settings"`
	ShiftTemplates       []shiftTemplateDTO       `json:"shift_templates"`
	Employees            []employeeDTO            `json:"employees"`
	EmployeePreferences  []employeePreferenceDTO  `json:"employee_preferences"`
	EmployeeAbsences     []absenceDTO             `json:"employee_absences"`
	SchedulingRules      *schedulingRulesDTO      `json:"scheduling_rules"`
	TradingSundays       []tradingSundayDTO       `json:"trading_sundays"`
	SolverTimeLimit      *int                     `json:"solver_time_limit"`
}

type organizationSettingsDTO struct {
	StoreOpenTime        string                        `json:"store_open_time"`
	StoreCloseTime       string                        `json:"store_close_time"`
	MinEmployeesPerShift *int                          `json:"min_employees_per_shift"`
	EnableTradingSundays bool                          `json:"enable_trading_sundays"`
	OpeningHours         map[string]*openingWindowDTO  `json:"opening_hours"`
}

type openingWindowDTO struct {
	Open  *string `json:"open"`
	Close *string `json:"close"`
}

type shiftTemplateDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	StartTime    string   `json:"start_time"`
	EndTime      string   `json:"end_time"`
	MinEmployees *int     `json:"min_employees"`
	MaxEmployees *int     `json:"max_employees"`
	Weekdays     []string `json:"weekdays"`
	Color        string   `json:"color"`
}

type employeeDTO struct {
	ID                 string   `json:"id"`
	GivenName          string   `json:"given_name"`
	FamilyName         string   `json:"family_name"`
	EmploymentType     string   `json:"employment_type"`
	CustomWeeklyHours  *float64 `json:"custom_weekly_hours"`
	MonthlyCapHours    *float64 `json:"monthly_cap_hours"`
	Supervisor         bool     `json:"supervisor"`
	Active             *bool    `json:"active"`
	PermittedTemplates []string `json:"permitted_templates"`
	Color              string   `json:"color"`
}

type employeePreferenceDTO struct {
	EmployeeID          string   `json:"employee_id"`
	PreferredWeekdays   []string `json:"preferred_weekdays"`
	UnavailableWeekdays []string `json:"unavailable_weekdays"`
	MaxHoursPerWeek     *int     `json:"max_hours_per_week"`
	WillingWeekend      bool     `json:"willing_weekend"`
	WillingHoliday      bool     `json:"willing_holiday"`
}

type absenceDTO struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

type tradingSundayDTO struct {
	Date     string `json:"date"`
	IsActive bool   `json:"is_active"`
}

type schedulingRulesDTO struct {
	MaxConsecutiveDays *int `json:"max_consecutive_days"`
	MinDailyRestHours  *int `json:"min_daily_rest_hours"`
	MaxWeeklyWorkHours *int `json:"max_weekly_work_hours"`
}

// toBuildInput translates the wire request into the core's typed
// model.BuildInput, parsing every clock string and calendar date. Parse
// failures are reported as *model.ValidationError (InvalidInput).
func toBuildInput(req GenerateScheduleRequest) (model.BuildInput, error) {
	in := model.BuildInput{
		Year:                 req.Year,
		Month:                time.Month(req.Month),
		MonthlyNormMinutes:   hoursPtrToMinutes(req.MonthlyHoursNorm),
		EnableTradingSundays: req.OrganizationSettings.EnableTradingSundays,
		SchedulingRules:      model.DefaultSchedulingRules(),
	}

	if req.SchedulingRules != nil {
		if req.SchedulingRules.MaxConsecutiveDays != nil {
			in.SchedulingRules.MaxConsecutiveDays = *req.SchedulingRules.MaxConsecutiveDays
		}
		if req.SchedulingRules.MinDailyRestHours != nil {
			in.SchedulingRules.MinDailyRestHours = *req.SchedulingRules.MinDailyRestHours
		}
		if req.SchedulingRules.MaxWeeklyWorkHours != nil {
			in.SchedulingRules.MaxWeeklyWorkHours = *req.SchedulingRules.MaxWeeklyWorkHours
		}
	}

	defaultOpen, err := timeutil.ParseStartClock(orDefault(req.OrganizationSettings.StoreOpenTime, "08:00"))
	if err != nil {
		return in, fmt.Errorf("organization_settings.store_open_time: %w", err)
	}
	defaultClose, err := timeutil.ParseEndClock(orDefault(req.OrganizationSettings.StoreCloseTime, "20:00"))
	if err != nil {
		return in, fmt.Errorf("organization_settings.store_close_time: %w", err)
	}

	overrides := make(map[timeutil.Weekday]*model.OpeningWindow)
	for name, win := range req.OrganizationSettings.OpeningHours {
		w, ok := timeutil.ParseWeekdayName(name)
		if !ok {
			return in, fmt.Errorf("organization_settings.opening_hours: unknown weekday %q", name)
		}
		if win == nil || win.Open == nil || win.Close == nil {
			overrides[w] = nil
			continue
		}
		open, err := timeutil.ParseStartClock(*win.Open)
		if err != nil {
			return in, fmt.Errorf("organization_settings.opening_hours[%s].open: %w", name, err)
		}
		closeMin, err := timeutil.ParseEndClock(*win.Close)
		if err != nil {
			return in, fmt.Errorf("organization_settings.opening_hours[%s].close: %w", name, err)
		}
		overrides[w] = &model.OpeningWindow{Open: open, Close: closeMin}
	}
	in.OpeningHours = model.BuildOpeningHours(defaultOpen, defaultClose, overrides)

	minPerShift := 1
	if req.OrganizationSettings.MinEmployeesPerShift != nil {
		minPerShift = *req.OrganizationSettings.MinEmployeesPerShift
	}

	in.Templates = make([]model.ShiftTemplate, 0, len(req.ShiftTemplates))
	for _, t := range req.ShiftTemplates {
		start, err := timeutil.ParseStartClock(t.StartTime)
		if err != nil {
			return in, fmt.Errorf("shift_templates[%s].start_time: %w", t.ID, err)
		}
		end, err := timeutil.ParseEndClock(t.EndTime)
		if err != nil {
			return in, fmt.Errorf("shift_templates[%s].end_time: %w", t.ID, err)
		}
		minEmployees := minPerShift
		if t.MinEmployees != nil {
			minEmployees = *t.MinEmployees
		}
		weekdays := make(map[timeutil.Weekday]struct{}, len(t.Weekdays))
		for _, name := range t.Weekdays {
			w, ok := timeutil.ParseWeekdayName(name)
			if !ok {
				return in, fmt.Errorf("shift_templates[%s].weekdays: unknown weekday %q", t.ID, name)
			}
			weekdays[w] = struct{}{}
		}
		in.Templates = append(in.Templates, model.ShiftTemplate{
			ID:           t.ID,
			Name:         t.Name,
			StartMinutes: start,
			EndMinutes:   end,
			MinEmployees: minEmployees,
			MaxEmployees: t.MaxEmployees,
			Weekdays:     weekdays,
			Color:        t.Color,
		})
	}

	in.Employees = make([]model.Employee, 0, len(req.Employees))
	for _, e := range req.Employees {
		active := true
		if e.Active != nil {
			active = *e.Active
		}
		permitted := make(map[string]struct{}, len(e.PermittedTemplates))
		for _, id := range e.PermittedTemplates {
			permitted[id] = struct{}{}
		}
		emp := model.Employee{
			ID:                 e.ID,
			GivenName:          e.GivenName,
			FamilyName:         e.FamilyName,
			Type:               model.EmploymentType(e.EmploymentType),
			Supervisor:         e.Supervisor,
			Active:             active,
			PermittedTemplates: permitted,
			Color:              e.Color,
		}
		if e.CustomWeeklyHours != nil {
			emp.CustomWeeklyHours = decimal.NewFromFloat(*e.CustomWeeklyHours)
		}
		if e.MonthlyCapHours != nil {
			capHours := decimal.NewFromFloat(*e.MonthlyCapHours)
			emp.MonthlyCapHours = &capHours
		}
		in.Employees = append(in.Employees, emp)
	}

	for _, p := range req.EmployeePreferences {
		pref := model.EmployeePreference{
			EmployeeID:     p.EmployeeID,
			Preferred:      make(map[timeutil.Weekday]struct{}),
			Unavailable:    make(map[timeutil.Weekday]struct{}),
			MaxHoursPerWeek: p.MaxHoursPerWeek,
			WillingWeekend: p.WillingWeekend,
			WillingHoliday: p.WillingHoliday,
		}
		for _, name := range p.PreferredWeekdays {
			if w, ok := timeutil.ParseWeekdayName(name); ok {
				pref.Preferred[w] = struct{}{}
			}
		}
		for _, name := range p.UnavailableWeekdays {
			if w, ok := timeutil.ParseWeekdayName(name); ok {
				pref.Unavailable[w] = struct{}{}
			}
		}
		in.Preferences = append(in.Preferences, pref)
	}

	for _, a := range req.EmployeeAbsences {
		start, err := time.Parse("2006-01-02", a.StartDate)
		if err != nil {
			return in, fmt.Errorf("employee_absences[%s].start_date: %w", a.EmployeeID, err)
		}
		end, err := time.Parse("2006-01-02", a.EndDate)
		if err != nil {
			return in, fmt.Errorf("employee_absences[%s].end_date: %w", a.EmployeeID, err)
		}
		if end.Before(start) {
			return in, fmt.Errorf("employee_absences[%s]: end_date before start_date", a.EmployeeID)
		}
		in.Absences = append(in.Absences, model.Absence{
			EmployeeID: a.EmployeeID,
			Start:      start,
			End:        end,
			Reason:     a.Reason,
		})
	}

	for _, ts := range req.TradingSundays {
		d, err := time.Parse("2006-01-02", ts.Date)
		if err != nil {
			return in, fmt.Errorf("trading_sundays: %w", err)
		}
		in.TradingSundays = append(in.TradingSundays, model.TradingSunday{Date: d, Active: ts.IsActive})
	}

	return in, nil
}

func hoursPtrToMinutes(hours *int) *int {
	if hours == nil {
		return nil
	}
	minutes := *hours * 60
	return &minutes
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
