package catalog

import "fmt"

// Validation is the structural check result for one crop entry.
type Validation struct {
	Valid    bool     `json:"valid"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}

// ValidationSummary aggregates validation across the whole catalog.
type ValidationSummary struct {
	CropsValidated int                   `json:"cropsValidated"`
	TotalIssues    int                   `json:"totalIssues"`
	TotalWarnings  int                   `json:"totalWarnings"`
	Results        map[string]Validation `json:"results"`
}

// ValidateCrop checks one catalog entry for the structural invariants the
// generator relies on: positive duration, offsets within duration, unique
// activity names, and filled-in fields.
func (c *Catalog) ValidateCrop(name string) Validation {
	t, ok := c.crops[name]
	if !ok {
		return Validation{Issues: []string{fmt.Sprintf("crop %q not found", name)}}
	}

	var issues, warnings []string

	if t.DurationDays <= 0 {
		issues = append(issues, "duration_days must be positive")
	}
	if len(t.Activities) == 0 {
		issues = append(issues, "no activities defined")
	}
	if t.DataSource == "" {
		warnings = append(warnings, "missing data source")
	}
	if t.Optimal.TempMax <= t.Optimal.TempMin {
		issues = append(issues, "temp_max must exceed temp_min")
	}
	if t.Optimal.RainfallThresholdMm <= 0 {
		warnings = append(warnings, "missing rainfall threshold")
	}

	seen := map[string]bool{}
	for i, a := range t.Activities {
		label := a.Name
		if label == "" {
			label = fmt.Sprintf("activity %d", i)
			issues = append(issues, label+": missing name")
		}
		if seen[a.Name] {
			issues = append(issues, label+": duplicate activity name")
		}
		seen[a.Name] = true
		if a.Day < 0 || a.Day > t.DurationDays {
			issues = append(issues, fmt.Sprintf("%s: day %d outside crop duration %d", label, a.Day, t.DurationDays))
		}
		if a.Category == "" {
			issues = append(issues, label+": missing category")
		}
		if a.Description == "" {
			issues = append(issues, label+": missing description")
		}
		if a.Source == "" || a.Source == "N/A" {
			warnings = append(warnings, label+": source is empty or generic")
		}
	}

	return Validation{Valid: len(issues) == 0, Issues: issues, Warnings: warnings}
}

// ValidateAll sweeps every crop in the catalog.
func (c *Catalog) ValidateAll() ValidationSummary {
	s := ValidationSummary{Results: map[string]Validation{}}
	for _, name := range c.Crops() {
		v := c.ValidateCrop(name)
		s.Results[name] = v
		s.TotalIssues += len(v.Issues)
		s.TotalWarnings += len(v.Warnings)
	}
	s.CropsValidated = len(s.Results)
	return s
}
