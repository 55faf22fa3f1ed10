package domain

// HealthStatus indicates doctor check outcomes.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck captures a single diagnostic result, e.g. one external tool.
type HealthCheck struct {
	Name    string
	Status  HealthStatus
	Details string
}

// HealthReport aggregates checks.
type HealthReport struct {
	Checks []HealthCheck
}

// Missing lists the names of checks that did not pass.
func (r HealthReport) Missing() []string {
	var names []string
	for _, check := range r.Checks {
		if check.Status != HealthOK {
			names = append(names, check.Name)
		}
	}
	return names
}
