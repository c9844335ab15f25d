package sim

// Severity classifies an alert for the presentation layer.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Alert is one user-facing message produced during resolution.
type Alert struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Turn     int      `json:"turn"`
}

// maxAlerts bounds the log; the oldest entry drops off the end.
const maxAlerts = 10

// AlertLog is a bounded list of alerts, newest first.
type AlertLog []Alert

// Push prepends an alert, trimming the log to capacity.
func (l *AlertLog) Push(a Alert) {
	*l = append([]Alert{a}, *l...)
	if len(*l) > maxAlerts {
		*l = (*l)[:maxAlerts]
	}
}

// Clear empties the log.
func (l *AlertLog) Clear() {
	*l = (*l)[:0]
}
