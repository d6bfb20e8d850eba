package weather

import "time"

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoordinate(latitude, longitude float64) Coordinate {
	return Coordinate{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate checks the coordinate ranges. It is called before any upstream
// request is made.
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// Location is a resolved place: the geocoder's display name (or the weather
// provider's relative location) plus the coordinate.
type Location struct {
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
}

// Gridpoint holds the endpoints the weather provider keys forecast and alert
// data by. It is resolved per request and never cached.
type Gridpoint struct {
	ForecastURL       string
	ForecastHourlyURL string
	AlertsURL         string
	City              string
	State             string
}

// Severity is the alert severity reported by the weather provider.
type Severity string

const (
	SeverityExtreme  Severity = "Extreme"
	SeveritySevere   Severity = "Severe"
	SeverityModerate Severity = "Moderate"
	SeverityMinor    Severity = "Minor"
	SeverityUnknown  Severity = "Unknown"
)

var severityRanks = map[Severity]int{
	SeverityExtreme:  4,
	SeveritySevere:   3,
	SeverityModerate: 2,
	SeverityMinor:    1,
	SeverityUnknown:  0,
}

// Rank returns the ordinal used for severity-descending sort order.
func (s Severity) Rank() int {
	return severityRanks[s]
}

// ParseSeverity maps the upstream severity string to a Severity. Anything
// unrecognized, including a missing value, maps to SeverityUnknown.
func ParseSeverity(s string) Severity {
	sev := Severity(s)
	if _, ok := severityRanks[sev]; !ok || sev == "" {
		return SeverityUnknown
	}
	return sev
}

// Alert is one active weather alert. ID is unique within a result sequence.
type Alert struct {
	ID          string    `json:"id"`
	Event       string    `json:"event"`
	Severity    Severity  `json:"severity"`
	Urgency     string    `json:"urgency"`
	Certainty   string    `json:"certainty"`
	Headline    string    `json:"headline"`
	Description string    `json:"description"`
	Expires     time.Time `json:"expires"`
}

// ForecastPeriod is one entry of a daily or hourly forecast. Periods keep
// the chronological order the provider returned them in.
type ForecastPeriod struct {
	Name             string    `json:"name"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	IsDaytime        bool      `json:"isDaytime"`
	Temperature      int       `json:"temperature"`
	TemperatureUnit  string    `json:"temperatureUnit"`
	WindSpeed        string    `json:"windSpeed"`
	WindDirection    string    `json:"windDirection"`
	ShortForecast    string    `json:"shortForecast"`
	DetailedForecast string    `json:"detailedForecast"`
}

// Bundle is the assembled result of a forecast lookup. The period and alert
// slices are never nil; empty means the provider had no data, not failure.
// Alerts are ordered severity-descending.
type Bundle struct {
	Location Location         `json:"location"`
	Current  *ForecastPeriod  `json:"current,omitempty"`
	Daily    []ForecastPeriod `json:"daily"`
	Hourly   []ForecastPeriod `json:"hourly"`
	Alerts   []Alert          `json:"alerts"`
}
