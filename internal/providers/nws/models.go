package nws

import "time"

// PointAPIResponse is the NWS points lookup payload. Properties.Forecast and
// Properties.ForecastHourly are the gridpoint forecast endpoints.
type PointAPIResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Properties struct {
		GridID           string `json:"gridId"`
		GridX            int    `json:"gridX"`
		GridY            int    `json:"gridY"`
		Cwa              string `json:"cwa"`
		Forecast         string `json:"forecast"`
		ForecastHourly   string `json:"forecastHourly"`
		ForecastZone     string `json:"forecastZone"`
		TimeZone         string `json:"timeZone"`
		RelativeLocation struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

// PeriodAPIResource is one entry of a forecast period list. Temperature is a
// pointer so an entry missing the value can be told apart from zero degrees.
type PeriodAPIResource struct {
	Number           int       `json:"number"`
	Name             string    `json:"name"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	IsDaytime        bool      `json:"isDaytime"`
	Temperature      *int      `json:"temperature"`
	TemperatureUnit  string    `json:"temperatureUnit"`
	WindSpeed        string    `json:"windSpeed"`
	WindDirection    string    `json:"windDirection"`
	ShortForecast    string    `json:"shortForecast"`
	DetailedForecast string    `json:"detailedForecast"`
}

// ForecastAPIResponse is the payload of both the daily and hourly gridpoint
// forecast endpoints.
type ForecastAPIResponse struct {
	Properties struct {
		Updated time.Time           `json:"updated"`
		Units   string              `json:"units"`
		Periods []PeriodAPIResource `json:"periods"`
	} `json:"properties"`
}

// AlertFeature is one alert in the active-alerts GeoJSON collection.
type AlertFeature struct {
	ID         string `json:"id"`
	Properties struct {
		ID          string    `json:"id"`
		Event       string    `json:"event"`
		Severity    string    `json:"severity"`
		Urgency     string    `json:"urgency"`
		Certainty   string    `json:"certainty"`
		Headline    string    `json:"headline"`
		Description string    `json:"description"`
		Expires     time.Time `json:"expires"`
	} `json:"properties"`
}

// AlertAPIResponse is the active-alerts collection payload.
type AlertAPIResponse struct {
	Features []AlertFeature `json:"features"`
}
