package weather

import (
	"fmt"
	"sort"
	"strconv"

	"gridcast/internal/providers/nominatim"
	"gridcast/internal/providers/nws"
)

// translateLocation converts the best Nominatim match to a domain Location.
// Nominatim encodes coordinates as strings; a value that does not parse is a
// malformed payload, not a user error.
func translateLocation(result nominatim.SearchAPIResult) (*Location, error) {
	if result.DisplayName == "" {
		return nil, fmt.Errorf("%w: display_name is empty", ErrBadPayload)
	}

	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: latitude %q: %v", ErrBadPayload, result.Lat, err)
	}

	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: longitude %q: %v", ErrBadPayload, result.Lon, err)
	}

	return &Location{
		Name:       result.DisplayName,
		Coordinate: NewCoordinate(lat, lon),
	}, nil
}

// translateGridpoint converts a points payload to a Gridpoint. Both forecast
// URLs are required; the relative location is a best-effort extra.
func translateGridpoint(resp *nws.PointAPIResponse, alertsURL string) (*Gridpoint, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: points response is nil", ErrBadPayload)
	}
	if resp.Properties.Forecast == "" {
		return nil, fmt.Errorf("%w: forecast URL is empty", ErrBadPayload)
	}
	if resp.Properties.ForecastHourly == "" {
		return nil, fmt.Errorf("%w: forecastHourly URL is empty", ErrBadPayload)
	}

	return &Gridpoint{
		ForecastURL:       resp.Properties.Forecast,
		ForecastHourlyURL: resp.Properties.ForecastHourly,
		AlertsURL:         alertsURL,
		City:              resp.Properties.RelativeLocation.Properties.City,
		State:             resp.Properties.RelativeLocation.Properties.State,
	}, nil
}

// translatePeriods converts raw forecast periods to domain periods, keeping
// the upstream order. Periods missing a temperature are dropped; the second
// return value is the dropped count.
func translatePeriods(resp *nws.ForecastAPIResponse) ([]ForecastPeriod, int, error) {
	if resp == nil {
		return nil, 0, fmt.Errorf("%w: forecast response is nil", ErrBadPayload)
	}

	periods := make([]ForecastPeriod, 0, len(resp.Properties.Periods))
	dropped := 0
	for _, p := range resp.Properties.Periods {
		if p.Temperature == nil {
			dropped++
			continue
		}

		periods = append(periods, ForecastPeriod{
			Name:             p.Name,
			StartTime:        p.StartTime,
			EndTime:          p.EndTime,
			IsDaytime:        p.IsDaytime,
			Temperature:      *p.Temperature,
			TemperatureUnit:  p.TemperatureUnit,
			WindSpeed:        p.WindSpeed,
			WindDirection:    p.WindDirection,
			ShortForecast:    p.ShortForecast,
			DetailedForecast: p.DetailedForecast,
		})
	}

	return periods, dropped, nil
}

// translateAlerts converts the active-alerts collection to domain alerts,
// collapsing duplicate ids (first occurrence wins) and sorting
// severity-descending. The sort is stable so ties keep upstream order.
func translateAlerts(resp *nws.AlertAPIResponse) []Alert {
	if resp == nil {
		return []Alert{}
	}

	alerts := make([]Alert, 0, len(resp.Features))
	seen := make(map[string]struct{}, len(resp.Features))
	for _, f := range resp.Features {
		id := f.Properties.ID
		if id == "" {
			id = f.ID
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		alerts = append(alerts, Alert{
			ID:          id,
			Event:       f.Properties.Event,
			Severity:    ParseSeverity(f.Properties.Severity),
			Urgency:     f.Properties.Urgency,
			Certainty:   f.Properties.Certainty,
			Headline:    f.Properties.Headline,
			Description: f.Properties.Description,
			Expires:     f.Properties.Expires,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() > alerts[j].Severity.Rank()
	})

	return alerts
}
