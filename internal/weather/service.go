package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"gridcast/internal/config"
	"gridcast/internal/providers/nominatim"
	"gridcast/internal/providers/nws"
	"gridcast/internal/transport"
)

// Service is the weather query pipeline: place name to coordinate,
// coordinate to gridpoint, gridpoint to forecast and alerts.
type Service interface {
	// LookupLocation resolves a free-text city name to a Location.
	LookupLocation(ctx context.Context, city string) (*Location, error)

	// LookupForecast resolves a coordinate to a full Bundle: daily and
	// hourly forecast periods plus active alerts.
	LookupForecast(ctx context.Context, coord Coordinate) (*Bundle, error)

	// LookupAlerts resolves a coordinate to its active alerts,
	// severity-descending.
	LookupAlerts(ctx context.Context, coord Coordinate) ([]Alert, error)
}

// GeocodeProvider resolves free-text place names to candidate locations.
type GeocodeProvider interface {
	Search(ctx context.Context, query string) ([]nominatim.SearchAPIResult, error)
}

// PointProvider resolves a coordinate to gridpoint metadata.
type PointProvider interface {
	GetPoint(ctx context.Context, latitude, longitude float64) (*nws.PointAPIResponse, error)
	ActiveAlertsURL(latitude, longitude float64) string
}

// ForecastProvider fetches a gridpoint forecast endpoint.
type ForecastProvider interface {
	GetForecast(ctx context.Context, url string) (*nws.ForecastAPIResponse, error)
}

// AlertProvider fetches an active-alerts endpoint.
type AlertProvider interface {
	GetActiveAlerts(ctx context.Context, url string) (*nws.AlertAPIResponse, error)
}

type weatherService struct {
	geocoder  GeocodeProvider
	points    PointProvider
	forecasts ForecastProvider
	alerts    AlertProvider
	cfg       *config.Config
	logger    *slog.Logger
}

// NewService creates a Service backed by the real Nominatim and NWS clients,
// all sharing the one process-scoped transport.
func NewService(t *transport.Client, cfg *config.Config, logger *slog.Logger) Service {
	nwsClient := nws.NewClient(t, logger)
	return NewServiceWithProviders(nominatim.NewClient(t, logger), nwsClient, nwsClient, nwsClient, cfg, logger)
}

// NewServiceWithProviders creates a Service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	geocoder GeocodeProvider,
	points PointProvider,
	forecasts ForecastProvider,
	alerts AlertProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		geocoder:  geocoder,
		points:    points,
		forecasts: forecasts,
		alerts:    alerts,
		cfg:       cfg,
		logger:    logger.With("component", "weather-service"),
	}
}

func (s *weatherService) LookupLocation(ctx context.Context, city string) (*Location, error) {
	if strings.TrimSpace(city) == "" {
		return nil, ErrCityRequired
	}

	results, err := s.geocoder.Search(ctx, city)
	if err != nil {
		s.logger.Error("geocoding failed", "city", city, "error", err)
		return nil, classify(err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, city)
	}

	location, err := translateLocation(results[0])
	if err != nil {
		return nil, fmt.Errorf("failed to translate geocoding result: %w", err)
	}

	return location, nil
}

func (s *weatherService) LookupForecast(ctx context.Context, coord Coordinate) (*Bundle, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	gridpoint, err := s.resolveGridpoint(ctx, coord)
	if err != nil {
		return nil, err
	}

	var (
		wg         sync.WaitGroup
		dailyResp  *nws.ForecastAPIResponse
		hourlyResp *nws.ForecastAPIResponse
		alertsResp *nws.AlertAPIResponse
		dailyErr   error
		hourlyErr  error
		alertsErr  error
	)

	// The three fetches are independent; run them concurrently and join
	// before assembling.
	wg.Add(3)

	go func() {
		defer wg.Done()
		dailyResp, dailyErr = s.forecasts.GetForecast(ctx, gridpoint.ForecastURL)
	}()

	go func() {
		defer wg.Done()
		hourlyResp, hourlyErr = s.forecasts.GetForecast(ctx, gridpoint.ForecastHourlyURL)
	}()

	go func() {
		defer wg.Done()
		alertsResp, alertsErr = s.alerts.GetActiveAlerts(ctx, gridpoint.AlertsURL)
	}()

	wg.Wait()

	// Both forecast branches are required; a failure on either aborts the
	// whole lookup.
	if dailyErr != nil {
		s.logger.Error("forecast fetch failed", "url", gridpoint.ForecastURL, "error", dailyErr)
		return nil, classify(dailyErr)
	}
	if hourlyErr != nil {
		s.logger.Error("hourly forecast fetch failed", "url", gridpoint.ForecastHourlyURL, "error", hourlyErr)
		return nil, classify(hourlyErr)
	}

	daily, droppedDaily, err := translatePeriods(dailyResp)
	if err != nil {
		return nil, fmt.Errorf("failed to translate forecast: %w", err)
	}
	hourly, droppedHourly, err := translatePeriods(hourlyResp)
	if err != nil {
		return nil, fmt.Errorf("failed to translate hourly forecast: %w", err)
	}
	if droppedDaily+droppedHourly > 0 {
		s.logger.Warn("dropped forecast periods missing temperature",
			"daily", droppedDaily,
			"hourly", droppedHourly,
		)
	}

	// Alerts are supplementary; a failed alerts fetch degrades to an empty
	// sequence instead of failing the forecast.
	alerts := []Alert{}
	if alertsErr != nil {
		s.logger.Warn("alerts fetch failed, continuing without alerts",
			"url", gridpoint.AlertsURL,
			"error", alertsErr,
		)
	} else {
		alerts = translateAlerts(alertsResp)
	}

	daily = truncate(daily, s.dailyLimit())
	hourly = truncate(hourly, s.hourlyLimit())

	bundle := &Bundle{
		Location: Location{
			Name:       relativeName(gridpoint),
			Coordinate: coord,
		},
		Daily:  daily,
		Hourly: hourly,
		Alerts: alerts,
	}
	if len(daily) > 0 {
		current := daily[0]
		bundle.Current = &current
	}

	return bundle, nil
}

func (s *weatherService) LookupAlerts(ctx context.Context, coord Coordinate) ([]Alert, error) {
	if err := coord.Validate(); err != nil {
		return nil, err
	}

	gridpoint, err := s.resolveGridpoint(ctx, coord)
	if err != nil {
		return nil, err
	}

	resp, err := s.alerts.GetActiveAlerts(ctx, gridpoint.AlertsURL)
	if err != nil {
		s.logger.Error("alerts fetch failed", "url", gridpoint.AlertsURL, "error", err)
		return nil, classify(err)
	}

	return translateAlerts(resp), nil
}

// resolveGridpoint maps a coordinate to its gridpoint endpoints. A 404 from
// the points lookup is a legitimate outcome for coordinates the provider
// does not cover, and is reported as ErrOutOfCoverage rather than a generic
// upstream failure.
func (s *weatherService) resolveGridpoint(ctx context.Context, coord Coordinate) (*Gridpoint, error) {
	resp, err := s.points.GetPoint(ctx, coord.Latitude, coord.Longitude)
	if err != nil {
		var statusErr *transport.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == 404 {
			return nil, fmt.Errorf("%w: %.4f,%.4f", ErrOutOfCoverage, coord.Latitude, coord.Longitude)
		}
		s.logger.Error("points lookup failed",
			"latitude", coord.Latitude,
			"longitude", coord.Longitude,
			"error", err,
		)
		return nil, classify(err)
	}

	gridpoint, err := translateGridpoint(resp, s.points.ActiveAlertsURL(coord.Latitude, coord.Longitude))
	if err != nil {
		return nil, fmt.Errorf("failed to translate points response: %w", err)
	}

	return gridpoint, nil
}

func (s *weatherService) dailyLimit() int {
	if s.cfg == nil || s.cfg.App.DailyPeriodLimit <= 0 {
		return 0
	}
	return s.cfg.App.DailyPeriodLimit
}

func (s *weatherService) hourlyLimit() int {
	if s.cfg == nil || s.cfg.App.HourlyPeriodLimit <= 0 {
		return 0
	}
	return s.cfg.App.HourlyPeriodLimit
}

// truncate caps periods at limit, keeping order. A limit of 0 means no cap.
func truncate(periods []ForecastPeriod, limit int) []ForecastPeriod {
	if limit > 0 && len(periods) > limit {
		return periods[:limit]
	}
	return periods
}

// relativeName formats the provider's relative location as "City, State",
// or returns an empty string when the payload carried neither.
func relativeName(gp *Gridpoint) string {
	switch {
	case gp.City != "" && gp.State != "":
		return gp.City + ", " + gp.State
	case gp.City != "":
		return gp.City
	default:
		return gp.State
	}
}

// classify maps transport-level failures onto the pipeline failure kinds.
// Caller cancellation and caller deadline expiry are passed through
// untouched so an abandoned request is never misreported as an upstream
// failure.
func classify(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, transport.ErrTimeout):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
