package weather

import (
	"errors"
	"testing"

	"gridcast/internal/providers/nws"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"Extreme", SeverityExtreme},
		{"Severe", SeveritySevere},
		{"Moderate", SeverityModerate},
		{"Minor", SeverityMinor},
		{"Unknown", SeverityUnknown},
		{"", SeverityUnknown},
		{"Catastrophic", SeverityUnknown},
	}

	for _, tt := range tests {
		if got := ParseSeverity(tt.in); got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSeverityRankOrdering(t *testing.T) {
	order := []Severity{SeverityExtreme, SeveritySevere, SeverityModerate, SeverityMinor, SeverityUnknown}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() <= order[i].Rank() {
			t.Errorf("%v rank %d not greater than %v rank %d", order[i-1], order[i-1].Rank(), order[i], order[i].Rank())
		}
	}
}

func TestTranslateAlerts_StableSortOnTies(t *testing.T) {
	resp := &nws.AlertAPIResponse{Features: []nws.AlertFeature{
		alertFeature("m1", "Wind Advisory", "Moderate"),
		alertFeature("m2", "Dense Fog Advisory", "Moderate"),
		alertFeature("m3", "Heat Advisory", "Moderate"),
	}}

	alerts := translateAlerts(resp)
	if len(alerts) != 3 {
		t.Fatalf("len(alerts) = %d, want 3", len(alerts))
	}
	for i, want := range []string{"m1", "m2", "m3"} {
		if alerts[i].ID != want {
			t.Errorf("alerts[%d].ID = %s, want %s (ties must keep upstream order)", i, alerts[i].ID, want)
		}
	}
}

func TestTranslateAlerts_MissingSeverityIsUnknown(t *testing.T) {
	resp := &nws.AlertAPIResponse{Features: []nws.AlertFeature{
		alertFeature("a1", "Special Weather Statement", ""),
		alertFeature("a2", "Tornado Warning", "Extreme"),
	}}

	alerts := translateAlerts(resp)
	if len(alerts) != 2 {
		t.Fatalf("len(alerts) = %d, want 2", len(alerts))
	}
	if alerts[0].ID != "a2" {
		t.Errorf("alerts[0].ID = %s, want a2 (Unknown sorts last)", alerts[0].ID)
	}
	if alerts[1].Severity != SeverityUnknown {
		t.Errorf("alerts[1].Severity = %v, want Unknown", alerts[1].Severity)
	}
}

func TestTranslateAlerts_FallsBackToFeatureID(t *testing.T) {
	f := nws.AlertFeature{ID: "urn:oid:2.49.0.1.840.0.1"}
	f.Properties.Event = "Flood Warning"
	f.Properties.Severity = "Severe"

	alerts := translateAlerts(&nws.AlertAPIResponse{Features: []nws.AlertFeature{f}})
	if len(alerts) != 1 || alerts[0].ID != "urn:oid:2.49.0.1.840.0.1" {
		t.Errorf("alerts = %+v, want feature id used when properties id is empty", alerts)
	}
}

func TestTranslatePeriods(t *testing.T) {
	resp := forecastResponse(intPtr(72), nil, intPtr(65), nil, nil)

	periods, dropped, err := translatePeriods(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dropped != 3 {
		t.Errorf("dropped = %d, want 3", dropped)
	}
	if len(periods) != 2 {
		t.Fatalf("len(periods) = %d, want 2", len(periods))
	}
	if periods[0].Temperature != 72 || periods[1].Temperature != 65 {
		t.Errorf("temps = %d,%d, want 72,65 in upstream order", periods[0].Temperature, periods[1].Temperature)
	}
}

func TestTranslatePeriods_NilResponse(t *testing.T) {
	_, _, err := translatePeriods(nil)
	if !errors.Is(err, ErrBadPayload) {
		t.Errorf("error = %v, want ErrBadPayload", err)
	}
}

func TestTranslateGridpoint(t *testing.T) {
	tests := []struct {
		name     string
		forecast string
		hourly   string
		wantErr  bool
	}{
		{"both URLs present", "https://api.test/f", "https://api.test/h", false},
		{"missing forecast URL", "", "https://api.test/h", true},
		{"missing hourly URL", "https://api.test/f", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gp, err := translateGridpoint(pointResponse(tt.forecast, tt.hourly, "Miami", "FL"), "https://api.test/a")
			if tt.wantErr {
				if !errors.Is(err, ErrBadPayload) {
					t.Errorf("error = %v, want ErrBadPayload", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gp.AlertsURL != "https://api.test/a" {
				t.Errorf("AlertsURL = %q", gp.AlertsURL)
			}
			if gp.City != "Miami" || gp.State != "FL" {
				t.Errorf("relative location = %s, %s, want Miami, FL", gp.City, gp.State)
			}
		})
	}
}

func TestCoordinateValidate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr error
	}{
		{"valid", 25.77, -80.19, nil},
		{"boundary latitudes", 90, 0, nil},
		{"boundary longitudes", 0, -180, nil},
		{"latitude too high", 90.01, 0, ErrInvalidLatitude},
		{"latitude too low", -90.01, 0, ErrInvalidLatitude},
		{"longitude too high", 0, 180.01, ErrInvalidLongitude},
		{"longitude too low", 0, -180.01, ErrInvalidLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCoordinate(tt.lat, tt.lon).Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
