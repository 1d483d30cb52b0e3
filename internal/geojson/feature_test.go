package geojson_test

import (
	"encoding/json"
	"strings"
	"testing"

	"citygis/internal/domain"
	"citygis/internal/geojson"
)

func TestNewPointFeature_AxisOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		lat, lng float64
	}{
		{"mumbai", 19.0, 72.8},
		{"vancouver", 49.281441, -123.055913},
		{"equator", 0, 0},
		{"southern", -33.86, 151.2},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := geojson.NewPointFeature("abc", "t", tc.lat, tc.lng)

			if f.Geometry.Coordinates[0] != tc.lng {
				t.Fatalf("coordinates[0]: expected lng=%v got=%v", tc.lng, f.Geometry.Coordinates[0])
			}
			if f.Geometry.Coordinates[1] != tc.lat {
				t.Fatalf("coordinates[1]: expected lat=%v got=%v", tc.lat, f.Geometry.Coordinates[1])
			}
		})
	}
}

func TestCollect_WireShape(t *testing.T) {
	t.Parallel()

	rows := []domain.SpatialIncidentRow{
		{ExternalID: "665f1c2e9d1e8a0001a1b2c3", Title: "Pothole", Lat: 19.0, Lng: 72.8},
	}

	b, err := json.Marshal(geojson.Collect(rows))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := string(b)
	for _, want := range []string{
		`"type":"FeatureCollection"`,
		`"type":"Feature"`,
		`"type":"Point"`,
		`"coordinates":[72.8,19]`,
		`"id":"665f1c2e9d1e8a0001a1b2c3"`,
		`"title":"Pothole"`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %s in %s", want, got)
		}
	}
}

func TestCollect_Empty_NotNull(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(geojson.Collect(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"features":[]`) {
		t.Fatalf(`expected "features":[] got %s`, string(b))
	}
}
