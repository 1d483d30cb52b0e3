package geojson

import "citygis/internal/domain"

// Wire-level GeoJSON shapes consumed by map renderers. Coordinates are
// always [longitude, latitude]; transposing them puts every point on the
// wrong spot of the map, so the order is fixed here and nowhere else.

type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type Properties struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewPointFeature builds a Point feature from a domain location given as
// (lat, lng). The coordinate array comes out [lng, lat].
func NewPointFeature(id, title string, lat, lng float64) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "Point",
			Coordinates: [2]float64{lng, lat},
		},
		Properties: Properties{ID: id, Title: title},
	}
}

// Collect shapes spatial rows into a FeatureCollection. An empty or nil
// input yields "features": [] rather than null.
func Collect(rows []domain.SpatialIncidentRow) FeatureCollection {
	features := make([]Feature, 0, len(rows))
	for _, row := range rows {
		features = append(features, NewPointFeature(row.ExternalID, row.Title, row.Lat, row.Lng))
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
