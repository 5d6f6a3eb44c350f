// Package geojson builds the GeoJSON fragments the recommendation API
// returns. Only the LineString feature shape is needed; coordinates follow
// the GeoJSON ordering of [longitude, latitude].
package geojson

// Coordinate is a [longitude, latitude] pair.
type Coordinate [2]float64

// NewCoordinate builds a Coordinate from longitude and latitude.
func NewCoordinate(lng, lat float64) Coordinate {
	return Coordinate{lng, lat}
}

// Lng returns the longitude component.
func (c Coordinate) Lng() float64 { return c[0] }

// Lat returns the latitude component.
func (c Coordinate) Lat() float64 { return c[1] }

// Geometry is a GeoJSON geometry object.
type Geometry struct {
	Type        string       `json:"type"`
	Coordinates []Coordinate `json:"coordinates"`
}

// Feature is a GeoJSON feature object.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// LineString wraps an ordered coordinate path in a GeoJSON Feature with a
// LineString geometry and an empty properties object.
func LineString(coords []Coordinate) Feature {
	if coords == nil {
		coords = []Coordinate{}
	}
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "LineString",
			Coordinates: coords,
		},
		Properties: map[string]interface{}{},
	}
}
