package poi

import (
	"go.uber.org/zap"

	"github.com/twpayne/go-geom"
	geomjson "github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/poi-extract/internal/geojson"
)

// Source is the provenance literal stamped on every output record.
const Source = "osm"

// Extract runs the classify → reduce → dedupe pipeline over features in
// order and returns the surviving normalized point features. Features that
// classify to no category or whose geometry cannot be reduced are dropped;
// later duplicates of an already-emitted identity key are discarded, so
// output order is first-accepted input order.
func Extract(features []geojson.Feature) []geojson.Feature {
	dedupe := NewDeduper()
	out := make([]geojson.Feature, 0, len(features))
	var unclassified, unreduced, duplicates int

	for _, f := range features {
		props := Properties(f.Properties)

		category, ok := Classify(props)
		if !ok {
			unclassified++
			continue
		}

		lon, lat, ok := ReducePoint(f.Geometry)
		if !ok {
			unreduced++
			continue
		}

		osmID := props.str("@id")
		if osmID == "" {
			osmID = props.str("id")
		}
		name := props.str("name")

		if !dedupe.Offer(category, lon, lat, osmID, name) {
			duplicates++
			continue
		}

		record, err := newRecord(category, lon, lat, osmID, name)
		if err != nil {
			unreduced++
			continue
		}
		out = append(out, record)
	}

	zap.L().Info("poi: extracted features",
		zap.Int("input", len(features)),
		zap.Int("output", len(out)),
		zap.Int("unclassified", unclassified),
		zap.Int("unreduced", unreduced),
		zap.Int("duplicates", duplicates),
	)

	return out
}

// newRecord builds the immutable four-property output feature.
func newRecord(category Category, lon, lat float64, osmID, name string) (geojson.Feature, error) {
	point, err := geomjson.Marshal(geom.NewPointFlat(geom.XY, []float64{lon, lat}))
	if err != nil {
		return geojson.Feature{}, err
	}
	return geojson.Feature{
		Type: "Feature",
		Properties: map[string]any{
			"kind":   string(category),
			"name":   name,
			"osm_id": osmID,
			"source": Source,
		},
		Geometry: point,
	}, nil
}
