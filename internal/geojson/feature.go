// Package geojson reads and writes GeoJSON feature collections with
// best-effort tolerance for missing or malformed members. Geometry is kept
// as raw JSON so one undecodable geometry never fails the whole file;
// decoding happens per feature downstream.
package geojson

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Feature is a single GeoJSON feature. Properties carries arbitrary
// string-keyed attributes; any key may be absent.
type Feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties,omitempty"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
}

// FeatureCollection is the top-level GeoJSON envelope.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Read loads a feature collection from path. A JSON syntax error or an
// unreadable file is fatal; a missing or non-list "features" member yields
// an empty slice, and individually undecodable entries are skipped.
func Read(path string) ([]Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geojson: read %s", path)
	}

	var envelope struct {
		Features json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, eris.Wrapf(err, "geojson: parse %s", path)
	}
	if len(envelope.Features) == 0 {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(envelope.Features, &raw); err != nil {
		zap.L().Warn("geojson: features is not a list, treating as empty", zap.String("path", path))
		return nil, nil
	}

	features := make([]Feature, 0, len(raw))
	var skipped int
	for _, r := range raw {
		var f Feature
		if err := json.Unmarshal(r, &f); err != nil {
			skipped++
			continue
		}
		features = append(features, f)
	}
	if skipped > 0 {
		zap.L().Debug("geojson: skipped undecodable features",
			zap.String("path", path),
			zap.Int("skipped", skipped),
		)
	}

	return features, nil
}

// Write stores features as a FeatureCollection at path, whole-file.
func Write(path string, features []Feature) error {
	if features == nil {
		features = []Feature{}
	}
	fc := FeatureCollection{Type: "FeatureCollection", Features: features}

	data, err := json.Marshal(fc)
	if err != nil {
		return eris.Wrap(err, "geojson: marshal collection")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "geojson: write %s", path)
	}
	return nil
}
