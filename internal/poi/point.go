package poi

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// ReducePoint reduces a raw GeoJSON geometry to a single representative
// lon/lat pair. Absent, null, or undecodable geometry yields ok=false;
// decode failures are never propagated as errors.
func ReducePoint(raw json.RawMessage) (lon, lat float64, ok bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, 0, false
	}
	var g geom.T
	if err := geojson.Unmarshal(raw, &g); err != nil {
		return 0, 0, false
	}
	return RepresentativePoint(g)
}

// RepresentativePoint returns a coordinate pair guaranteed to lie on or
// inside the geometry. Points pass through unchanged and unvalidated;
// lines yield one of their vertices; polygons yield an interior point
// (see interiorPoint). Empty or unsupported geometry yields ok=false.
func RepresentativePoint(g geom.T) (lon, lat float64, ok bool) {
	switch s := g.(type) {
	case *geom.Point:
		fc := s.FlatCoords()
		if len(fc) < 2 {
			return 0, 0, false
		}
		return fc[0], fc[1], true

	case *geom.MultiPoint:
		if s.NumPoints() == 0 {
			return 0, 0, false
		}
		return RepresentativePoint(s.Point(0))

	case *geom.LineString:
		return lineStringPoint(s)

	case *geom.MultiLineString:
		return multiLineStringPoint(s)

	case *geom.Polygon:
		return interiorPoint(s)

	case *geom.MultiPolygon:
		return multiPolygonPoint(s)

	case *geom.GeometryCollection:
		for _, member := range s.Geoms() {
			if x, y, found := RepresentativePoint(member); found {
				return x, y, true
			}
		}
		return 0, 0, false

	default:
		return 0, 0, false
	}
}

// lineStringPoint returns the middle vertex, which lies on the line by
// construction.
func lineStringPoint(ls *geom.LineString) (float64, float64, bool) {
	n := ls.NumCoords()
	if n == 0 {
		return 0, 0, false
	}
	c := ls.Coord(n / 2)
	return c[0], c[1], true
}

// multiLineStringPoint reduces the member with the most vertices.
func multiLineStringPoint(mls *geom.MultiLineString) (float64, float64, bool) {
	var longest *geom.LineString
	for i := 0; i < mls.NumLineStrings(); i++ {
		ls := mls.LineString(i)
		if longest == nil || ls.NumCoords() > longest.NumCoords() {
			longest = ls
		}
	}
	if longest == nil {
		return 0, 0, false
	}
	return lineStringPoint(longest)
}

// multiPolygonPoint reduces the member with the largest outer-ring area.
func multiPolygonPoint(mp *geom.MultiPolygon) (float64, float64, bool) {
	var best *geom.Polygon
	bestArea := -1.0
	for i := 0; i < mp.NumPolygons(); i++ {
		poly := mp.Polygon(i)
		if poly.NumLinearRings() == 0 {
			continue
		}
		if a := math.Abs(ringArea(poly.LinearRing(0))); a > bestArea {
			bestArea, best = a, poly
		}
	}
	if best == nil {
		return 0, 0, false
	}
	return interiorPoint(best)
}

// interiorPoint returns a point strictly inside the polygon: it scans a
// horizontal line at the bounding box's vertical bisector, collects ring
// crossings (holes included), and returns the midpoint of the widest
// interior span. Unlike a centroid this cannot fall outside a concave
// ring. If the scanline grazes a vertex and yields an odd crossing count,
// nearby offsets are tried.
func interiorPoint(p *geom.Polygon) (float64, float64, bool) {
	if p.NumLinearRings() == 0 {
		return 0, 0, false
	}
	outer := p.LinearRing(0).FlatCoords()
	if len(outer) < 3*p.Stride() {
		return 0, 0, false
	}

	b := p.Bounds()
	minY, maxY := b.Min(1), b.Max(1)
	if minY == maxY {
		// Degenerate flat ring; every vertex is equally representative.
		return outer[0], outer[1], true
	}

	for _, f := range []float64{0.5, 0.50001, 0.49999, 0.45, 0.55} {
		y := minY + (maxY-minY)*f
		if x, ok := widestSpanMidpoint(p, y); ok {
			return x, y, true
		}
	}
	return 0, 0, false
}

// widestSpanMidpoint intersects a horizontal line with all polygon rings
// and returns the midpoint of the widest interior interval. Crossing
// parity pairs the sorted intersections into inside spans.
func widestSpanMidpoint(p *geom.Polygon, y float64) (float64, bool) {
	stride := p.Stride()
	var xs []float64
	for i := 0; i < p.NumLinearRings(); i++ {
		fc := p.LinearRing(i).FlatCoords()
		n := len(fc) / stride
		for j := 0; j < n; j++ {
			k := (j + 1) % n
			x1, y1 := fc[j*stride], fc[j*stride+1]
			x2, y2 := fc[k*stride], fc[k*stride+1]
			if (y1 > y) != (y2 > y) {
				t := (y - y1) / (y2 - y1)
				xs = append(xs, x1+t*(x2-x1))
			}
		}
	}
	if len(xs) < 2 || len(xs)%2 != 0 {
		return 0, false
	}
	sort.Float64s(xs)

	bestIdx, bestWidth := -1, 0.0
	for i := 0; i+1 < len(xs); i += 2 {
		if w := xs[i+1] - xs[i]; w > bestWidth {
			bestWidth, bestIdx = w, i
		}
	}
	if bestIdx < 0 {
		return 0, false
	}
	return (xs[bestIdx] + xs[bestIdx+1]) / 2, true
}

// ringArea is the signed shoelace area of a linear ring.
func ringArea(r *geom.LinearRing) float64 {
	fc, stride := r.FlatCoords(), r.Stride()
	n := len(fc) / stride
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += fc[i*stride]*fc[j*stride+1] - fc[j*stride]*fc[i*stride+1]
	}
	return sum / 2
}
