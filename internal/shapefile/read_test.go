package shapefile

import (
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func writePointShapefile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pois.shp")

	w, err := shp.Create(path, shp.POINT)
	require.NoError(t, err)

	fields := []shp.Field{
		shp.StringField("building", 25),
		shp.StringField("name", 50),
	}
	w.SetFields(fields)

	points := []shp.Point{{X: 10, Y: 20}, {X: 30, Y: 40}}
	names := []string{"Temple A", "Temple B"}
	for n := range points {
		w.Write(&points[n])
		require.NoError(t, w.WriteAttribute(n, 0, "synagogue"))
		require.NoError(t, w.WriteAttribute(n, 1, names[n]))
	}
	w.Close()

	return path
}

func TestRead(t *testing.T) {
	path := writePointShapefile(t)

	features, err := Read(path)
	require.NoError(t, err)
	require.Len(t, features, 2)

	assert.Equal(t, "synagogue", features[0].Properties["building"])
	assert.Equal(t, "Temple A", features[0].Properties["name"])
	assert.JSONEq(t, `{"type":"Point","coordinates":[10,20]}`, string(features[0].Geometry))
	assert.Equal(t, "Temple B", features[1].Properties["name"])
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.shp"))
	assert.Error(t, err)
}

func TestToGeomPoint(t *testing.T) {
	g := toGeom(&shp.Point{X: 1, Y: 2})
	p, ok := g.(*geom.Point)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, p.FlatCoords())
}

func TestToGeomNilAndUnsupported(t *testing.T) {
	assert.Nil(t, toGeom(nil))
	assert.Nil(t, toGeom(&shp.Null{}))
	assert.Nil(t, toGeom(&shp.PolyLine{}))
	assert.Nil(t, toGeom(&shp.Polygon{}))
}

func TestToGeomPolyLine(t *testing.T) {
	pl := shp.NewPolyLine([][]shp.Point{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}},
	})

	g := toGeom(pl)
	mls, ok := g.(*geom.MultiLineString)
	require.True(t, ok)
	require.Equal(t, 2, mls.NumLineStrings())
	assert.Equal(t, []float64{2, 2, 3, 3, 4, 4}, mls.LineString(1).FlatCoords())
}

func TestToGeomPolygon(t *testing.T) {
	ring := []shp.Point{{X: 0, Y: 0}, {X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 0}}
	p := shp.Polygon(*shp.NewPolyLine([][]shp.Point{ring}))

	g := toGeom(&p)
	mp, ok := g.(*geom.MultiPolygon)
	require.True(t, ok)
	require.Equal(t, 1, mp.NumPolygons())
	assert.Equal(t, 1, mp.Polygon(0).NumLinearRings())
}
