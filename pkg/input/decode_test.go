package input_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lipidtools/ordercfg/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDecodeOrderType(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want *input.OrderType
	}{
		{
			name: "atomistic",
			doc: `!AAOrder
heavy_atoms: "element name carbon"
hydrogens: "element name hydrogen"`,
			want: input.AAOrder("element name carbon", "element name hydrogen"),
		},
		{
			name: "coarse-grained",
			doc:  `!CGOrder {beads: "@membrane"}`,
			want: input.CGOrder("@membrane"),
		},
		{
			name: "united-atom",
			doc: `!UAOrder
saturated: "name C211 C212"
unsaturated: "name C29 C210"`,
			want: input.UAOrder("name C211 C212", "name C29 C210", ""),
		},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			var got input.OrderType
			require.NoError(t, yaml.Unmarshal([]byte(v.doc), &got))
			assert.Equal(t, v.want, &got)
		})
	}
}

func TestDecodeOrderTypeUnknownTag(t *testing.T) {
	var got input.OrderType
	err := yaml.Unmarshal([]byte(`!Unknown {atoms: "name P"}`), &got)
	require.Error(t, err)

	var serr *input.SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "type", serr.Field)
}

func TestDecodeNormal(t *testing.T) {
	t.Run("static axis", func(t *testing.T) {
		var got input.Normal
		require.NoError(t, yaml.Unmarshal([]byte(`z`), &got))
		assert.Equal(t, input.StaticNormal(input.AxisZ), &got)
	})

	t.Run("dynamic", func(t *testing.T) {
		var got input.Normal
		doc := `!Dynamic {heads: "name P"}`
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got))
		require.Equal(t, input.NormalDynamic, got.Kind)
		assert.Equal(t, "name P", got.Dynamic.Heads)
		// radius defaults to 2 nm
		assert.InDelta(t, 2.0, got.Dynamic.Radius, 1e-9)
	})

	t.Run("from file", func(t *testing.T) {
		var got input.Normal
		require.NoError(t, yaml.Unmarshal([]byte(`!FromFile normals.yaml`), &got))
		assert.Equal(t, input.NormalFromFileSpec("normals.yaml"), &got)
	})

	t.Run("invalid axis", func(t *testing.T) {
		var got input.Normal
		err := yaml.Unmarshal([]byte(`w`), &got)
		require.Error(t, err)

		var serr *input.SchemaError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, "membrane_normal", serr.Field)
	})
}

func TestDecodeLeaflets(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind string
	}{
		{
			name: "global",
			doc:  "!Global\nmembrane: \"@membrane\"\nheads: \"name P\"",
			kind: input.KindGlobalLeaflets,
		},
		{
			name: "local",
			doc:  "!Local\nmembrane: \"@membrane\"\nheads: \"name P\"\nradius: 2.5",
			kind: input.KindLocalLeaflets,
		},
		{
			name: "individual",
			doc:  "!Individual\nheads: \"name P\"\nmethyls: \"name C218 C316\"",
			kind: input.KindIndividualLeaflets,
		},
		{
			name: "clustering",
			doc:  "!Clustering\nheads: \"name P\"",
			kind: input.KindClusteringLeaflets,
		},
		{
			name: "from file",
			doc:  "!FromFile\nfile: leaflets.yaml",
			kind: input.KindFromFileLeaflets,
		},
		{
			name: "from ndx",
			doc: "!FromNdx\nndx: leaflets.ndx\nheads: \"name P\"\n" +
				"upper_leaflet: Upper\nlower_leaflet: Lower",
			kind: input.KindFromNdxLeaflets,
		},
	}

	for _, v := range tests {
		t.Run(v.name, func(t *testing.T) {
			var got input.Leaflets
			require.NoError(t, yaml.Unmarshal([]byte(v.doc), &got))
			assert.Equal(t, v.kind, got.Kind)
		})
	}
}

func TestDecodeLeafletFrequency(t *testing.T) {
	t.Run("defaults to every frame", func(t *testing.T) {
		var got input.Leaflets
		doc := "!Global\nmembrane: \"@membrane\"\nheads: \"name P\""
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got))
		assert.Equal(t, input.Every(1), got.Global.Frequency)
	})

	t.Run("every nth frame", func(t *testing.T) {
		var got input.Leaflets
		doc := "!Global\nmembrane: \"@membrane\"\nheads: \"name P\"\nfrequency: !Every 10"
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got))
		assert.Equal(t, input.Every(10), got.Global.Frequency)
	})

	t.Run("once", func(t *testing.T) {
		var got input.Leaflets
		doc := "!Global\nmembrane: \"@membrane\"\nheads: \"name P\"\nfrequency: !Once"
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got))
		assert.Equal(t, input.Once(), got.Global.Frequency)
	})

	t.Run("membrane normal override", func(t *testing.T) {
		var got input.Leaflets
		doc := "!Global\nmembrane: \"@membrane\"\nheads: \"name P\"\nmembrane_normal: y"
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got))
		require.NotNil(t, got.Global.MembraneNormal)
		assert.Equal(t, input.AxisY, *got.Global.MembraneNormal)
	})
}

func TestDecodeGeometry(t *testing.T) {
	t.Run("cuboid with default dimensions", func(t *testing.T) {
		var got input.Geometry
		doc := "!Cuboid\nreference: !Center\nxdim: [-3.0, 2.0]"
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got))
		require.Equal(t, input.KindCuboid, got.Kind)
		assert.Equal(t, input.CenterReference(), got.Cuboid.Reference)
		assert.Equal(t, input.Span{-3, 2}, got.Cuboid.XDim)
		assert.Equal(t, input.FullSpan(), got.Cuboid.YDim)
		assert.Equal(t, input.FullSpan(), got.Cuboid.ZDim)
	})

	t.Run("cylinder with selection reference", func(t *testing.T) {
		var got input.Geometry
		doc := "!Cylinder\nreference: \"@protein\"\nradius: 2.0\n" +
			"span: [0.0, .inf]\norientation: z"
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got))
		require.Equal(t, input.KindCylinder, got.Kind)
		assert.Equal(t, input.SelectionReference("@protein"), got.Cylinder.Reference)
		assert.InDelta(t, 2.0, got.Cylinder.Radius, 1e-9)
		assert.InDelta(t, 0.0, got.Cylinder.Span[0], 1e-9)
		assert.True(t, math.IsInf(got.Cylinder.Span[1], 1))
	})

	t.Run("sphere with point reference", func(t *testing.T) {
		var got input.Geometry
		doc := "!Sphere\nreference: [5.0, 2.5, 3.5]\nradius: 5.0"
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got))
		require.Equal(t, input.KindSphere, got.Kind)
		assert.Equal(t, input.PointReference(5, 2.5, 3.5), got.Sphere.Reference)
		assert.InDelta(t, 5.0, got.Sphere.Radius, 1e-9)
	})

	t.Run("unknown shape", func(t *testing.T) {
		var got input.Geometry
		err := yaml.Unmarshal([]byte("!Cone\nradius: 1.0"), &got)
		require.Error(t, err)

		var serr *input.SchemaError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, "geometry", serr.Field)
	})
}

func TestDecodeOrderMapDefaults(t *testing.T) {
	var got input.OrderMap
	doc := "output_directory: maps"
	require.NoError(t, yaml.Unmarshal([]byte(doc), &got))

	assert.Equal(t, "maps", got.OutputDirectory)
	assert.Equal(t, 1, got.MinSamples)
	assert.Equal(t, [2]float64{0.1, 0.1}, got.BinSize)
	assert.Empty(t, got.Plane)
	assert.Equal(t, input.AutoGridSpan(), got.Dim[0])
	assert.Equal(t, input.AutoGridSpan(), got.Dim[1])
}

func TestDecodePathList(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		var got input.PathList
		require.NoError(t, yaml.Unmarshal([]byte(`md.xtc`), &got))
		assert.Equal(t, input.PathList{"md.xtc"}, got)
	})

	t.Run("sequence", func(t *testing.T) {
		var got input.PathList
		require.NoError(t, yaml.Unmarshal([]byte("- a.xtc\n- b.xtc"), &got))
		assert.Equal(t, input.PathList{"a.xtc", "b.xtc"}, got)
	})

	t.Run("mapping rejected", func(t *testing.T) {
		var got input.PathList
		err := yaml.Unmarshal([]byte("file: md.xtc"), &got)
		require.Error(t, err)
	})
}

func TestDecodeFrequencyBadPayload(t *testing.T) {
	var got input.Frequency
	err := yaml.Unmarshal([]byte(`!Every often`), &got)
	require.Error(t, err)

	var serr *input.SchemaError
	require.True(t, errors.As(err, &serr))
	assert.Contains(t, serr.Msg, "integer")
}
