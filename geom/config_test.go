package geom

import (
	"testing"

	"github.com/m3db/m3/src/x/instrument"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func TestMeshPoolConfigurationKeepsDefaultSize(t *testing.T) {
	cfgStr := `
meshes:
  watermark:
    low: 0.2
    high: 0.5
`
	var cfg MeshPoolConfiguration
	require.NoError(t, yaml.Unmarshal([]byte(cfgStr), &cfg))
	require.NoError(t, cfg.Validate())

	opts := cfg.NewOptions(instrument.NewOptions())
	meshOpts := opts.MeshPoolOptions()
	require.Equal(t, defaultMeshPoolSize, meshOpts.Size())
	require.Equal(t, 0.2, meshOpts.RefillLowWatermark())
	require.Equal(t, 0.5, meshOpts.RefillHighWatermark())
	require.Equal(t, defaultVertexBuckets, opts.VertexBuckets())
}

func TestMeshPoolConfigurationOverrides(t *testing.T) {
	cfgStr := `
meshes:
  size: 8
vertices:
  buckets:
    - capacity: 4
      count: 2
`
	var cfg MeshPoolConfiguration
	require.NoError(t, yaml.Unmarshal([]byte(cfgStr), &cfg))
	require.NoError(t, cfg.Validate())

	opts := cfg.NewOptions(instrument.NewOptions())
	require.Equal(t, 8, opts.MeshPoolOptions().Size())
	require.Len(t, opts.VertexBuckets(), 1)

	p := NewMeshPool(opts)
	h := p.Get(4)
	require.Equal(t, 4, cap(h.Get().Vertices()))
	h.Reset()
}
