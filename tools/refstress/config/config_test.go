package config

import (
	"testing"
	"time"

	"github.com/xichen2020/foundation/tools/refstress/stress"

	xconfig "github.com/m3db/m3/src/x/config"
	"github.com/m3db/m3/src/x/instrument"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

const testConfig = `
logging:
  level: debug
stress:
  numWorkers: 3
  numIterations: 20
  timeout: 10s
  meshPool:
    meshes:
      size: 8
    vertices:
      buckets:
        - capacity: 4
          count: 8
`

func TestStressConfigurationNewOptions(t *testing.T) {
	var cfg Configuration
	require.NoError(t, yaml.Unmarshal([]byte(testConfig), &cfg))
	require.Nil(t, cfg.Metrics)
	require.Equal(t, 10*time.Second, *cfg.Stress.Timeout)

	opts, err := cfg.Stress.NewOptions(instrument.NewOptions())
	require.NoError(t, err)
	require.Equal(t, 3, opts.NumWorkers())
	require.Equal(t, 20, opts.NumIterations())
	require.NotNil(t, opts.MeshPoolOptions())
	require.Equal(t, 8, opts.MeshPoolOptions().MeshPoolOptions().Size())
	require.Len(t, opts.MeshPoolOptions().VertexBuckets(), 1)
}

func TestStressConfigurationDefaults(t *testing.T) {
	var cfg StressConfiguration
	opts, err := cfg.NewOptions(instrument.NewOptions())
	require.NoError(t, err)
	require.Equal(t, stress.NewOptions().NumWorkers(), opts.NumWorkers())
	require.Nil(t, opts.MeshPoolOptions())
}

func TestStressConfigurationInvalidMeshPool(t *testing.T) {
	cfg := StressConfiguration{}
	require.NoError(t, yaml.Unmarshal([]byte(`
meshPool:
  vertices:
    buckets:
      - capacity: 0
        count: 8
`), &cfg))
	_, err := cfg.NewOptions(instrument.NewOptions())
	require.Error(t, err)
}

func TestLoadBundledConfig(t *testing.T) {
	var cfg Configuration
	require.NoError(t, xconfig.LoadFile(&cfg, "../main/refstress.yaml", xconfig.Options{}))
	require.NotNil(t, cfg.Metrics)
	require.NotNil(t, cfg.Stress.MeshPool)
	require.NoError(t, cfg.Stress.MeshPool.Validate())
	require.Equal(t, time.Minute, *cfg.Stress.Timeout)

	_, err := cfg.Logging.BuildLogger()
	require.NoError(t, err)
}
