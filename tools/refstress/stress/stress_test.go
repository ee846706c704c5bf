package stress

import (
	"context"
	"testing"

	"github.com/xichen2020/foundation/geom"
	"github.com/xichen2020/foundation/x/pool"

	"github.com/m3db/m3/src/x/instrument"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

func testOptions(scope tally.Scope) *Options {
	return NewOptions().
		SetInstrumentOptions(instrument.NewOptions().
			SetLogger(zap.NewNop()).
			SetMetricsScope(scope)).
		SetNumWorkers(4).
		SetNumIterations(500)
}

func TestRunReleasesOnce(t *testing.T) {
	scope := tally.NewTestScope("", nil)
	res, err := Run(context.Background(), testOptions(scope))
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)
	require.Equal(t, int32(1), res.NumReleases)
	require.Equal(t, 4, res.NumWorkers)

	counters := make(map[string]int64)
	for _, c := range scope.Snapshot().Counters() {
		counters[c.Name()] = c.Value()
	}
	require.Equal(t, int64(4*500), counters["iterations"])
	require.Equal(t, int64(1), counters["tracker.tracked"])
	require.Equal(t, int64(1), counters["tracker.released"])
}

func TestRunWithMeshPool(t *testing.T) {
	scope := tally.NewTestScope("", nil)
	meshOpts := geom.NewMeshPoolOptions().
		SetMeshPoolOptions(pool.NewOptions().SetSize(16)).
		SetVertexBuckets([]pool.Bucket{{Capacity: 4, Count: 16}})
	opts := testOptions(scope).SetMeshPoolOptions(meshOpts)

	res, err := Run(context.Background(), opts)
	require.NoError(t, err)
	require.Equal(t, int32(1), res.NumReleases)
}

func TestRunZeroIterations(t *testing.T) {
	res, err := Run(context.Background(), testOptions(tally.NoopScope).SetNumIterations(0))
	require.NoError(t, err)
	require.Equal(t, int32(1), res.NumReleases)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, testOptions(tally.NoopScope))
	require.Error(t, err)
	require.Contains(t, err.Error(), context.Canceled.Error())

	// The shared object is still released exactly once.
	require.Equal(t, int32(1), res.NumReleases)
}

func TestRunInvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), NewOptions().SetNumWorkers(0))
	require.Equal(t, errInvalidNumWorkers, err)

	_, err = Run(context.Background(), NewOptions().SetNumIterations(-1))
	require.Equal(t, errInvalidNumIterations, err)
}
