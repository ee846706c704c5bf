// Package stress shares reference counted objects between many goroutines
// and verifies that every object is released exactly once.
package stress

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/xichen2020/foundation/geom"
	"github.com/xichen2020/foundation/refcnt"
	"github.com/xichen2020/foundation/refptr"

	xerrors "github.com/m3db/m3/src/x/errors"
	"github.com/pborman/uuid"
	"go.uber.org/zap"
	"golang.org/x/image/math/f32"
	"golang.org/x/sync/errgroup"
)

var (
	errInvalidNumWorkers    = errors.New("number of workers must be positive")
	errInvalidNumIterations = errors.New("number of iterations must not be negative")
	errReleasedWhileHeld    = errors.New("object released while references are held")
	errCastFailed           = errors.New("cast back to the shared object failed")
)

// Result is the result of a stress run.
type Result struct {
	ID            string
	NumWorkers    int
	NumIterations int
	NumReleases   int32
	Duration      time.Duration
}

type sharedObject struct {
	refcnt.AtomicRefCounter

	released int32
}

func (o *sharedObject) numReleases() int32 { return atomic.LoadInt32(&o.released) }

// Run runs a stress test. All workers share one object; each repeatedly
// clones and drops a handle to it and checks that the object is alive.
// Once the workers are done, the last handle is dropped and the object
// must have been released exactly once with no tracked instance left.
func Run(ctx context.Context, opts *Options) (Result, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if opts.NumWorkers() <= 0 {
		return Result{}, errInvalidNumWorkers
	}
	if opts.NumIterations() < 0 {
		return Result{}, errInvalidNumIterations
	}

	var (
		id      = uuid.New()
		iOpts   = opts.InstrumentOptions()
		scope   = iOpts.MetricsScope()
		logger  = iOpts.Logger().With(zap.String("run", id))
		tracker = refcnt.NewTracker(refcnt.NewTrackerOptions().SetInstrumentOptions(
			iOpts.SetLogger(logger).SetMetricsScope(scope.SubScope("tracker")),
		))
		iterations = scope.Counter("iterations")
		obj        = &sharedObject{}
	)
	obj.SetOnZeroRefCount(func() { atomic.AddInt32(&obj.released, 1) })
	tracker.Track(obj)
	root := refptr.NewPtr(obj, refptr.Transfer)

	var meshPool *geom.MeshPool
	if meshOpts := opts.MeshPoolOptions(); meshOpts != nil {
		meshPool = geom.NewMeshPool(meshOpts.SetTracker(tracker))
	}

	logger.Info("starting stress run",
		zap.Int("workers", opts.NumWorkers()),
		zap.Int("iterations", opts.NumIterations()),
		zap.Bool("meshes", meshPool != nil),
	)

	var (
		start   = time.Now()
		g, gCtx = errgroup.WithContext(ctx)
	)
	for i := 0; i < opts.NumWorkers(); i++ {
		local := root.Clone()
		g.Go(func() error {
			defer local.Reset()
			for j := 0; j < opts.NumIterations(); j++ {
				if j%checkCtxEvery == 0 {
					if err := gCtx.Err(); err != nil {
						return err
					}
				}
				if err := cycle(local); err != nil {
					return err
				}
				if meshPool != nil {
					cycleMesh(meshPool, j)
				}
				iterations.Inc(1)
			}
			return nil
		})
	}
	workerErr := g.Wait()
	root.Reset()

	res := Result{
		ID:            id,
		NumWorkers:    opts.NumWorkers(),
		NumIterations: opts.NumIterations(),
		NumReleases:   obj.numReleases(),
		Duration:      time.Since(start),
	}

	var multiErr xerrors.MultiError
	multiErr = multiErr.Add(workerErr)
	if res.NumReleases != 1 {
		multiErr = multiErr.Add(fmt.Errorf("object released %d times instead of once", res.NumReleases))
	}
	if n := obj.RefCount(); n != 0 {
		multiErr = multiErr.Add(fmt.Errorf("object has ref count %d after all handles are reset", n))
	}
	multiErr = multiErr.Add(tracker.CheckLeaks())
	if err := multiErr.FinalError(); err != nil {
		logger.Error("stress run failed", zap.Error(err))
		return res, err
	}

	logger.Info("stress run succeeded", zap.Duration("took", res.Duration))
	return res, nil
}

func cycle(local *refptr.Ptr[*sharedObject]) error {
	h := local.Clone()
	defer h.Reset()

	if h.Get().numReleases() != 0 {
		return errReleasedWhileHeld
	}

	counted := refptr.Convert[refcnt.RefCounted](h)
	defer counted.Reset()

	back := refptr.DynamicCast[*sharedObject](counted)
	defer back.Reset()
	if !refptr.Equal(back, h) {
		return errCastFailed
	}
	return nil
}

func cycleMesh(p *geom.MeshPool, n int) {
	h := p.Get(4)
	defer h.Reset()

	h.Get().Append(f32.Vec3{float32(n), 0, 0}, f32.Vec3{0, float32(n), 0})
	shared := h.Clone()
	defer shared.Reset()

	geom.TransformMesh(h, geom.Translation(f32.Vec3{1, 1, 1}))
}
