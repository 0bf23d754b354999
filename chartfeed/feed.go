package chartfeed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdecimate/decimate"
	"github.com/sgostarter/libeasygo/routineman"
)

type Config struct {
	// MaxPointCount caps the samples kept per series; the oldest are
	// dropped first.
	MaxPointCount int

	FlushInterval time.Duration
	CacheTTL      time.Duration
}

// Feed collects timestamped (x, y) samples per key and serves decimated
// curves to charting front-ends. The decimation engine stays pure; all
// locking, caching and storage live here.
type Feed struct {
	cfg     Config
	logger  l.Wrapper
	storage Storage

	lock      sync.RWMutex
	series    map[string][]Sample
	gens      map[string]uint64
	dirtyKeys map[string]struct{}

	cachedCurves *cache.Cache

	routineMan routineman.RoutineMan
}

func NewFeed(storage Storage, logger l.Wrapper) *Feed {
	return NewFeedEx(Config{}, storage, logger)
}

// NewFeedEx accepts a nil storage for a memory-only feed.
func NewFeedEx(cfg Config, storage Storage, logger l.Wrapper) *Feed {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "chartFeed"))

	if cfg.MaxPointCount <= 0 {
		cfg.MaxPointCount = 10000
	}

	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Minute
	}

	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Second * 10
	}

	impl := &Feed{
		cfg:          cfg,
		logger:       logger,
		storage:      storage,
		series:       make(map[string][]Sample),
		gens:         make(map[string]uint64),
		dirtyKeys:    make(map[string]struct{}),
		cachedCurves: cache.New(cfg.CacheTTL, cfg.CacheTTL),
		routineMan:   routineman.NewRoutineMan(context.Background(), logger),
	}

	impl.init()

	return impl
}

func (impl *Feed) TriggerStop() {
	impl.routineMan.TriggerStop()
}

func (impl *Feed) Wait() {
	impl.routineMan.Wait()
}

func (impl *Feed) init() {
	if impl.storage != nil {
		keys, err := impl.storage.Keys()
		if err != nil {
			impl.logger.WithFields(l.ErrorField(err)).Error("list stored series")
		}

		for _, key := range keys {
			samples, e := impl.storage.Load(key)
			if e != nil {
				impl.logger.WithFields(l.ErrorField(e), l.StringField("key", key)).Error("load stored series")

				continue
			}

			impl.series[key] = samples
		}
	}

	impl.routineMan.StartRoutine(impl.flushRoutine, "flushRoutine")
}

func (impl *Feed) Append(key string, t, x, y float64) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	samples := append(impl.series[key], Sample{T: t, X: x, Y: y})
	if len(samples) > impl.cfg.MaxPointCount {
		samples = append([]Sample{}, samples[len(samples)-impl.cfg.MaxPointCount:]...)
	}

	impl.series[key] = samples
	impl.gens[key]++
	impl.dirtyKeys[key] = struct{}{}
}

// Samples returns a copy of the raw stored series.
func (impl *Feed) Samples(key string) []Sample {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	return append([]Sample{}, impl.series[key]...)
}

// Curve returns the series decimated to exactly maxPoints samples via
// retained-index growth, or the whole series when it is already short
// enough. maxPoints <= 0 disables decimation.
func (impl *Feed) Curve(key string, maxPoints int) (*decimate.PointSeries, error) {
	samples, gen, err := impl.snapshot(key)
	if err != nil {
		return nil, err
	}

	cachedKey := fmt.Sprintf("c:%s:%d:%d", key, gen, maxPoints)

	if ps, ok := impl.cachedCurve(cachedKey); ok {
		return ps, nil
	}

	timestamps, xs, ys := splitSamples(samples)

	var ps *decimate.PointSeries

	if maxPoints <= 0 || maxPoints >= len(samples) {
		ps = decimate.PointSeriesFromSlices(timestamps, xs, ys)
	} else {
		ps, err = decimate.Decimate(timestamps, xs, ys, maxPoints)
		if err != nil {
			return nil, err
		}
	}

	impl.cachedCurves.SetDefault(cachedKey, ps)

	return ps, nil
}

// CurveByTolerance returns the series decimated to the samples deviating
// more than tolerance from their chords.
func (impl *Feed) CurveByTolerance(key string, tolerance float64) (*decimate.PointSeries, error) {
	samples, gen, err := impl.snapshot(key)
	if err != nil {
		return nil, err
	}

	cachedKey := fmt.Sprintf("t:%s:%d:%v", key, gen, tolerance)

	if ps, ok := impl.cachedCurve(cachedKey); ok {
		return ps, nil
	}

	timestamps, xs, ys := splitSamples(samples)

	ps, err := decimate.DecimateByTolerance(timestamps, xs, ys, tolerance)
	if err != nil {
		return nil, err
	}

	impl.cachedCurves.SetDefault(cachedKey, ps)

	return ps, nil
}

// Flush persists every dirty series immediately instead of waiting for
// the next flush tick.
func (impl *Feed) Flush() {
	impl.flushDirty()
}

func (impl *Feed) snapshot(key string) (samples []Sample, gen uint64, err error) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	samples = impl.series[key]
	gen = impl.gens[key]

	if len(samples) == 0 {
		err = commerr.ErrNotFound
	}

	return
}

func (impl *Feed) cachedCurve(cachedKey string) (*decimate.PointSeries, bool) {
	i, ok := impl.cachedCurves.Get(cachedKey)
	if !ok {
		return nil, false
	}

	ps, ok := i.(*decimate.PointSeries)

	return ps, ok
}

func (impl *Feed) flushRoutine(ctx context.Context, _ func() bool) {
	loop := true

	for loop {
		select {
		case <-ctx.Done():
			loop = false

			impl.flushDirty()

			continue
		case <-time.After(impl.cfg.FlushInterval):
			impl.flushDirty()
		}
	}
}

func (impl *Feed) flushDirty() {
	if impl.storage == nil {
		return
	}

	impl.lock.Lock()

	pending := make(map[string][]Sample, len(impl.dirtyKeys))

	for key := range impl.dirtyKeys {
		pending[key] = append([]Sample{}, impl.series[key]...)
	}

	impl.dirtyKeys = make(map[string]struct{})

	impl.lock.Unlock()

	for key, samples := range pending {
		if err := impl.storage.Save(key, samples); err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("save series")
		}
	}
}

func splitSamples(samples []Sample) (timestamps, xs, ys []float64) {
	timestamps = make([]float64, len(samples))
	xs = make([]float64, len(samples))
	ys = make([]float64, len(samples))

	for i, sample := range samples {
		timestamps[i] = sample.T
		xs[i] = sample.X
		ys[i] = sample.Y
	}

	return
}
