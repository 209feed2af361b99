// SPDX-License-Identifier: MIT
//
// options.go — functional options for the EDM engine's configuration record.
//
// Contract (strict):
//   - Options are functional (type Option func(*Options)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs; the
//     algorithms that consume a *finalized* Options never panic.
//   - NewOptions(opts...) resolves defaultOptions() → gatherOptions(opts) →
//     finalizeOptions(&o), so derived fields are normalized in one place.

package core

import "runtime"

// Options is the configuration record threaded through one predict
// invocation.
type Options struct {
	// E is the embedding dimension passed to Generator.CreateManifold for
	// both the library and query manifolds of this invocation.
	E int

	// Algorithm selects Simplex or Smap.
	Algorithm Algorithm

	// Distance selects Euclidean, MeanAbsoluteError, or Wasserstein.
	Distance DistanceMetric

	// Metrics holds one ColumnMetric per manifold column (Diff or
	// CheckSame). A nil or short slice is treated as Diff for the missing
	// entries — see ColumnMetricAt.
	Metrics []ColumnMetric

	// Thetas are the weighting-sharpness values; Simplex may evaluate
	// several, S-map uses only Thetas[0].
	Thetas []float64

	// K is the neighbor count. K<=0 means "use all valid neighbors".
	K int

	// MissingDistance is the raw per-column contribution substituted for a
	// missing cell; 0 means "reject the whole row on any missing cell".
	MissingDistance float64

	// MissingValue is the sentinel double used across x, y, extras, and
	// manifold cells to mark gaps. Defaults to DefaultMissing.
	MissingValue float64

	// PanelMode enables panel-boundary-aware lag/dt resolution and the IDW
	// cross-panel penalty.
	PanelMode bool

	// IDW is the distance penalty added when a candidate row's panel
	// differs from the query row's panel (only applied when PanelMode and
	// IDW>0).
	IDW float64

	// AspectRatio scales the Wasserstein cost matrix's dt-channel time axis.
	AspectRatio float64

	// SaveMode, when true, materializes S-map coefficient rows.
	SaveMode bool

	// Varssv caps how many coefficient entries are saved per row when
	// SaveMode is set; 0 means "save all E_actual+1 entries".
	Varssv int

	// NThreads requests worker-pool parallelism; <=0 resolves to
	// runtime.NumCPU() in finalizeOptions.
	NThreads int

	// ForceCompute, when true, tells S-map to proceed even when the
	// filtered neighbor count is below E_actual+1, letting the SVD solve
	// report near-zero singular values rather than failing fast with
	// INSUFFICIENT_UNIQUE.
	ForceCompute bool

	// ApproxWasserstein selects the Sinkhorn iterative-scaling
	// approximation over the exact min-cost-flow solve for the Wasserstein
	// kernel.
	ApproxWasserstein bool

	// SinkhornEpsilon is the entropic regularization strength for the
	// Sinkhorn alternative.
	SinkhornEpsilon float64

	// SinkhornMaxIter bounds the Sinkhorn alternating-scaling iterations.
	SinkhornMaxIter int
}

// Option mutates an Options value before it is finalized.
type Option func(*Options)

// Deterministic defaults (named, no magic numbers).
const (
	defaultE               = 1
	defaultK               = 0 // "all valid neighbors"
	defaultMissingDistance = 0.0
	defaultAspectRatio     = 1.0
	defaultVarssv          = 0
	defaultSinkhornEps     = 0.05
	defaultSinkhornMaxIter = 200
)

func defaultOptions() Options {
	return Options{
		E:                 defaultE,
		Algorithm:         Simplex,
		Distance:          Euclidean,
		Metrics:           nil,
		Thetas:            []float64{1.0},
		K:                 defaultK,
		MissingDistance:   defaultMissingDistance,
		MissingValue:      DefaultMissing,
		PanelMode:         false,
		IDW:               0.0,
		AspectRatio:       defaultAspectRatio,
		SaveMode:          false,
		Varssv:            defaultVarssv,
		NThreads:          0,
		ForceCompute:      false,
		ApproxWasserstein: false,
		SinkhornEpsilon:   defaultSinkhornEps,
		SinkhornMaxIter:   defaultSinkhornMaxIter,
	}
}

// gatherOptions applies each Option in order (later overrides earlier).
func gatherOptions(o *Options, opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// finalizeOptions normalizes derived fields once all options have applied.
func finalizeOptions(o *Options) {
	if o.NThreads <= 0 {
		o.NThreads = runtime.NumCPU()
	}
	if len(o.Thetas) == 0 {
		o.Thetas = []float64{1.0}
	}
}

// NewOptions builds a finalized Options from zero or more functional
// options, starting from deterministic defaults.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	o := defaultOptions()
	gatherOptions(&o, opts...)
	finalizeOptions(&o)

	return o
}

// WithE sets the embedding dimension. Panics if e < 1.
func WithE(e int) Option {
	if e < 1 {
		panic("core: WithE(e<1)")
	}
	return func(o *Options) { o.E = e }
}

// WithAlgorithm sets the prediction algorithm.
func WithAlgorithm(a Algorithm) Option {
	if a != Simplex && a != Smap {
		panic("core: WithAlgorithm(invalid)")
	}
	return func(o *Options) { o.Algorithm = a }
}

// WithDistance sets the distance metric.
func WithDistance(d DistanceMetric) Option {
	if d != Euclidean && d != MeanAbsoluteError && d != Wasserstein {
		panic("core: WithDistance(invalid)")
	}
	return func(o *Options) { o.Distance = d }
}

// WithMetrics sets the per-column metric vector. Panics on a nil slice;
// pass an explicit all-Diff slice if that is what is intended.
func WithMetrics(metrics []ColumnMetric) Option {
	if metrics == nil {
		panic("core: WithMetrics(nil)")
	}
	return func(o *Options) { o.Metrics = metrics }
}

// WithThetas sets the theta sequence. Panics on empty or any negative value.
func WithThetas(thetas []float64) Option {
	if len(thetas) == 0 {
		panic("core: WithThetas(empty)")
	}
	for _, th := range thetas {
		if th < 0 {
			panic("core: WithThetas(negative theta)")
		}
	}
	return func(o *Options) { o.Thetas = thetas }
}

// WithK sets the neighbor count. K<=0 means "all valid".
func WithK(k int) Option {
	return func(o *Options) { o.K = k }
}

// WithMissingDistance sets the raw per-column contribution for missing
// cells; 0 means "reject the row".
func WithMissingDistance(md float64) Option {
	if md < 0 {
		panic("core: WithMissingDistance(negative)")
	}
	return func(o *Options) { o.MissingDistance = md }
}

// WithMissingValue overrides the sentinel double used to mark gaps.
func WithMissingValue(v float64) Option {
	return func(o *Options) { o.MissingValue = v }
}

// WithPanelMode enables panel-boundary-aware behavior and sets the
// cross-panel distance penalty idw.
func WithPanelMode(idw float64) Option {
	if idw < 0 {
		panic("core: WithPanelMode(negative idw)")
	}
	return func(o *Options) {
		o.PanelMode = true
		o.IDW = idw
	}
}

// WithAspectRatio sets the Wasserstein time-axis rescaling factor.
// Panics if ratio <= 0.
func WithAspectRatio(ratio float64) Option {
	if ratio <= 0 {
		panic("core: WithAspectRatio(<=0)")
	}
	return func(o *Options) { o.AspectRatio = ratio }
}

// WithSaveMode enables S-map coefficient capture, saving at most varssv
// entries per row (0 means "save all").
func WithSaveMode(varssv int) Option {
	if varssv < 0 {
		panic("core: WithSaveMode(negative varssv)")
	}
	return func(o *Options) {
		o.SaveMode = true
		o.Varssv = varssv
	}
}

// WithThreads requests worker-pool parallelism. n<=0 defers to
// runtime.NumCPU() at finalization time.
func WithThreads(n int) Option {
	return func(o *Options) { o.NThreads = n }
}

// WithForceCompute makes S-map proceed on an under-determined design
// instead of failing fast with INSUFFICIENT_UNIQUE.
func WithForceCompute() Option {
	return func(o *Options) { o.ForceCompute = true }
}

// WithApproxWasserstein selects the Sinkhorn approximation with the given
// entropic regularization epsilon and iteration bound. Panics on eps<=0 or
// maxIter<=0.
func WithApproxWasserstein(eps float64, maxIter int) Option {
	if eps <= 0 {
		panic("core: WithApproxWasserstein(eps<=0)")
	}
	if maxIter <= 0 {
		panic("core: WithApproxWasserstein(maxIter<=0)")
	}
	return func(o *Options) {
		o.ApproxWasserstein = true
		o.SinkhornEpsilon = eps
		o.SinkhornMaxIter = maxIter
	}
}

// Validate checks the closed enums, the theta sequence, and that eActual is
// positive (only knowable once the manifold shape is), returning a sentinel
// error from errors.go. Metrics length is not compared with eActual;
// ColumnMetricAt defaults the missing entries to Diff.
func (o Options) Validate(eActual int) error {
	if o.Algorithm != Simplex && o.Algorithm != Smap {
		return ErrInvalidAlgorithm
	}
	if o.Distance != Euclidean && o.Distance != MeanAbsoluteError && o.Distance != Wasserstein {
		return ErrInvalidDistance
	}
	for _, m := range o.Metrics {
		if m != Diff && m != CheckSame {
			return ErrInvalidColumnMetric
		}
	}
	if len(o.Thetas) == 0 {
		return ErrNoThetas
	}
	for _, th := range o.Thetas {
		if th < 0 {
			return ErrNegativeTheta
		}
	}
	if eActual <= 0 {
		return ErrTooFewColumns
	}

	return nil
}

// ColumnMetricAt returns the metric for column j, defaulting to Diff when
// Metrics is shorter than j+1, since many callers only customize a prefix
// of columns.
func (o Options) ColumnMetricAt(j int) ColumnMetric {
	if j < len(o.Metrics) {
		return o.Metrics[j]
	}

	return Diff
}
