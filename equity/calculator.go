package equity

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerstudy/internal/randutil"
	"github.com/lox/pokerstudy/poker"
	"github.com/lox/pokerstudy/ranges"
)

const (
	defaultBatchSize = 256
	maxWorkers       = 8
)

// Calculator runs equity simulations across a pool of workers. Each worker
// owns a generator seeded from the caller's Rand, so a fixed seed and worker
// count reproduce the same result. A Calculator is safe for concurrent use.
type Calculator struct {
	workers int
	eval    poker.Evaluator
	budget  time.Duration
	clock   quartz.Clock
	batch   int
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithWorkers sets the number of parallel workers. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		c.workers = max(n, 1)
	}
}

// WithEvaluator sets the hand evaluator backend.
func WithEvaluator(e poker.Evaluator) Option {
	return func(c *Calculator) {
		if e != nil {
			c.eval = e
		}
	}
}

// WithBudget caps the wall time of a run. Workers check the budget between
// batches, so at least one batch always completes. Zero means no budget.
func WithBudget(d time.Duration) Option {
	return func(c *Calculator) {
		c.budget = max(d, 0)
	}
}

// WithClock sets the clock the budget is measured on.
func WithClock(clock quartz.Clock) Option {
	return func(c *Calculator) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithBatchSize sets how many trials a worker plays between budget and
// cancellation checks.
func WithBatchSize(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.batch = n
		}
	}
}

// NewCalculator returns a Calculator using the direct evaluator and up to
// eight workers unless configured otherwise.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		workers: min(runtime.NumCPU(), maxWorkers),
		eval:    poker.Direct{},
		clock:   quartz.NewReal(),
		batch:   defaultBatchSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Workers returns the configured worker count.
func (c *Calculator) Workers() int {
	return c.workers
}

// VsRandom estimates hero's equity against one opponent holding any two
// unseen cards. If ctx is cancelled the partial result is returned together
// with the context's error.
func (c *Calculator) VsRandom(ctx context.Context, hero poker.Hand, board []poker.Card, trials int, rng Rand) (Result, error) {
	if trials < 1 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidTrials, trials)
	}
	dead, err := validate(board, hero)
	if err != nil {
		return Result{}, err
	}

	deck := poker.RemainingDeck(dead)
	shares := splitTrials(trials, c.workers)
	jobs := make([][]job, len(shares))
	for i, n := range shares {
		jobs[i] = []job{{deck: deck, trials: n, weight: 1}}
	}
	return c.runHeads(ctx, hero, board, jobs, rng)
}

// VsRange estimates hero's equity against a weighted opponent range. Every
// unblocked combo of a class gets ceil(trialsPerCombo*weight/validCombos)
// trials, each counted with the class weight. A range left empty by blockers
// yields a zero-sample Result whose Equity is 0.5.
func (c *Calculator) VsRange(ctx context.Context, hero poker.Hand, board []poker.Card, opponents *ranges.Range, trialsPerCombo int, rng Rand) (Result, error) {
	if trialsPerCombo < 1 {
		return Result{}, fmt.Errorf("%w: %d per combo", ErrInvalidTrials, trialsPerCombo)
	}
	dead, err := validate(board, hero)
	if err != nil {
		return Result{}, err
	}
	if opponents == nil {
		return Result{}, nil
	}

	var all []job
	for _, cc := range opponents.Expand(dead) {
		if len(cc.Combos) == 0 {
			continue
		}
		n := int(math.Ceil(float64(trialsPerCombo) * cc.Weight / float64(len(cc.Combos))))
		for _, combo := range cc.Combos {
			opp := combo
			all = append(all, job{
				opp:    &opp,
				deck:   poker.RemainingDeck(dead.Union(combo.Set())),
				trials: n,
				weight: cc.Weight,
			})
		}
	}
	if len(all) == 0 {
		return Result{}, nil
	}

	jobs := make([][]job, min(c.workers, len(all)))
	for i, j := range all {
		jobs[i%len(jobs)] = append(jobs[i%len(jobs)], j)
	}
	return c.runHeads(ctx, hero, board, jobs, rng)
}

// Hands runs a multi-way showdown between every hand and returns one Result
// per hand. Ties among k hands credit each a k-th of the pot.
func (c *Calculator) Hands(ctx context.Context, hands []poker.Hand, board []poker.Card, trials int, rng Rand) ([]Result, error) {
	if trials < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTrials, trials)
	}
	if len(hands) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 hands, got %d", poker.ErrInvalidArity, len(hands))
	}
	dead, err := validate(board, hands...)
	if err != nil {
		return nil, err
	}
	deck := poker.RemainingDeck(dead)
	if len(deck) < 5-len(board) {
		return nil, fmt.Errorf("%w: %d cards left to complete the board", poker.ErrInsufficientCards, len(deck))
	}

	shares := splitTrials(trials, c.workers)
	parts, err := fanOut(ctx, c, len(shares), rng, func(i int, rng Rand, b *batcher) ([]Result, error) {
		s := newShowdown(c.eval, board)
		results := make([]Result, len(hands))
		for n := 0; n < shares[i]; n++ {
			if !b.next() {
				for k := range results {
					results[k].Partial = true
				}
				break
			}
			if err := s.multi(hands, deck, results, rng); err != nil {
				return results, err
			}
		}
		return results, nil
	})

	out := make([]Result, len(hands))
	for _, p := range parts {
		for k := range p {
			out[k] = out[k].Merge(p[k])
		}
	}
	return out, err
}

func (c *Calculator) runHeads(ctx context.Context, hero poker.Hand, board []poker.Card, jobs [][]job, rng Rand) (Result, error) {
	parts, err := fanOut(ctx, c, len(jobs), rng, func(i int, rng Rand, b *batcher) (Result, error) {
		s := newShowdown(c.eval, board)
		var res Result
		for _, j := range jobs[i] {
			for n := 0; n < j.trials; n++ {
				if !b.next() {
					res.Partial = true
					return res, nil
				}
				winners, err := s.heads(hero, j, rng)
				if err != nil {
					return res, err
				}
				res.record(winners, j.weight)
			}
		}
		return res, nil
	})

	var total Result
	for _, p := range parts {
		total = total.Merge(p)
	}
	return total, err
}

// batcher counts trials and consults stop at every batch boundary.
type batcher struct {
	size   int
	played int
	stop   func() bool
}

func (b *batcher) next() bool {
	if b.played > 0 && b.played%b.size == 0 && b.stop() {
		return false
	}
	b.played++
	return true
}

// fanOut runs work once per share. A single share runs inline on the caller's
// generator; otherwise each share gets its own goroutine and a generator
// seeded from rng before any work starts.
func fanOut[T any](ctx context.Context, c *Calculator, shares int, rng Rand, work func(i int, rng Rand, b *batcher) (T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var deadline time.Time
	if c.budget > 0 {
		deadline = c.clock.Now().Add(c.budget)
	}
	stopper := func(ctx context.Context) func() bool {
		return func() bool {
			if ctx.Err() != nil {
				return true
			}
			return c.budget > 0 && !c.clock.Now().Before(deadline)
		}
	}

	out := make([]T, shares)
	if shares == 1 {
		res, err := work(0, rng, &batcher{size: c.batch, stop: stopper(ctx)})
		out[0] = res
		if err != nil {
			return out, err
		}
		return out, ctx.Err()
	}

	seeds := make([]int64, shares)
	for i := range seeds {
		seeds[i] = int64(rng.IntN(math.MaxInt))
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < shares; i++ {
		g.Go(func() error {
			res, err := work(i, randutil.New(seeds[i]), &batcher{size: c.batch, stop: stopper(gctx)})
			out[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, ctx.Err()
}

// splitTrials divides trials across at most workers shares, spreading the
// remainder over the first shares.
func splitTrials(trials, workers int) []int {
	n := min(workers, trials)
	shares := make([]int, n)
	for i := range shares {
		shares[i] = trials / n
		if i < trials%n {
			shares[i]++
		}
	}
	return shares
}

// validate checks the board size and that no card is dealt twice, returning
// the dead cards.
func validate(board []poker.Card, hands ...poker.Hand) (poker.CardSet, error) {
	if len(board) > 5 {
		return 0, fmt.Errorf("%w: board has %d cards", poker.ErrInvalidArity, len(board))
	}
	groups := make([][]poker.Card, 0, len(hands)+1)
	for _, h := range hands {
		groups = append(groups, h[:])
	}
	groups = append(groups, board)
	dead, err := poker.DeadCards(groups...)
	if err != nil {
		return 0, fmt.Errorf("hands and board: %w", err)
	}
	return dead, nil
}
