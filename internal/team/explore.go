package team

import (
	"iter"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"github.com/mkreps/underlords/internal/hero"
)

// SkipHandler is notified when an exploration branch is dropped because its
// rule returned an error. Dropped branches are expected; exploration simply
// moves on to the next candidate.
type SkipHandler func(*hero.Alliance, error)

// ExploreOption configures an exploration run.
type ExploreOption func(*exploreConfig)

type exploreConfig struct {
	skip       SkipHandler
	maxWorkers int
}

// WithSkipHandler installs a callback for dropped branches. Without one they
// are dropped silently.
func WithSkipHandler(fn SkipHandler) ExploreOption {
	return func(c *exploreConfig) { c.skip = fn }
}

// WithMaxWorkers caps the goroutines ExpandParallel fans branches across.
// Zero or below means one per branch.
func WithMaxWorkers(n int) ExploreOption {
	return func(c *exploreConfig) { c.maxWorkers = n }
}

func newExploreConfig(opts []ExploreOption) *exploreConfig {
	cfg := &exploreConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Increase yields one variant per candidate alliance the rule can improve.
// The rule runs on an independent copy; the result is kept when the rule
// returns no error and the copy ends up different from the receiver. When no
// variant survives the receiver itself is yielded, so the sequence is never
// empty. The sequence is lazy and single-use.
func (t *Team) Increase(candidates []*hero.Alliance, rule Rule, opts ...ExploreOption) iter.Seq[*Team] {
	cfg := newExploreConfig(opts)
	return func(yield func(*Team) bool) {
		if n, more := t.increase(candidates, rule, cfg, yield); n == 0 && more {
			yield(t)
		}
	}
}

// RecursiveIncrease expands variants depth-first until no candidate improves
// them, yielding only those leaves. When the receiver itself cannot be
// improved it is yielded alone. The sequence is lazy and single-use.
func (t *Team) RecursiveIncrease(candidates []*hero.Alliance, rule Rule, opts ...ExploreOption) iter.Seq[*Team] {
	cfg := newExploreConfig(opts)
	return func(yield func(*Team) bool) {
		t.recursiveIncrease(candidates, rule, cfg, yield)
	}
}

// increase applies the rule to a copy of t per candidate and yields the
// survivors. It reports how many were yielded and whether the consumer wants
// more.
func (t *Team) increase(candidates []*hero.Alliance, rule Rule, cfg *exploreConfig, yield func(*Team) bool) (int, bool) {
	yielded := 0
	for _, a := range candidates {
		variant, err := rule(t.Copy(), a)
		if err != nil {
			if cfg.skip != nil {
				cfg.skip(a, err)
			}
			continue
		}
		if variant == nil || variant.Equal(t) {
			continue
		}
		yielded++
		if !yield(variant) {
			return yielded, false
		}
	}
	return yielded, true
}

// recursiveIncrease yields the leaves of the variant tree rooted at t, or t
// itself when no variant survives the first expansion. Every level repeats
// that sentinel rule, which is what guarantees each surviving branch
// contributes at least its deepest team. Termination is structural: a rule
// either raises some claimed level or leaves the team equal, and levels are
// bounded by each alliance's highest tier.
func (t *Team) recursiveIncrease(candidates []*hero.Alliance, rule Rule, cfg *exploreConfig, yield func(*Team) bool) (int, bool) {
	total := 0
	survivors := 0
	_, more := t.increase(candidates, rule, cfg, func(variant *Team) bool {
		survivors++
		n, ok := variant.recursiveIncrease(candidates, rule, cfg, yield)
		total += n
		return ok
	})
	if !more {
		return total, false
	}
	if survivors == 0 {
		if !yield(t) {
			return total, false
		}
		total++
	}
	return total, true
}

// ExpandParallel is RecursiveIncrease with the first expansion fanned out
// across a worker pool: each surviving first-level variant walks its subtree
// sequentially on its own goroutine. Branches share no mutable state, so the
// only synchronization is around result collection and the skip handler.
// Leaves are returned grouped by candidate in candidate order; when nothing
// survives the receiver is returned alone.
func (t *Team) ExpandParallel(candidates []*hero.Alliance, rule Rule, opts ...ExploreOption) []*Team {
	cfg := newExploreConfig(opts)
	if cfg.skip != nil {
		var mu sync.Mutex
		inner := cfg.skip
		cfg.skip = func(a *hero.Alliance, err error) {
			mu.Lock()
			defer mu.Unlock()
			inner(a, err)
		}
	}

	p := pool.New()
	if cfg.maxWorkers > 0 {
		p = p.WithMaxGoroutines(cfg.maxWorkers)
	}
	branches := make([][]*Team, len(candidates))
	for i, a := range candidates {
		p.Go(func() {
			variant, err := rule(t.Copy(), a)
			if err != nil {
				if cfg.skip != nil {
					cfg.skip(a, err)
				}
				return
			}
			if variant == nil || variant.Equal(t) {
				return
			}
			var leaves []*Team
			variant.recursiveIncrease(candidates, rule, cfg, func(leaf *Team) bool {
				leaves = append(leaves, leaf)
				return true
			})
			branches[i] = leaves
		})
	}
	p.Wait()

	var out []*Team
	for _, leaves := range branches {
		out = append(out, leaves...)
	}
	if len(out) == 0 {
		out = append(out, t)
	}
	return out
}
