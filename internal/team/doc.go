// Package team implements the synergy-accounting and constrained-mutation
// engine for building a hero roster under a hard size limit.
//
// # Model
//
// A [Team] owns an [Alliances] container, which partitions the heroes a
// composition has committed to into two sets: team (confirmed, the hero
// definitely counts for the alliances it belongs to) and mixed (reserved,
// the hero counts toward roster size but its alliance attribution is still
// open). For every engaged alliance the container keeps an [AllianceState]
// with the claimed synergy level; the per-claim quantities are derived on
// demand from the two sets.
//
// A claim may exceed what the current pool can back; the difference is the
// alliance's outstanding demand, and it is charged to the roster cost
// ([Alliances.Size]) because those heroes must eventually be recruited.
//
// # Mutations
//
// The public mutations [Team.Add], [Team.AddMax] and [Team.AddHero] are
// transactions: the container is snapshotted before any multi-step change,
// and every validation failure restores the snapshot before the error is
// returned. Callers never observe a partially applied mutation. Failures
// are reported as errors.CapacityError (the claim does not fit the roster
// limit) or errors.CompositionError (the claim cannot be backed by the
// heroes that exist); both leave the team usable.
//
// After a successful change a three-step convergence pass reclassifies
// heroes: outstanding demand that exactly matches the remaining candidates
// pulls them into mixed, ambiguous heroes that are needed in full are
// confirmed into team, and alliance levels are re-derived from the confirmed
// set, only ever increasing.
//
// # Exploration
//
// [Team.Increase] applies an upgrade [Rule] to every candidate alliance on
// an independent copy and yields the variants that survive (no error, not
// value-equal to the origin). [Team.RecursiveIncrease] expands variants
// depth-first until no candidate changes anything, yielding the leaves.
// Both return lazy iterators and yield the origin itself as a sentinel when
// nothing survives, so callers always receive at least one team.
// [Team.ExpandParallel] fans the first expansion level across a worker pool;
// branches share no mutable state, so no locking is involved beyond result
// collection.
//
// [Global] binds a Team to a fixed alliance universe so exploration can
// default its candidate list and upgrade rule.
package team
