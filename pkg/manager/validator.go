package manager

import (
	"context"

	"github.com/ksym/mikanz/pkg/cache"
	"github.com/ksym/mikanz/pkg/episode"
	"github.com/ksym/mikanz/pkg/logger"
	"github.com/ksym/mikanz/pkg/machine"
	"github.com/ksym/mikanz/pkg/media"
	"go.uber.org/zap"
)

// ValidationState is one step of the feed entry decision pipeline.
type ValidationState string

const (
	StateReceived        ValidationState = "received"
	StateNumberExtracted ValidationState = "number_extracted"
	StateUnresolved      ValidationState = "unresolved"
	StateFilterChecked   ValidationState = "filter_checked"
	StateCacheChecked    ValidationState = "cache_checked"
	StateResolved        ValidationState = "resolved"
	StateAccepted        ValidationState = "accepted"
	StateRejected        ValidationState = "rejected"
)

func newValidationMachine() *machine.StateMachine[ValidationState] {
	return machine.New(StateReceived,
		machine.From(StateReceived).To(StateNumberExtracted, StateUnresolved),
		machine.From(StateUnresolved).To(StateRejected),
		machine.From(StateNumberExtracted).To(StateFilterChecked, StateRejected),
		machine.From(StateFilterChecked).To(StateCacheChecked, StateRejected),
		machine.From(StateCacheChecked).To(StateResolved),
		machine.From(StateResolved).To(StateAccepted, StateRejected),
	)
}

// Result is the terminal outcome for one feed entry.
type Result struct {
	State  ValidationState
	Reason string
	Number episode.Number
}

func (r Result) Accepted() bool {
	return r.State == StateAccepted
}

// Validator runs each feed entry through extraction, filtering, dedup and
// store resolution, in that order. The dedup cache is marked before the
// store call so two near-simultaneous evaluations of the same entry decide
// on a cheap in-memory check rather than two outstanding store queries.
type Validator struct {
	seen     *cache.SeenCache
	resolver *Resolver
}

func NewValidator(seen *cache.SeenCache, resolver *Resolver) *Validator {
	return &Validator{seen: seen, resolver: resolver}
}

// Validate decides one feed entry. A store failure is returned as an error
// with no terminal decision; the caller owns retry policy. A rejection is a
// successful decision carrying the reason.
func (v *Validator) Validate(ctx context.Context, entry media.FeedEntry) (Result, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("series", entry.Meta.Name),
		zap.String("title", entry.Title))
	m := newValidationMachine()

	number, err := episode.ExtractOne(entry.Title)
	if err != nil {
		m.Transition(StateUnresolved)
		m.Transition(StateRejected)
		log.Debug("rejected feed entry", zap.Error(err))
		return Result{State: m.Current(), Reason: err.Error()}, nil
	}
	m.Transition(StateNumberExtracted)

	if !NewFilter(entry.Meta.Include, entry.Meta.Exclude).Accept(entry.Title) {
		m.Transition(StateRejected)
		log.Debug("rejected feed entry", zap.String("reason", "filtered"))
		return Result{State: m.Current(), Reason: "filtered", Number: number}, nil
	}
	m.Transition(StateFilterChecked)

	if !v.seen.CheckAndMark(entry.Meta.ID, string(number)) {
		m.Transition(StateRejected)
		log.Debug("rejected feed entry", zap.String("reason", "already evaluated"))
		return Result{State: m.Current(), Reason: "already evaluated", Number: number}, nil
	}
	m.Transition(StateCacheChecked)

	exists, err := v.resolver.Exists(ctx, entry.Meta.Name, entry.Meta.Season, number)
	if err != nil {
		return Result{State: m.Current(), Number: number}, err
	}
	m.Transition(StateResolved)

	if exists {
		m.Transition(StateRejected)
		log.Debug("rejected feed entry", zap.String("reason", "episode already stored"))
		return Result{State: m.Current(), Reason: "episode already stored", Number: number}, nil
	}

	m.Transition(StateAccepted)
	log.Info("accepted feed entry", zap.String("number", string(number)))
	return Result{State: m.Current(), Number: number}, nil
}
