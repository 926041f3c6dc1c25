package dispatch

import (
	"go.uber.org/zap"
)

// AmbiguityPolicy decides what happens when more than one signature
// matches the same argument list. That is only possible when distinct
// signatures contain unconstrained slots that accept the same kinds.
type AmbiguityPolicy int

const (
	// FirstMatchWins selects the earliest-registered matching overload.
	// This is the default policy.
	FirstMatchWins AmbiguityPolicy = iota
	// AmbiguityError fails the call with an AmbiguousOverload error
	// listing every matching signature.
	AmbiguityError
)

func (p AmbiguityPolicy) String() string {
	if p == AmbiguityError {
		return "error"
	}
	return "first_match"
}

// Dispatcher resolves calls against a Registry. It keeps no per-call
// state: given the same registry contents and the same arguments, Dispatch
// always produces the same outcome.
type Dispatcher struct {
	registry *Registry
	policy   AmbiguityPolicy
	logger   *zap.Logger
	cache    *resolutionCache
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPolicy sets the ambiguity policy.
func WithPolicy(p AmbiguityPolicy) Option {
	return func(d *Dispatcher) { d.policy = p }
}

// WithLogger attaches a logger that traces registrations looked up and
// resolution decisions at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithCache enables memoization of successful resolutions keyed by
// (scope, name, argument kinds). The registry is append-only during
// construction and read-only during dispatch, so cached resolutions never
// go stale under the intended discipline.
func WithCache() Option {
	return func(d *Dispatcher) { d.cache = newResolutionCache() }
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		policy:   FirstMatchWins,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Registry returns the registry this dispatcher resolves against.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch resolves (scope, name) against the runtime kinds of args and
// invokes the selected overload with the given receiver. Free and static
// overloads ignore recv; instance and class overloads expect the caller to
// supply it.
//
// Failures are synchronous and deterministic: NotOverloaded when the name
// has no entry, NoMatchingOverload when no signature accepts the argument
// kinds, and AmbiguousOverload when several do under the AmbiguityError
// policy. Under FirstMatchWins several matches resolve to the
// earliest-registered one.
func (d *Dispatcher) Dispatch(scope Scope, name string, recv any, args ...any) (any, error) {
	candidates := d.registry.Lookup(scope, name)
	if len(candidates) == 0 {
		d.logger.Debug("dispatch: no overloads registered",
			zap.String("scope", scope.String()),
			zap.String("name", name))
		return nil, NewNotOverloaded(scope, name)
	}

	kinds := KindsOf(args)

	if d.cache != nil {
		if c, ok := d.cache.get(scope, name, kinds); ok {
			d.logger.Debug("dispatch: cache hit",
				zap.String("scope", scope.String()),
				zap.String("name", name),
				zap.Stringer("signature", c.Signature))
			return c.Impl(recv, args)
		}
	}

	selected, err := d.resolve(scope, name, kinds, candidates)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("dispatch: resolved",
		zap.String("scope", scope.String()),
		zap.String("name", name),
		zap.Stringer("arguments", Signature(kinds)),
		zap.Stringer("signature", selected.Signature),
		zap.Stringer("bind", selected.Bind),
		zap.Int("ordinal", selected.Ordinal))

	if d.cache != nil {
		d.cache.put(scope, name, kinds, selected)
	}

	return selected.Impl(recv, args)
}

// Resolve performs overload selection without invoking the result. It is
// the introspection half of Dispatch and obeys the same policy.
func (d *Dispatcher) Resolve(scope Scope, name string, kinds []Kind) (Candidate, error) {
	candidates := d.registry.Lookup(scope, name)
	if len(candidates) == 0 {
		return Candidate{}, NewNotOverloaded(scope, name)
	}
	selected, err := d.resolve(scope, name, kinds, candidates)
	if err != nil {
		return Candidate{}, err
	}
	return *selected, nil
}

func (d *Dispatcher) resolve(scope Scope, name string, kinds []Kind, candidates []Candidate) (*Candidate, error) {
	var matched []*Candidate
	for i := range candidates {
		if candidates[i].Signature.Matches(kinds) {
			matched = append(matched, &candidates[i])
			if d.policy == FirstMatchWins {
				// Registration order is the tie-break, so the first match
				// is already the answer.
				break
			}
		}
	}

	switch len(matched) {
	case 0:
		return nil, NewNoMatchingOverload(scope, name, kinds, candidates)
	case 1:
		return matched[0], nil
	default:
		values := make([]Candidate, len(matched))
		for i, m := range matched {
			values[i] = *m
		}
		return nil, NewAmbiguousOverload(scope, name, kinds, values)
	}
}
