package dispatch

import (
	"sort"
	"sync"
)

// ScopeKind distinguishes module-level namespaces from type-owned ones.
type ScopeKind int

const (
	// ScopeModule groups free functions under a module name.
	ScopeModule ScopeKind = iota
	// ScopeType groups methods under an owning type name.
	ScopeType
)

func (k ScopeKind) String() string {
	if k == ScopeType {
		return "type"
	}
	return "module"
}

// Scope identifies the namespace a name's overloads are grouped under.
// It is a comparable value and is used directly as a map key.
type Scope struct {
	kind ScopeKind
	name string
}

// ModuleScope returns the scope of free functions in the named module.
func ModuleScope(name string) Scope {
	return Scope{kind: ScopeModule, name: name}
}

// TypeScope returns the scope of callables owned by the named type.
func TypeScope(name string) Scope {
	return Scope{kind: ScopeType, name: name}
}

// Kind returns whether this is a module or a type scope.
func (s Scope) Kind() ScopeKind { return s.kind }

// Name returns the module or type name.
func (s Scope) Name() string { return s.name }

func (s Scope) String() string {
	return s.kind.String() + ":" + s.name
}

// Func is the opaque invocable form of one overload implementation. The
// receiver is supplied out-of-band by the caller; free and static
// implementations ignore it.
type Func func(recv any, args []any) (any, error)

// BindKind records how an implementation binds its receiver. It has no
// effect on matching; it exists for diagnostics and introspection.
type BindKind int

const (
	// BindFree marks a free function: no receiver.
	BindFree BindKind = iota
	// BindInstance marks an instance method: the receiver is an instance
	// of the owning type.
	BindInstance
	// BindClass marks a type-bound method: the receiver is the owning type
	// itself.
	BindClass
	// BindStatic marks a static method: owned by a type but called without
	// a receiver.
	BindStatic
)

var bindKindNames = map[BindKind]string{
	BindFree:     "free",
	BindInstance: "instance",
	BindClass:    "class",
	BindStatic:   "static",
}

func (b BindKind) String() string {
	if name, ok := bindKindNames[b]; ok {
		return name
	}
	return "unknown"
}

// Candidate is one registered (signature, implementation) pair. Candidates
// are immutable once registered.
type Candidate struct {
	// Signature is the declared parameter kinds, receiver excluded.
	Signature Signature
	// Impl is the invocable implementation.
	Impl Func
	// Bind records the receiver-binding behavior of the implementation.
	Bind BindKind
	// Ordinal is the zero-based registration position within the entry.
	// The dispatcher's tie-break prefers lower ordinals.
	Ordinal int
}

type entryKey struct {
	scope Scope
	name  string
}

// Registry owns the (scope, name) → ordered overload list mapping. Entries
// are append-only: registration happens while a module or type is being
// defined, dispatch afterwards. The registry is safe for concurrent use,
// though the intended discipline is construction-then-read.
type Registry struct {
	mu      sync.RWMutex
	entries map[entryKey][]Candidate
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[entryKey][]Candidate),
	}
}

// Register appends an overload for (scope, name), creating the entry if
// absent. It fails with a DuplicateSignature error if an identical
// signature is already registered for that entry; duplicates are never
// silently overwritten.
func (r *Registry) Register(scope Scope, name string, sig Signature, fn Func) error {
	return r.RegisterBound(scope, name, sig, fn, BindFree)
}

// RegisterBound is Register with an explicit receiver-binding kind.
func (r *Registry) RegisterBound(scope Scope, name string, sig Signature, fn Func, bind BindKind) error {
	if fn == nil {
		return NewInvalidImplementation(scope, name, "nil implementation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := entryKey{scope: scope, name: name}
	existing := r.entries[key]
	for _, c := range existing {
		if c.Signature.Equal(sig) {
			return NewDuplicateSignature(scope, name, sig)
		}
	}

	// Copy the signature so later mutation of the caller's slice cannot
	// reach into the entry.
	owned := make(Signature, len(sig))
	copy(owned, sig)

	r.entries[key] = append(existing, Candidate{
		Signature: owned,
		Impl:      fn,
		Bind:      bind,
		Ordinal:   len(existing),
	})
	return nil
}

// Lookup returns the overloads registered for (scope, name) in
// registration order, or an empty slice if the entry does not exist. The
// registry makes no distinction between "unknown name" and "not
// overloaded"; that policy belongs to the caller.
func (r *Registry) Lookup(scope Scope, name string) []Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := r.entries[entryKey{scope: scope, name: name}]
	if len(candidates) == 0 {
		return nil
	}
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	return out
}

// Names returns the sorted callable names registered in a scope.
func (r *Registry) Names(scope Scope) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for key := range r.entries {
		if key.scope == scope {
			names = append(names, key.name)
		}
	}
	sort.Strings(names)
	return names
}

// Scopes returns every scope with at least one registered name, sorted by
// string form for consistent output.
func (r *Registry) Scopes() []Scope {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[Scope]bool)
	var scopes []Scope
	for key := range r.entries {
		if !seen[key.scope] {
			seen[key.scope] = true
			scopes = append(scopes, key.scope)
		}
	}
	sort.Slice(scopes, func(i, j int) bool {
		return scopes[i].String() < scopes[j].String()
	})
	return scopes
}
