package enricher

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/punchlabs/punchup/domain/service"
)

// Kind is a selection name accepted on the command line and mapped to an
// enricher constructor. Kinds are short; the enrichment envelope keys the
// built enrichers write under are the Name* constants.
type Kind string

const (
	KindSentiment   Kind = "sentiment"
	KindKeywords    Kind = "keywords"
	KindReadability Kind = "readability"
	KindLength      Kind = "length"
)

// ErrUnknownKind indicates a selection kind with no registered constructor.
var ErrUnknownKind = errors.New("unknown enricher")

// Constructor builds an enricher from a settings snapshot.
type Constructor func(Settings) service.Enricher

// Registry maps selection kinds to enricher constructors.
type Registry struct {
	constructors map[Kind]Constructor
	mu           sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[Kind]Constructor),
	}
}

// DefaultRegistry returns a registry with the four built-in enrichers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(KindSentiment, func(s Settings) service.Enricher { return NewSentiment(s) })
	r.Register(KindKeywords, func(s Settings) service.Enricher { return NewKeywords(s) })
	r.Register(KindReadability, func(s Settings) service.Enricher { return NewReadability(s) })
	r.Register(KindLength, func(s Settings) service.Enricher { return NewLength(s) })
	return r
}

// Register adds a constructor for a kind.
// Subsequent registrations for the same kind overwrite the previous one.
func (r *Registry) Register(kind Kind, constructor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[kind] = constructor
}

// Build constructs the enricher registered under kind.
// Returns ErrUnknownKind, naming the known kinds, when nothing is registered.
func (r *Registry) Build(kind Kind, settings Settings) (service.Enricher, error) {
	r.mu.RLock()
	constructor, ok := r.constructors[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownKind, kind, joinKinds(r.Kinds()))
	}
	return constructor(settings), nil
}

// BuildAll constructs one enricher per kind, in the given order.
// Duplicate kinds are built once; the first unknown kind aborts the build.
func (r *Registry) BuildAll(kinds []Kind, settings Settings) ([]service.Enricher, error) {
	seen := make(map[Kind]struct{}, len(kinds))
	enrichers := make([]service.Enricher, 0, len(kinds))
	for _, kind := range kinds {
		if _, dup := seen[kind]; dup {
			continue
		}
		seen[kind] = struct{}{}

		e, err := r.Build(kind, settings)
		if err != nil {
			return nil, err
		}
		enrichers = append(enrichers, e)
	}
	return enrichers, nil
}

// Kinds returns all registered kinds, sorted.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.constructors))
	for kind := range r.constructors {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func joinKinds(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
