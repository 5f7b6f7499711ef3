package engine

import "strings"

// Tunable thresholds and limits. These values are deliberate: matching
// is forgiving (0.6) while substitution fuzzy lookup is strict (0.8)
// so a missing ingredient never gets replacements for something else.
const (
	DefaultMatchThreshold        = 0.6
	DefaultSubstitutionThreshold = 0.8
	DefaultMinMatchScore         = 0.3
	DefaultMaxResults            = 10
)

// Options tunes the matcher thresholds. Zero values fall back to the
// package defaults.
type Options struct {
	MatchThreshold        float64
	SubstitutionThreshold float64
}

// Engine matches user ingredient phrases against recipe ingredient
// lists and resolves substitutions for ingredients the user lacks.
// All state is read-only after construction, so a single Engine is
// safe for concurrent use.
type Engine struct {
	subs    []Substitution
	aliases []Alias
	opts    Options
}

// New creates an Engine over the given substitution and alias tables.
// Table keys and alias names are normalized once up front so lookups
// compare canonical forms.
func New(subs []Substitution, aliases []Alias, opts Options) *Engine {
	if opts.MatchThreshold == 0 {
		opts.MatchThreshold = DefaultMatchThreshold
	}
	if opts.SubstitutionThreshold == 0 {
		opts.SubstitutionThreshold = DefaultSubstitutionThreshold
	}

	normSubs := make([]Substitution, 0, len(subs))
	for _, s := range subs {
		key := Normalize(s.Ingredient)
		if key == "" {
			continue
		}
		normSubs = append(normSubs, Substitution{Ingredient: key, Substitutes: s.Substitutes})
	}

	normAliases := make([]Alias, 0, len(aliases))
	for _, a := range aliases {
		name := Normalize(a.Name)
		if name == "" {
			continue
		}
		normAliases = append(normAliases, Alias{Name: name, Base: Normalize(a.Base)})
	}

	return &Engine{subs: normSubs, aliases: normAliases, opts: opts}
}

// NewDefault creates an Engine with the built-in tables and default
// thresholds.
func NewDefault() *Engine {
	return New(DefaultSubstitutions, DefaultAliases, Options{})
}

// FindMatch reports which of candidates the user ingredient matches,
// if any. Substring containment in either direction wins immediately,
// first candidate first; otherwise the highest-similarity candidate
// wins if it scores strictly above the match threshold. Ties keep the
// earlier candidate.
func (e *Engine) FindMatch(userIngredient string, candidates []string) (string, bool) {
	user := Normalize(userIngredient)
	if user == "" {
		return "", false
	}

	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = Normalize(c)
	}

	for i, cand := range normalized {
		if cand == "" {
			continue
		}
		if strings.Contains(cand, user) || strings.Contains(user, cand) {
			return candidates[i], true
		}
	}

	bestIdx := -1
	bestScore := 0.0
	for i, cand := range normalized {
		if cand == "" {
			continue
		}
		if score := Similarity(user, cand); score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx >= 0 && bestScore > e.opts.MatchThreshold {
		return candidates[bestIdx], true
	}
	return "", false
}

// Substitutions returns suggested replacements for an ingredient the
// user lacks. Resolution order: exact table key, alias (exact name or
// the ingredient containing an alias), then fuzzy lookup over table
// keys. An alias hit returns the base's entry even when the base has
// none. An empty result is a normal outcome, not an error.
func (e *Engine) Substitutions(ingredient string) []string {
	name := Normalize(ingredient)
	if name == "" {
		return nil
	}

	if subs, ok := e.lookup(name); ok {
		return subs
	}

	for _, a := range e.aliases {
		if name == a.Name || strings.Contains(name, a.Name) {
			subs, _ := e.lookup(a.Base)
			return subs
		}
	}

	for _, s := range e.subs {
		if Similarity(name, s.Ingredient) > e.opts.SubstitutionThreshold {
			return s.Substitutes
		}
	}

	return nil
}

func (e *Engine) lookup(key string) ([]string, bool) {
	for _, s := range e.subs {
		if s.Ingredient == key {
			return s.Substitutes, true
		}
	}
	return nil, false
}
