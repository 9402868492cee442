// SPDX-License-Identifier: MIT
// categories.go — the alignment-category registry of spec.md §3/§4.4: a
// triple (sourceLen, targetLen, probability) plus a derived penalty that
// re-normalizes against the largest registered probability.
package score

// Category is one registered alignment-category triple. Penalty is
// derived, not stored by the caller: it is recomputed by
// CategoryRegistry.Add whenever maxProbability changes.
type Category struct {
	SourceLen   int
	TargetLen   int
	Probability float64
	Penalty     float64
}

// categoryKey identifies a category by its bead shape.
type categoryKey struct {
	sourceLen, targetLen int
}

// CategoryRegistry holds the registered alignment categories, keyed by
// bead shape, along with the running maxProbability used to derive every
// entry's penalty.
type CategoryRegistry struct {
	entries        map[categoryKey]*Category
	order          []categoryKey
	maxProbability float64
}

// NewCategoryRegistry constructs an empty registry.
func NewCategoryRegistry() *CategoryRegistry {
	return &CategoryRegistry{entries: make(map[categoryKey]*Category)}
}

// DefaultCategories returns the six defaults of spec.md §3:
// (1,1,0.89), (0,1,0.0099), (1,0,0.0099), (1,2,0.089), (2,1,0.089), (2,2,0.011).
func DefaultCategories() *CategoryRegistry {
	r := NewCategoryRegistry()
	r.Add(1, 1, 0.89)
	r.Add(0, 1, 0.0099)
	r.Add(1, 0, 0.0099)
	r.Add(1, 2, 0.089)
	r.Add(2, 1, 0.089)
	r.Add(2, 2, 0.011)
	return r
}

// Add registers (or replaces) a category and re-derives every entry's
// penalty against the new maxProbability, if probability raised it.
//
// Errors:
//   - ErrNonPositiveProbability is reported by Validate, not here; Add
//     itself never fails, so configuration can be built incrementally and
//     validated once.
func (r *CategoryRegistry) Add(sourceLen, targetLen int, probability float64) {
	key := categoryKey{sourceLen, targetLen}
	if _, exists := r.entries[key]; !exists {
		r.order = append(r.order, key)
	}
	r.entries[key] = &Category{SourceLen: sourceLen, TargetLen: targetLen, Probability: probability}
	if probability > r.maxProbability {
		r.maxProbability = probability
	}
	r.rederivePenalties()
}

func (r *CategoryRegistry) rederivePenalties() {
	for _, key := range r.order {
		c := r.entries[key]
		c.Penalty = -logSafe(c.Probability/r.maxProbability)
	}
}

// Lookup returns the registered category for (sourceLen, targetLen), if any.
func (r *CategoryRegistry) Lookup(sourceLen, targetLen int) (Category, bool) {
	c, ok := r.entries[categoryKey{sourceLen, targetLen}]
	if !ok {
		return Category{}, false
	}
	return *c, true
}

// Entries returns every registered category in registration order.
func (r *CategoryRegistry) Entries() []Category {
	out := make([]Category, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, *r.entries[key])
	}
	return out
}

// Validate reports ErrNonPositiveProbability if any registered category
// has a non-positive probability, and ErrNoCategories if none are
// registered.
func (r *CategoryRegistry) Validate() error {
	if len(r.order) == 0 {
		return ErrNoCategories
	}
	for _, key := range r.order {
		if r.entries[key].Probability <= 0 {
			return ErrNonPositiveProbability
		}
	}
	return nil
}
