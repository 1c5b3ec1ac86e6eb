// Package changelog reconstructs a record as it was in an older generation
// from its canonical (latest) value and snapshots of changed fields.
//
// A change row stores the values a record had up to and including its
// generation. Resolving for a target generation applies rows with
// generation at or after the target, nearest one winning for each field
// it sets. Fields no applicable row sets keep their canonical values.
package changelog

import (
	"cmp"
	"slices"
)

// Partial is a snapshot of some fields of T. Overlay copies the fields
// present in the snapshot onto full and returns the result. Fields absent
// from the snapshot must be left untouched.
type Partial[T any] interface {
	Overlay(full T) T
}

// Change is a Partial tagged with the last generation it applied to.
type Change[P any] struct {
	Generation int
	Partial    P
}

// Static is a Partial that never changes anything. Records without
// change tables resolve through it.
type Static[T any] struct{}

// Overlay returns full unchanged.
func (Static[T]) Overlay(full T) T { return full }

// Resolve returns canonical as it was in the target generation.
// The canonicalGen is the generation canonical values belong to.
// Changes can come in any order. Rows at or after canonicalGen
// are ignored.
func Resolve[T any, P Partial[T]](
	canonical T,
	canonicalGen int,
	changes []Change[P],
	target int,
) (T, error) {
	if target < 1 {
		return canonical, UnknownGenerationError(target)
	}
	if target >= canonicalGen || len(changes) == 0 {
		return canonical, nil
	}

	sorted := slices.Clone(changes)
	slices.SortStableFunc(sorted, func(a, b Change[P]) int {
		return cmp.Compare(b.Generation, a.Generation)
	})

	// Walking from the most recent row to the oldest applicable one lets
	// the row nearest to target overwrite what more recent rows set.
	res := canonical
	for _, v := range sorted {
		if v.Generation >= canonicalGen {
			continue
		}
		if v.Generation < target {
			break
		}
		res = v.Partial.Overlay(res)
	}
	return res, nil
}

// Applicable returns generations of the rows that would be applied
// when resolving for target, most recent first.
func Applicable[P any](changes []Change[P], canonicalGen, target int) []int {
	var res []int
	for _, v := range changes {
		if v.Generation < canonicalGen && v.Generation >= target {
			res = append(res, v.Generation)
		}
	}
	slices.Sort(res)
	slices.Reverse(res)
	return res
}
