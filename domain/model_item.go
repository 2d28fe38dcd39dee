package domain

import "github.com/samber/lo"

// ModelItem is one row of a list model, keyed by role name.
type ModelItem map[string]any

// ArrayToModelItems turns values into rows holding each value under key:
// [1, 2, 3] gives [{key: 1}, {key: 2}, {key: 3}].
func ArrayToModelItems[T any](key string, values []T) []ModelItem {
	return lo.Map(values, func(v T, _ int) ModelItem {
		return ModelItem{key: v}
	})
}
