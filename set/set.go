package set

import "sort"

func Keys[Key ~string, Value any](source map[Key]Value) []Key {
	result := make([]Key, 0, len(source))
	for key := range source {
		result = append(result, key)
	}
	sort.Slice(result, func(left, right int) bool {
		return result[left] < result[right]
	})
	return result
}

func Member[Entry comparable](needle Entry, haystack []Entry) bool {
	for _, candidate := range haystack {
		if candidate == needle {
			return true
		}
	}
	return false
}

func Sort[Entry ~string](entries []Entry) []Entry {
	sort.Slice(entries, func(left, right int) bool {
		return entries[left] < entries[right]
	})
	return entries
}
