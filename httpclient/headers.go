package httpclient

import (
	"maps"
	"net/http"
	"slices"
)

// MergeHeaders layers header maps left to right. A later map replaces an
// earlier value even when the key differs in case; the later spelling wins.
// Within one map, keys that differ only in case are applied in sorted order,
// so the lowercase spelling wins over the uppercase one.
// The inputs are never modified.
func MergeHeaders(base map[string]string, overrides ...map[string]string) map[string]string {
	out := make(map[string]string, len(base))
	keys := make(map[string]string, len(base))

	apply := func(m map[string]string) {
		for _, k := range slices.Sorted(maps.Keys(m)) {
			canon := http.CanonicalHeaderKey(k)
			if prev, ok := keys[canon]; ok {
				delete(out, prev)
			}
			keys[canon] = k
			out[k] = m[k]
		}
	}

	apply(base)
	for _, m := range overrides {
		apply(m)
	}
	return out
}
