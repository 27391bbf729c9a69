package schedule

import (
	"fmt"
	"hash/fnv"
)

// Fingerprint computes a structural hash over an event snapshot plus an
// opaque ruleset descriptor (typically the enabled rule IDs and parameter
// values rendered by the caller). Callers that want to memoize validation
// results can use it as the cache key; the engine itself never caches.
func Fingerprint(events []Event, ruleset string) uint64 {
	h := fnv.New64a()
	for _, e := range SortByStart(events) {
		fmt.Fprintf(h, "%s|%s|%d|%d|%t|%s\n",
			e.ID, e.Title, e.Start.UnixNano(), endNano(e), e.AllDay, e.Location)
	}
	h.Write([]byte(ruleset))
	return h.Sum64()
}

func endNano(e Event) int64 {
	end := e.EndTime()
	if end.IsZero() {
		return 0
	}
	return end.UnixNano()
}
