package ulz

import "sync"

// matchFinderPool reuses match-finder tables across compress calls; the
// tables are a few megabytes and clearing buckets is far cheaper than
// reallocating them.
var matchFinderPool = sync.Pool{
	New: func() any {
		return &matchFinder{}
	},
}

// acquireMatchFinder returns a match finder with all buckets empty.
func acquireMatchFinder() *matchFinder {
	m := matchFinderPool.Get().(*matchFinder)
	m.reset()
	return m
}

// releaseMatchFinder returns a match finder to the pool.
func releaseMatchFinder(m *matchFinder) {
	if m == nil {
		return
	}

	matchFinderPool.Put(m)
}
