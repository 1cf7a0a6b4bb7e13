package index

import "time"

// SetClockForTest replaces the indexer's clock.
func (ix *Indexer) SetClockForTest(now func() time.Time) {
	ix.now = now
}
