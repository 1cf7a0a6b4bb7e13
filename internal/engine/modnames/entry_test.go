package modnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jmod/internal/core/ports"
)

func TestEntry_WatchAfterInvalidateReleasesImmediately(t *testing.T) {
	t.Parallel()

	e := newEntry(0)
	var released int
	e.watch(ports.SubscriptionFunc(func() { released++ }))

	e.invalidate()
	assert.Equal(t, 1, released)
	assert.False(t, e.valid.Load())

	e.watch(ports.SubscriptionFunc(func() { released++ }))
	assert.Equal(t, 2, released)

	e.invalidate()
	assert.Equal(t, 2, released)
}

func TestEntry_NilSubscriptionIsIgnored(t *testing.T) {
	t.Parallel()

	e := newEntry(3)
	e.watch(nil)
	e.invalidate()

	assert.Equal(t, uint64(3), e.gen)
}
