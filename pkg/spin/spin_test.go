package spin_test

import (
	"github.com/brickingsoft/wraps/pkg/spin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
	"testing"
)

func TestLocker(t *testing.T) {
	locker := spin.New()
	n := 0
	g := new(errgroup.Group)
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				locker.Lock()
				n++
				locker.Unlock()
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
	assert.Equal(t, 6400, n)
}

func TestLocker_TryLock(t *testing.T) {
	var locker spin.Locker
	assert.True(t, locker.TryLock())
	assert.False(t, locker.TryLock())
	locker.Unlock()
	assert.True(t, locker.TryLock())
}
