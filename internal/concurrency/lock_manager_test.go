package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("a"), lm.GetLock("a"))
	assert.NotSame(t, lm.GetLock("a"), lm.GetLock("b"))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "progress:p-1:m-1", Key("progress", "p-1", "m-1"))
}

func TestLockAll_DuplicateKeysDoNotDeadlock(t *testing.T) {
	lm := NewLockManager()
	unlock := lm.LockAll("x", "x", "y")
	unlock()

	// Locks are released
	unlock = lm.LockAll("y", "x")
	unlock()
}

func TestLockAll_SerializesOverlappingSets(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Opposite argument orders must not deadlock
			var unlock func()
			if i%2 == 0 {
				unlock = lm.LockAll("participant:1", "reward:1")
			} else {
				unlock = lm.LockAll("reward:1", "participant:1")
			}
			counter++
			unlock()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
