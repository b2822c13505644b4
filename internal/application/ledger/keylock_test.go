package ledger_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bafnalights-dot/stock/internal/application/ledger"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	kl := ledger.NewKeyLock()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := kl.Acquire("part:driver")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

// Overlapping key sets acquired in different orders must not deadlock:
// the lock sorts keys before acquisition.
func TestKeyLock_OverlappingSetsDoNotDeadlock(t *testing.T) {
	kl := ledger.NewKeyLock()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release := kl.Acquire("a", "b", "c")
			release()
		}()
		go func() {
			defer wg.Done()
			release := kl.Acquire("c", "a")
			release()
		}()
	}
	wg.Wait()
}

func TestKeyLock_DuplicateKeys(t *testing.T) {
	kl := ledger.NewKeyLock()

	release := kl.Acquire("x", "x", "x")
	release()

	// Re-acquirable after release.
	release = kl.Acquire("x")
	release()
}
