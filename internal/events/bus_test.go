package events

import (
	"testing"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
	"github.com/stretchr/testify/assert"
)

func signalled(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestKeysAreCaseInsensitiveOnRepo(t *testing.T) {
	assert.Equal(t, PRKey("acme", "web", 42), PRKey("ACME", "Web", 42))
	assert.Equal(t, Key("acme/web@abc"), SHAKey("Acme", "web", "abc"))
	assert.NotEqual(t, PRKey("acme", "web", 42), PRKey("acme", "web", 43))
}

func TestPublishWakesSubscriber(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(PRKey("acme", "web", 42))
	defer cancel()

	assert.Equal(t, 0, bus.Publish(PRKey("acme", "web", 7)))
	assert.False(t, signalled(ch))

	assert.Equal(t, 1, bus.Publish(PRKey("acme", "web", 42)))
	assert.True(t, signalled(ch))
}

func TestPublishNeverBlocks(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(PRKey("acme", "web", 42))
	defer cancel()

	for range 5 {
		bus.Publish(PRKey("acme", "web", 42))
	}

	assert.True(t, signalled(ch))
	assert.False(t, signalled(ch))
}

func TestCancelUnsubscribes(t *testing.T) {
	bus := NewBus()
	key := SHAKey("acme", "web", "abc")
	ch, cancel := bus.Subscribe(key)

	cancel()
	cancel()

	assert.Equal(t, 0, bus.Publish(key))
	assert.False(t, signalled(ch))
	assert.Empty(t, bus.subs)
}

func TestPublishCheck(t *testing.T) {
	bus := NewBus()
	byPR, cancelPR := bus.Subscribe(PRKey("acme", "web", 42))
	defer cancelPR()
	bySHA, cancelSHA := bus.Subscribe(SHAKey("acme", "web", "head-2"))
	defer cancelSHA()

	woken := bus.PublishCheck(&github.CheckNotification{
		Owner:     "acme",
		Repo:      "web",
		HeadSHA:   "head-2",
		PRNumbers: []int{42, 99},
	})

	assert.Equal(t, 2, woken)
	assert.True(t, signalled(byPR))
	assert.True(t, signalled(bySHA))
	assert.Equal(t, 0, bus.PublishCheck(nil))
}
