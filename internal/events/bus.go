// Package events fans out check notifications from webhooks to monitors waiting on them.
package events

import (
	"fmt"
	"strings"
	"sync"

	"github.com/onlook-dev/fixpack-pipeline/internal/github"
)

// Key identifies something a monitor can wait on: a pull request or a commit.
type Key string

func PRKey(owner, repo string, number int) Key {
	return Key(fmt.Sprintf("%s/%s#%d", strings.ToLower(owner), strings.ToLower(repo), number))
}

func SHAKey(owner, repo, sha string) Key {
	return Key(fmt.Sprintf("%s/%s@%s", strings.ToLower(owner), strings.ToLower(repo), sha))
}

type subscription struct {
	keys []Key
	ch   chan struct{}
}

// Bus delivers at most one pending wake-up per subscriber. Publishing never blocks.
type Bus struct {
	mu   sync.Mutex
	subs map[Key]map[*subscription]struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Key]map[*subscription]struct{})}
}

// Subscribe returns a channel signalled when any of keys is published, and a func
// that must be called to release the subscription.
func (b *Bus) Subscribe(keys ...Key) (<-chan struct{}, func()) {
	sub := &subscription{keys: keys, ch: make(chan struct{}, 1)}

	b.mu.Lock()
	for _, k := range keys {
		set, ok := b.subs[k]
		if !ok {
			set = make(map[*subscription]struct{})
			b.subs[k] = set
		}
		set[sub] = struct{}{}
	}
	b.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() { b.unsubscribe(sub) })
	}
}

func (b *Bus) unsubscribe(sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, k := range sub.keys {
		set := b.subs[k]
		delete(set, sub)
		if len(set) == 0 {
			delete(b.subs, k)
		}
	}
}

// Publish wakes every subscriber of key and returns how many were woken.
func (b *Bus) Publish(key Key) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for sub := range b.subs[key] {
		select {
		case sub.ch <- struct{}{}:
		default:
		}
		n++
	}
	return n
}

// PublishCheck wakes monitors of the commit and of every pull request in n.
func (b *Bus) PublishCheck(n *github.CheckNotification) int {
	if n == nil {
		return 0
	}
	woken := 0
	if n.HeadSHA != "" {
		woken += b.Publish(SHAKey(n.Owner, n.Repo, n.HeadSHA))
	}
	for _, pr := range n.PRNumbers {
		woken += b.Publish(PRKey(n.Owner, n.Repo, pr))
	}
	return woken
}
