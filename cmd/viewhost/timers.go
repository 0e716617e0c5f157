package main

import (
	"sync"
	"time"
)

// timerSet implements the host side of the input machine's timer_cb/
// cancel_timer_cb contract: schedule(payload, delayMs) returns a token;
// a later cancel(token) suppresses the fire callback if it hasn't run
// yet. Each token fires its callback at most once.
type timerSet struct {
	mu        sync.Mutex
	nextToken uint32
	cancelled map[uint32]bool
}

func newTimerSet() *timerSet {
	return &timerSet{cancelled: make(map[uint32]bool)}
}

func (t *timerSet) schedule(payload any, delayMs int, fire func(any, uint32)) uint32 {
	t.mu.Lock()
	t.nextToken++
	token := t.nextToken
	t.mu.Unlock()

	time.AfterFunc(time.Duration(delayMs)*time.Millisecond, func() {
		t.mu.Lock()
		cancelled := t.cancelled[token]
		delete(t.cancelled, token)
		t.mu.Unlock()
		if !cancelled {
			fire(payload, token)
		}
	})
	return token
}

func (t *timerSet) cancel(token uint32) {
	t.mu.Lock()
	t.cancelled[token] = true
	t.mu.Unlock()
}
