package anim

import (
	"sort"
	"time"
)

// Handle identifies one pending frame request.
type Handle uint64

type FrameFunc func(now time.Time)

// Scheduler hands out per-frame callbacks. A request fires at most once.
type Scheduler interface {
	RequestFrame(fn FrameFunc) Handle
	CancelFrame(h Handle)
}

// Ticker is a Scheduler whose frames fire only when Tick is called. Hosts call
// Tick from their own frame source (a bubbletea tick, a raylib loop); tests
// call it directly.
type Ticker struct {
	next     Handle
	pending  map[Handle]FrameFunc
	requests int
	cancels  int
}

func NewTicker() *Ticker {
	return &Ticker{pending: make(map[Handle]FrameFunc)}
}

func (t *Ticker) RequestFrame(fn FrameFunc) Handle {
	t.next++
	t.pending[t.next] = fn
	t.requests++
	return t.next
}

func (t *Ticker) CancelFrame(h Handle) {
	if _, ok := t.pending[h]; ok {
		delete(t.pending, h)
		t.cancels++
	}
}

// Tick fires every callback that was pending when it was called, in request
// order. Callbacks requested during the tick wait for the next one.
func (t *Ticker) Tick(now time.Time) int {
	if len(t.pending) == 0 {
		return 0
	}
	handles := make([]Handle, 0, len(t.pending))
	for h := range t.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	fired := 0
	for _, h := range handles {
		fn, ok := t.pending[h]
		if !ok {
			continue
		}
		delete(t.pending, h)
		fn(now)
		fired++
	}
	return fired
}

func (t *Ticker) Pending() int  { return len(t.pending) }
func (t *Ticker) Requests() int { return t.requests }
func (t *Ticker) Cancels() int  { return t.cancels }

// Loop is a self-rescheduling frame loop. It keeps exactly one outstanding
// handle and requests the next frame only after the current one returns.
type Loop struct {
	sched   Scheduler
	step    func(now time.Time)
	handle  Handle
	running bool
	inTick  bool
	frames  int
}

func NewLoop(sched Scheduler, step func(now time.Time)) *Loop {
	return &Loop{sched: sched, step: step}
}

func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	if l.inTick {
		// tick requests the next frame once step returns.
		return
	}
	l.handle = l.sched.RequestFrame(l.tick)
}

// Stop cancels the pending frame. A frame already executing finishes but does
// not reschedule.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.sched.CancelFrame(l.handle)
	l.handle = 0
}

func (l *Loop) Running() bool { return l.running }
func (l *Loop) Frames() int   { return l.frames }

func (l *Loop) tick(now time.Time) {
	if !l.running {
		return
	}
	l.inTick = true
	l.step(now)
	l.inTick = false
	l.frames++
	if l.running {
		l.handle = l.sched.RequestFrame(l.tick)
	}
}
