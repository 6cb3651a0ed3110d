package anim

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestTickerFiresInRequestOrder(t *testing.T) {
	g := NewWithT(t)
	ticker := NewTicker()

	var order []int
	ticker.RequestFrame(func(time.Time) { order = append(order, 1) })
	ticker.RequestFrame(func(time.Time) { order = append(order, 2) })
	ticker.RequestFrame(func(time.Time) { order = append(order, 3) })

	g.Expect(ticker.Tick(time.Now())).To(Equal(3))
	g.Expect(order).To(Equal([]int{1, 2, 3}))
	g.Expect(ticker.Pending()).To(BeZero())
}

func TestTickerDefersRequestsMadeDuringTick(t *testing.T) {
	g := NewWithT(t)
	ticker := NewTicker()

	calls := 0
	var fn FrameFunc
	fn = func(time.Time) {
		calls++
		ticker.RequestFrame(fn)
	}
	ticker.RequestFrame(fn)

	ticker.Tick(time.Now())
	g.Expect(calls).To(Equal(1))
	g.Expect(ticker.Pending()).To(Equal(1))
}

func TestTickerCancel(t *testing.T) {
	g := NewWithT(t)
	ticker := NewTicker()

	fired := false
	h := ticker.RequestFrame(func(time.Time) { fired = true })
	ticker.CancelFrame(h)
	ticker.CancelFrame(h)

	g.Expect(ticker.Tick(time.Now())).To(BeZero())
	g.Expect(fired).To(BeFalse())
	g.Expect(ticker.Cancels()).To(Equal(1))
}

func TestLoopKeepsOneOutstandingHandle(t *testing.T) {
	g := NewWithT(t)
	ticker := NewTicker()

	steps := 0
	loop := NewLoop(ticker, func(time.Time) { steps++ })
	loop.Start()
	loop.Start()
	g.Expect(ticker.Pending()).To(Equal(1))

	for i := 0; i < 5; i++ {
		ticker.Tick(time.Now())
		g.Expect(ticker.Pending()).To(Equal(1))
	}
	g.Expect(steps).To(Equal(5))
	g.Expect(loop.Frames()).To(Equal(5))
}

func TestLoopStopCancelsPendingFrame(t *testing.T) {
	g := NewWithT(t)
	ticker := NewTicker()

	steps := 0
	loop := NewLoop(ticker, func(time.Time) { steps++ })
	loop.Start()
	ticker.Tick(time.Now())
	loop.Stop()

	g.Expect(loop.Running()).To(BeFalse())
	g.Expect(ticker.Pending()).To(BeZero())
	g.Expect(ticker.Cancels()).To(Equal(1))

	ticker.Tick(time.Now())
	g.Expect(steps).To(Equal(1))
}

func TestLoopStopFromInsideFrame(t *testing.T) {
	g := NewWithT(t)
	ticker := NewTicker()

	var loop *Loop
	loop = NewLoop(ticker, func(time.Time) { loop.Stop() })
	loop.Start()
	ticker.Tick(time.Now())

	g.Expect(loop.Running()).To(BeFalse())
	g.Expect(ticker.Pending()).To(BeZero())
}

func TestLoopRestartFromInsideFrame(t *testing.T) {
	g := NewWithT(t)
	ticker := NewTicker()

	steps := 0
	var loop *Loop
	loop = NewLoop(ticker, func(time.Time) {
		steps++
		loop.Stop()
		loop.Start()
	})
	loop.Start()

	ticker.Tick(time.Now())
	g.Expect(loop.Running()).To(BeTrue())
	g.Expect(ticker.Pending()).To(Equal(1))

	ticker.Tick(time.Now())
	g.Expect(steps).To(Equal(2))
	g.Expect(ticker.Pending()).To(Equal(1))
}
