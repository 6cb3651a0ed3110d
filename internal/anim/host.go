package anim

// EventHost is a Host whose bounds and events are pushed in by its owner, a
// window or terminal event loop.
type EventHost struct {
	w, h     float64
	nextID   int
	onResize map[int]func(w, h float64)
	onMove   map[int]func(x, y float64)
}

func NewEventHost(w, h float64) *EventHost {
	return &EventHost{
		w:        w,
		h:        h,
		onResize: make(map[int]func(w, h float64)),
		onMove:   make(map[int]func(x, y float64)),
	}
}

func (h *EventHost) Bounds() (float64, float64) { return h.w, h.h }

func (h *EventHost) AddResizeListener(fn func(w, h float64)) func() {
	id := h.nextID
	h.nextID++
	h.onResize[id] = fn
	return func() { delete(h.onResize, id) }
}

func (h *EventHost) AddPointerListener(fn func(x, y float64)) func() {
	id := h.nextID
	h.nextID++
	h.onMove[id] = fn
	return func() { delete(h.onMove, id) }
}

// Resize updates the bounds and notifies resize listeners. Unchanged bounds
// are not an event.
func (h *EventHost) Resize(w, hh float64) {
	if w == h.w && hh == h.h {
		return
	}
	h.w, h.h = w, hh
	for _, fn := range h.onResize {
		fn(w, hh)
	}
}

func (h *EventHost) MovePointer(x, y float64) {
	for _, fn := range h.onMove {
		fn(x, y)
	}
}

// Listeners is the number of registered listeners of both kinds.
func (h *EventHost) Listeners() int { return len(h.onResize) + len(h.onMove) }

func (h *EventHost) PointerListeners() int { return len(h.onMove) }
