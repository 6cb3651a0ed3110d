package surface

import "gonum.org/v1/gonum/spatial/r2"

// Recorder is a Surface that keeps the draw commands issued since the last
// Clear. It is the engines' output in pure form.
type Recorder struct {
	width, height float64
	commands      []Command
	clears        int
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{width: w, height: h}
}

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }

func (r *Recorder) Resize(w, h float64) { r.width, r.height = w, h }

func (r *Recorder) Clear() {
	r.commands = r.commands[:0]
	r.clears++
}

func (r *Recorder) FillCircle(center r2.Vec, radius float64, color string, alpha float64) {
	r.commands = append(r.commands, Command{Kind: KindCircle, From: center, Radius: radius, Color: color, Alpha: alpha})
}

func (r *Recorder) Line(from, to r2.Vec, color string, alpha, width float64) {
	r.commands = append(r.commands, Command{Kind: KindLine, From: from, To: to, Color: color, Alpha: alpha, Width: width})
}

func (r *Recorder) Glow(center r2.Vec, radius float64, color string, alpha float64) {
	r.commands = append(r.commands, Command{Kind: KindGlow, From: center, Radius: radius, Color: color, Alpha: alpha})
}

// Commands returns the commands of the current frame. The slice is reused by
// the next frame; copy it to keep it.
func (r *Recorder) Commands() []Command { return r.commands }

// Snapshot returns a copy of the current frame's commands.
func (r *Recorder) Snapshot() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Count returns how many commands of kind k the current frame holds.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, c := range r.commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) Clears() int { return r.clears }

// Replay draws the current frame onto dst, starting with a clear.
func (r *Recorder) Replay(dst Surface) {
	dst.Clear()
	for _, c := range r.commands {
		c.Apply(dst)
	}
}
