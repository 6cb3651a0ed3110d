package surface

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestRecorderClearStartsNewFrame(t *testing.T) {
	rec := NewRecorder(100, 100)

	rec.FillCircle(r2.Vec{X: 1, Y: 1}, 2, "#ffffff", 1)
	rec.Line(r2.Vec{}, r2.Vec{X: 10}, "#ffffff", 0.5, 0.5)
	if len(rec.Commands()) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(rec.Commands()))
	}

	rec.Clear()
	if len(rec.Commands()) != 0 {
		t.Errorf("expected empty frame after clear, got %d commands", len(rec.Commands()))
	}
	if rec.Clears() != 1 {
		t.Errorf("expected 1 clear, got %d", rec.Clears())
	}
}

func TestRecorderCount(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.FillCircle(r2.Vec{}, 1, "#000000", 1)
	rec.FillCircle(r2.Vec{}, 1, "#000000", 1)
	rec.Glow(r2.Vec{}, 3, "#000000", 1)

	if got := rec.Count(KindCircle); got != 2 {
		t.Errorf("expected 2 circles, got %d", got)
	}
	if got := rec.Count(KindGlow); got != 1 {
		t.Errorf("expected 1 glow, got %d", got)
	}
	if got := rec.Count(KindLine); got != 0 {
		t.Errorf("expected 0 lines, got %d", got)
	}
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder(10, 10)
	src.FillCircle(r2.Vec{X: 2, Y: 3}, 1, "#3b82f6", 0.5)
	src.Line(r2.Vec{}, r2.Vec{X: 4, Y: 4}, "#3b82f6", 0.2, 0.5)

	dst := NewRecorder(10, 10)
	dst.FillCircle(r2.Vec{}, 9, "#ff0000", 1)
	src.Replay(dst)

	got := dst.Snapshot()
	want := src.Snapshot()
	if len(got) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.FillCircle(r2.Vec{}, 1, "#000000", 1)
	snap := rec.Snapshot()
	rec.Clear()
	rec.FillCircle(r2.Vec{X: 5}, 2, "#ffffff", 1)

	if snap[0].Radius != 1 {
		t.Error("snapshot should not alias the recorder buffer")
	}
}
