package client

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/roids/internal/draw"
	"github.com/tomz197/roids/internal/loop"
	"github.com/tomz197/roids/internal/loop/config"
	"github.com/tomz197/roids/internal/object"
	"github.com/tomz197/roids/internal/physics"
)

func fixedSize(w, h int) draw.TermSizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		termW, termH                   int
		wantW, wantH, wantCol, wantRow int
	}{
		{120, 40, 100, 40, 10, 0},
		{100, 60, 100, 40, 0, 10},
		{500, 200, 200, 80, 150, 60},
		{0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		w, h, col, row := clampTermSize(tt.termW, tt.termH, 1.25)
		if w != tt.wantW || h != tt.wantH || col != tt.wantCol || row != tt.wantRow {
			t.Errorf("clampTermSize(%d, %d) = %d, %d, %d, %d; want %d, %d, %d, %d",
				tt.termW, tt.termH, w, h, col, row, tt.wantW, tt.wantH, tt.wantCol, tt.wantRow)
		}
	}
}

func TestRendererFlipsYAxis(t *testing.T) {
	area := physics.Rect{W: 800, H: 640}
	canvas := draw.NewScaledCanvas(100, 40, area.W, area.H)
	r := newCanvasRenderer(canvas, area)

	// A bullet at the top of gameplay space lands in the first terminal row.
	b := object.NewBullet(physics.Vec(400, 632), physics.Vec(1, 0))
	b.Draw(r)

	var buf bytes.Buffer
	canvas.Render(&buf)
	if !strings.Contains(buf.String(), "\033[1;51H"+string(draw.BlockUpperHalf)) {
		t.Fatalf("bullet not drawn in row 1: %q", buf.String())
	}
}

func TestFlushTextKeepsLabelsOnScreen(t *testing.T) {
	area := physics.Rect{W: 800, H: 640}
	canvas := draw.NewScaledCanvas(100, 40, area.W, area.H)
	r := newCanvasRenderer(canvas, area)

	r.DrawText(*object.NewLabel("Score: 0", 24, physics.Vec(10, 630)))
	r.DrawText(*object.NewLabel("far right", 24, physics.Vec(799, 320)))

	var buf bytes.Buffer
	cw := draw.NewChunkWriter(&buf, 0, 0)
	r.flushText(cw)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "\033[1;2HScore: 0") {
		t.Errorf("score label misplaced: %q", out)
	}
	if !strings.Contains(out, "\033[21;92Hfar right") {
		t.Errorf("right label not clamped: %q", out)
	}
	if len(r.labels) != 0 {
		t.Error("labels not cleared after flush")
	}
}

func TestBellRingsOncePerHit(t *testing.T) {
	var buf bytes.Buffer
	cw := draw.NewChunkWriter(&buf, 0, 0)
	a := &bellAudio{}
	a.Play(loop.CueShoot)
	a.flush(cw)
	a.Play(loop.CueHit)
	a.Play(loop.CueHit)
	a.flush(cw)
	a.flush(cw)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "\a"); got != 1 {
		t.Fatalf("bells = %d, want 1", got)
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(bufio.NewReader(strings.NewReader("q")), &out, Options{TermSizeFunc: fixedSize(100, 40)})

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}
	if !strings.Contains(out.String(), "\033[?25h") {
		t.Fatal("cursor not restored")
	}
}

func TestRunStartsSessionOnSpace(t *testing.T) {
	pr, pw := io.Pipe()
	var out bytes.Buffer
	cfg := config.Default()
	cfg.InitialAsteroids = 2
	c := NewClient(bufio.NewReader(pr), &out, Options{TermSizeFunc: fixedSize(100, 40), Game: cfg})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	if _, err := pw.Write([]byte(" ")); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	pw.Close()

	if c.state.GameState != GameStatePlaying || c.session == nil {
		t.Fatal("space on the title screen should start a session")
	}
	if len(c.session.Asteroids()) != 2 {
		t.Fatalf("asteroids = %d, want 2", len(c.session.Asteroids()))
	}
}
