package app

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"uf2splash/board"
	"uf2splash/display"
	"uf2splash/hal"
	"uf2splash/palette"
)

type testLogger struct{ lines []string }

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *testLogger) contains(sub string) bool {
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type testLED struct{ on bool }

func (l *testLED) High() { l.on = true }
func (l *testLED) Low()  { l.on = false }

type testPanel struct {
	display.Recorder
	w, h int
}

func (p *testPanel) Width() int  { return p.w }
func (p *testPanel) Height() int { return p.h }

type testHAL struct {
	log   testLogger
	led   testLED
	panel *testPanel
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{panel: &testPanel{w: w, h: h}}
}

func (h *testHAL) Logger() hal.Logger { return &h.log }
func (h *testHAL) LED() hal.LED       { return &h.led }
func (h *testHAL) Panel() hal.Panel   { return h.panel }

func TestRenderLogsAndLightsLED(t *testing.T) {
	b, _ := board.Lookup("tft240x135")
	h := newTestHAL(b.Width, b.Height)
	if err := Render(h, Config{Board: b}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !h.log.contains("splash: rendered tft240x135 240x135") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if h.log.contains("warning") {
		t.Fatalf("unexpected clipping warning: %q", h.log.lines)
	}
	if !h.led.on {
		t.Fatalf("LED not lit")
	}
	if len(h.panel.Lines) != 240 {
		t.Fatalf("lines = %d", len(h.panel.Lines))
	}
}

func TestRenderWarnsOnClipping(t *testing.T) {
	b := board.Default()
	h := newTestHAL(b.Width, b.Height)
	if err := Render(h, Config{Board: b}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !h.log.contains("splash: warning:") {
		t.Fatalf("no clipping warning in %q", h.log.lines)
	}
}

func TestRenderFailureShowsFault(t *testing.T) {
	b := board.Default()
	// The panel does not match the board.
	h := newTestHAL(100, 60)
	err := Render(h, Config{Board: b})
	if !errors.Is(err, display.ErrSize) {
		t.Fatalf("err = %v, want ErrSize", err)
	}
	if !h.log.contains("splash: render failed:") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if h.led.on {
		t.Fatalf("LED lit after failure")
	}
	if len(h.panel.Lines) != 100 {
		t.Fatalf("fault screen lines = %d, want 100", len(h.panel.Lines))
	}
	// Background is red, text is white.
	red := palette.ColorOf(palette.Red)
	white := palette.ColorOf(palette.White)
	var sawRed, sawWhite bool
	for x := range h.panel.Lines {
		for y := 0; y < 60; y++ {
			c, _ := h.panel.Pixel(x, y)
			sawRed = sawRed || c == red
			sawWhite = sawWhite || c == white
		}
	}
	if !sawRed || !sawWhite {
		t.Fatalf("fault screen red=%v white=%v", sawRed, sawWhite)
	}
}

func TestStepRendersOnce(t *testing.T) {
	b, _ := board.Lookup("tft240x135")
	h := newTestHAL(b.Width, b.Height)
	step := New(h, Config{Board: b})
	for i := 0; i < 3; i++ {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if len(h.panel.Lines) != 240 {
		t.Fatalf("lines = %d, want one frame", len(h.panel.Lines))
	}
}

func TestStepExitOnError(t *testing.T) {
	h := newTestHAL(10, 10)
	if err := New(h, Config{Board: board.Default()})(); err != nil {
		t.Fatalf("step returned %v without ExitOnError", err)
	}
	h = newTestHAL(10, 10)
	if err := New(h, Config{Board: board.Default(), ExitOnError: true})(); err == nil {
		t.Fatalf("step returned nil with ExitOnError")
	}
}

func TestRenderWritesPNG(t *testing.T) {
	b, _ := board.Lookup("tft240x135")
	h := hal.New(b.Width, b.Height)
	path := filepath.Join(t.TempDir(), "splash.png")
	if err := Render(h, Config{Board: b, PNG: path, Zoom: 2}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Dx(); got != 480 {
		t.Fatalf("width = %d, want 480", got)
	}
}

func TestRenderPNGNeedsReadablePanel(t *testing.T) {
	b, _ := board.Lookup("tft240x135")
	h := newTestHAL(b.Width, b.Height)
	err := Render(h, Config{Board: b, PNG: filepath.Join(t.TempDir(), "x.png")})
	if err == nil {
		t.Fatalf("Render with write-only panel: no error")
	}
}

func TestTakeRunes(t *testing.T) {
	p, r := takeRunes("héllo", 2)
	if p != "hé" || r != "llo" {
		t.Fatalf("takeRunes = %q, %q", p, r)
	}
	p, r = takeRunes("ab", 5)
	if p != "ab" || r != "" {
		t.Fatalf("takeRunes = %q, %q", p, r)
	}
}
