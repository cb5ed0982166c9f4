package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"uf2splash/icon"

	"github.com/google/go-cmp/cmp"
)

func TestGeneratedAssetsUpToDate(t *testing.T) {
	var icons []namedIcon
	for _, name := range []string{"File", "Arrow", "Drive"} {
		bm, err := icon.Decode(builtins[name])
		if err != nil {
			t.Fatalf("Decode(%s): %v", name, err)
		}
		data, err := icon.Encode(bm)
		if err != nil {
			t.Fatalf("Encode(%s): %v", name, err)
		}
		icons = append(icons, namedIcon{name: name, data: data})
	}
	var buf bytes.Buffer
	writeGo(&buf, "icon", icons)

	want, err := os.ReadFile(filepath.Join("..", "..", "icon", "assets.go"))
	if err != nil {
		t.Fatalf("read assets: %v", err)
	}
	if diff := cmp.Diff(string(want), buf.String()); diff != "" {
		t.Fatalf("icon/assets.go is stale (-file +generated):\n%s", diff)
	}
}

func TestImageRoundTrip(t *testing.T) {
	bm, err := icon.Decode(icon.Drive)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, err := fromImage(toImage(bm))
	if err != nil {
		t.Fatalf("fromImage: %v", err)
	}
	if got.Width != bm.Width || got.Height != bm.Height || got.Count() != bm.Count() {
		t.Fatalf("round trip %dx%d/%d, want %dx%d/%d", got.Width, got.Height, got.Count(), bm.Width, bm.Height, bm.Count())
	}
	for x := 0; x < bm.Width; x++ {
		for y := 0; y < bm.Height; y++ {
			if got.At(x, y) != bm.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs", x, y)
			}
		}
	}
}

func TestFromImageIgnoresTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{A: 0xff})
	img.Set(1, 0, color.NRGBA{A: 0x10})
	bm, err := fromImage(img)
	if err != nil {
		t.Fatalf("fromImage: %v", err)
	}
	if !bm.At(0, 0) || bm.At(1, 0) {
		t.Fatalf("bits = %v %v", bm.At(0, 0), bm.At(1, 0))
	}
}

func TestFromImageTooLarge(t *testing.T) {
	if _, err := fromImage(image.NewGray(image.Rect(0, 0, 300, 1))); err == nil {
		t.Fatalf("no error for 300 pixel wide image")
	}
}

func TestEncodeAndDecodeCommands(t *testing.T) {
	dir := t.TempDir()
	bm, _ := icon.Decode(icon.Arrow)

	pngPath := filepath.Join(dir, "arrow.png")
	f, err := os.Create(pngPath)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, toImage(bm)); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	f.Close()

	binPath := filepath.Join(dir, "arrow.icon")
	if err := encodeCmd(binPath, "bin", "icon", []string{"Arrow=" + pngPath}); err != nil {
		t.Fatalf("encodeCmd: %v", err)
	}
	data, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if diff := cmp.Diff(icon.Arrow, data); diff != "" {
		t.Fatalf("encoded (-want +got):\n%s", diff)
	}

	outPNG := filepath.Join(dir, "out.png")
	if err := decodeCmd(binPath, "", outPNG, 3); err != nil {
		t.Fatalf("decodeCmd: %v", err)
	}
	r, err := os.Open(outPNG)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()
	img, err := png.Decode(r)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(72, 60) {
		t.Fatalf("decoded size = %v", got)
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	if err := encodeCmd(filepath.Join(dir, "x.go"), "go", "icon", nil); err == nil {
		t.Errorf("encode without inputs: no error")
	}
	if err := encodeCmd(filepath.Join(dir, "x.go"), "go", "icon", []string{"noequals"}); err == nil {
		t.Errorf("encode with bad arg: no error")
	}
	if err := decodeCmd("", "Nope", filepath.Join(dir, "x.png"), 1); err == nil {
		t.Errorf("decode unknown builtin: no error")
	}
	if err := decodeCmd("", "", filepath.Join(dir, "x.png"), 1); err == nil {
		t.Errorf("decode without input: no error")
	}
	if err := decodeCmd("", "File", filepath.Join(dir, "file.png"), 1); err != nil {
		t.Errorf("decode builtin: %v", err)
	}
}
