// Command mkicon converts between PNG images and the splash screen icon
// format.
//
//	mkicon -mode encode -pkg icon -out assets.go File=file.png Arrow=arrow.png
//	mkicon -mode encode -format bin -out file.icon File=file.png
//	mkicon -mode decode -in file.icon -out file.png [-zoom 4]
//	mkicon -mode decode -builtin Drive -out drive.png
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"

	"uf2splash/icon"
	"uf2splash/internal/preview"
)

func main() {
	var (
		mode    = flag.String("mode", "encode", "encode|decode.")
		outPath = flag.String("out", "", "Output file (.go or binary for encode, .png for decode).")
		inPath  = flag.String("in", "", "Encoded icon file (decode mode).")
		builtin = flag.String("builtin", "", "Decode a built-in icon (File, Arrow, Drive) instead of -in.")
		pkg     = flag.String("pkg", "icon", "Package name of generated Go source.")
		format  = flag.String("format", "go", "go|bin (encode mode only).")
		zoom    = flag.Int("zoom", 1, "Zoom factor of the decoded PNG.")
	)
	flag.Parse()

	if *outPath == "" {
		fatalf("usage: mkicon -mode encode [-format go|bin] [-pkg icon] -out assets.go Name=in.png...\n       mkicon -mode decode (-in in.icon | -builtin Name) -out out.png [-zoom N]")
	}

	switch strings.ToLower(*mode) {
	case "encode":
		if err := encodeCmd(*outPath, *format, *pkg, flag.Args()); err != nil {
			fatalf("encode: %v", err)
		}
	case "decode":
		if err := decodeCmd(*inPath, *builtin, *outPath, *zoom); err != nil {
			fatalf("decode: %v", err)
		}
	default:
		fatalf("unknown mode: %s", *mode)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func encodeCmd(outPath, format, pkg string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no inputs")
	}
	var icons []namedIcon
	for _, arg := range args {
		name, path, ok := strings.Cut(arg, "=")
		if !ok || name == "" || path == "" {
			return fmt.Errorf("bad input %q (want Name=file.png)", arg)
		}
		bm, err := readPNG(path)
		if err != nil {
			return err
		}
		data, err := icon.Encode(bm)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		icons = append(icons, namedIcon{name: name, data: data})
	}

	var buf bytes.Buffer
	switch strings.ToLower(format) {
	case "go":
		writeGo(&buf, pkg, icons)
	case "bin":
		if len(icons) != 1 {
			return fmt.Errorf("bin format takes exactly one input, got %d", len(icons))
		}
		buf.Write(icons[0].data)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

var builtins = map[string][]byte{
	"File":  icon.File,
	"Arrow": icon.Arrow,
	"Drive": icon.Drive,
}

func decodeCmd(inPath, builtin, outPath string, zoom int) error {
	var data []byte
	switch {
	case builtin != "":
		d, ok := builtins[builtin]
		if !ok {
			return fmt.Errorf("unknown built-in icon %q", builtin)
		}
		data = d
	case inPath != "":
		d, err := os.ReadFile(inPath)
		if err != nil {
			return err
		}
		data = d
	default:
		return fmt.Errorf("need -in or -builtin")
	}

	bm, err := icon.Decode(data)
	if err != nil {
		return err
	}
	return preview.WriteFile(outPath, toImage(bm), zoom)
}
