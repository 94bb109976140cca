// Command sdffont converts TrueType fonts into signed distance field atlas
// assets.
//
//	sdffont -font DejaVuSans.ttf -o dejavu.sdff -png dejavu.png
//	sdffont -dir assets/fonts a.ttf b.ttf c.ttf
//
// Without a font the embedded Go Regular face is used. Fonts given as
// arguments are imported concurrently and written to -dir, each named
// after its source file.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sdffont"
)

func main() {
	def := sdffont.DefaultConfig()
	var (
		fontPath   = flag.String("font", "", "TrueType font file (default: Go Regular)")
		output     = flag.String("o", "font.sdff", "output asset file")
		preview    = flag.String("png", "", "optional atlas preview PNG")
		resolution = flag.Int("resolution", def.Resolution, "glyph size in pixels")
		rng        = flag.Int("range", def.Range, "distance range in pixels")
		padding    = flag.Int("padding", def.Padding, "padding around each glyph cell")
		chars      = flag.String("chars", "", "characters to import (default: printable ASCII)")
		outDir     = flag.String("dir", ".", "output directory for fonts given as arguments")
		verbose    = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		sdffont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := sdffont.Config{
		Resolution: *resolution,
		Range:      *rng,
		Padding:    *padding,
		Chars:      *chars,
	}

	if flag.NArg() > 0 {
		importBatch(flag.Args(), *outDir, cfg)
		return
	}

	var (
		asset *sdffont.FontAsset
		err   error
	)
	if *fontPath == "" {
		asset, err = sdffont.Import(bytes.NewReader(goregular.TTF), cfg)
	} else {
		asset, err = sdffont.DefaultRegistry().Import(*fontPath, cfg)
	}
	if err != nil {
		log.Fatalf("Failed to import: %v", err)
	}

	if err := writeAsset(*output, asset); err != nil {
		log.Fatalf("Failed to write asset: %v", err)
	}
	if *preview != "" {
		if err := asset.Atlas.SavePNG(*preview); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
	}
	logSaved(*output, asset)
}

func importBatch(paths []string, dir string, cfg sdffont.Config) {
	assets, err := sdffont.DefaultRegistry().ImportAll(paths, cfg)
	if err != nil {
		log.Fatalf("Failed to import: %v", err)
	}
	for i, path := range paths {
		base := filepath.Base(path)
		out := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".sdff")
		if err := writeAsset(out, assets[i]); err != nil {
			log.Fatalf("Failed to write asset: %v", err)
		}
		logSaved(out, assets[i])
	}
}

func logSaved(path string, asset *sdffont.FontAsset) {
	log.Printf("Asset saved to %s (%d glyphs, %dx%d atlas)\n",
		path, len(asset.Glyphs), asset.Atlas.Width(), asset.Atlas.Height())
}

func writeAsset(path string, asset *sdffont.FontAsset) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if _, err := asset.WriteTo(w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
