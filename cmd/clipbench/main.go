// Command clipbench clips a WKT polygon against a rectangle with each
// clipping strategy, checks the number of emitted commands against expected
// counts and reports timings.
//
// Settings come from a .env file, CLIPBENCH_* environment variables and flags,
// in increasing order of precedence. Run clipbench -h for the flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"honnef.co/go/rectclip"
	"honnef.co/go/rectclip/raster"
	"honnef.co/go/rectclip/wkt"
)

// errMismatch is returned by run if any strategy emitted an unexpected number
// of commands.
var errMismatch = errors.New("unexpected command count")

// result summarizes the benchmark of one strategy.
type result struct {
	Strategy   string
	Count      int
	Mismatches int
	Elapsed    time.Duration
}

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := defaultConfig()
	if err := cfg.fromEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.register(flag.CommandLine)
	flag.Parse()

	log := newLogger(cfg.Debug)
	rectclip.SetLogger(log)

	if _, err := run(cfg, log); err != nil {
		log.Error("clipbench failed", "err", err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment variables from path. A missing file isn't an
// error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// newLogger logs text to a terminal and JSON otherwise.
func newLogger(debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func run(cfg config, log *slog.Logger) ([]result, error) {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	poly, err := wkt.ParsePolygon(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	rect, err := wkt.ParseRect(cfg.Rect)
	if err != nil {
		return nil, err
	}
	if err := rect.Validate(); err != nil {
		return nil, err
	}
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return nil, err
		}
	}

	var results []result
	var failed bool
	for _, name := range cfg.Strategies {
		clip, err := rectclip.LookupStrategy(name)
		if err != nil {
			return results, err
		}
		res, err := bench(poly, rect, name, clip, cfg)
		if err != nil {
			return results, err
		}
		results = append(results, res)

		attrs := []any{
			"strategy", res.Strategy,
			"iterations", cfg.Iterations,
			"commands", res.Count,
			"elapsed", res.Elapsed,
			"per_op", res.Elapsed / time.Duration(cfg.Iterations),
		}
		if res.Mismatches > 0 {
			failed = true
			log.Error("clipping produced unexpected command count",
				append(attrs, "want", cfg.Expect[name], "mismatches", res.Mismatches)...)
		} else {
			log.Info("clipped polygon", attrs...)
		}

		if cfg.OutDir != "" {
			if err := writeRenderings(poly, rect, name, clip, cfg); err != nil {
				return results, err
			}
		}
	}
	if failed {
		return results, errMismatch
	}
	return results, nil
}

func bench(poly rectclip.Polygon, rect rectclip.Rect, name string, clip rectclip.RingClipper, cfg config) (result, error) {
	want, check := cfg.Expect[name]
	res := result{Strategy: name}
	start := time.Now()
	for range cfg.Iterations {
		var src rectclip.CommandSource
		if cfg.Lazy {
			c, err := rectclip.NewLazyCursor(poly, rect, clip)
			if err != nil {
				return res, err
			}
			src = c
		} else {
			p, err := rectclip.ClipPolygonWith(poly, rect, clip)
			if err != nil {
				return res, err
			}
			src = rectclip.NewCursor(p)
		}
		res.Count = rectclip.Count(src)
		if check && res.Count != want {
			res.Mismatches++
		}
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// writeRenderings writes the clipped polygon as WKT, as an SVG path and as a
// PNG rendering of the input polygon's extent.
func writeRenderings(poly rectclip.Polygon, rect rectclip.Rect, name string, clip rectclip.RingClipper, cfg config) error {
	p, err := rectclip.ClipPolygonWith(poly, rect, clip)
	if err != nil {
		return err
	}
	base := filepath.Join(cfg.OutDir, "polygon_clipping_"+name)

	if err := os.WriteFile(base+".wkt", []byte(wkt.FormatPolygon(p)+"\n"), 0o644); err != nil {
		return err
	}

	extent := poly.BoundingBox()
	f, err := os.Create(base + ".svg")
	if err != nil {
		return err
	}
	if err := writeSVGDocument(f, p, extent); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	img := raster.Render(rectclip.NewCursor(p), extent, cfg.Size, cfg.Size, 10)
	return imaging.Save(img, base+".png")
}

// writeSVGDocument writes p as a single filled path in an SVG document whose
// view box is extent.
func writeSVGDocument(w io.Writer, p rectclip.Polygon, extent rectclip.Rect) error {
	_, err := fmt.Fprintf(w, `<svg viewBox="%g %g %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n"+`<path fill="#7f7f7f" d="`,
		extent.X0, extent.Y0, extent.Width(), extent.Height())
	if err != nil {
		return err
	}
	if err := rectclip.WriteSVG(w, p.Commands(), rectclip.SVGOptions{MaxPrecision: 6}); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\" />\n</svg>\n")
	return err
}
