package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"honnef.co/go/rectclip"
)

// config holds the benchmark settings. Defaults are overridden by CLIPBENCH_*
// environment variables (optionally loaded from .env), which are in turn
// overridden by flags.
type config struct {
	Input      string
	Rect       string
	Strategies []string
	Iterations int
	Expect     map[string]int
	Lazy       bool
	OutDir     string
	Size       int
	Debug      bool
}

func defaultConfig() config {
	return config{
		Input:      "testdata/polygon.wkt",
		Rect:       "181 106 631 470",
		Strategies: rectclip.Strategies(),
		Iterations: 10000,
		Expect:     map[string]int{"halfplane": 31, "orb": 31},
		Size:       256,
	}
}

// fromEnv applies CLIPBENCH_* variables to cfg.
func (cfg *config) fromEnv() error {
	if v, ok := os.LookupEnv("CLIPBENCH_INPUT"); ok {
		cfg.Input = v
	}
	if v, ok := os.LookupEnv("CLIPBENCH_RECT"); ok {
		cfg.Rect = v
	}
	if v, ok := os.LookupEnv("CLIPBENCH_STRATEGIES"); ok {
		cfg.Strategies = splitList(v)
	}
	if v, ok := os.LookupEnv("CLIPBENCH_ITERATIONS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CLIPBENCH_ITERATIONS: %w", err)
		}
		cfg.Iterations = n
	}
	if v, ok := os.LookupEnv("CLIPBENCH_EXPECT"); ok {
		m, err := parseExpect(v)
		if err != nil {
			return fmt.Errorf("CLIPBENCH_EXPECT: %w", err)
		}
		cfg.Expect = m
	}
	if v, ok := os.LookupEnv("CLIPBENCH_LAZY"); ok {
		cfg.Lazy = v == "true" || v == "1"
	}
	if v, ok := os.LookupEnv("CLIPBENCH_OUT"); ok {
		cfg.OutDir = v
	}
	if v, ok := os.LookupEnv("CLIPBENCH_DEBUG"); ok {
		cfg.Debug = v == "true" || v == "1"
	}
	return nil
}

// listFlag is a comma separated list of strings.
type listFlag struct{ dst *[]string }

func (f listFlag) String() string {
	if f.dst == nil {
		return ""
	}
	return strings.Join(*f.dst, ",")
}

func (f listFlag) Set(s string) error {
	*f.dst = splitList(s)
	return nil
}

// expectFlag is a comma separated list of strategy=count pairs.
type expectFlag struct{ dst *map[string]int }

func (f expectFlag) String() string {
	if f.dst == nil {
		return ""
	}
	var parts []string
	for _, name := range rectclip.Strategies() {
		if n, ok := (*f.dst)[name]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", name, n))
		}
	}
	return strings.Join(parts, ",")
}

func (f expectFlag) Set(s string) error {
	m, err := parseExpect(s)
	if err != nil {
		return err
	}
	*f.dst = m
	return nil
}

// register adds flags for every setting to fs, using cfg's values as
// defaults.
func (cfg *config) register(fs *flag.FlagSet) {
	fs.StringVar(&cfg.Input, "in", cfg.Input, "WKT file containing the polygon to clip")
	fs.StringVar(&cfg.Rect, "rect", cfg.Rect, `clip box as "minx miny maxx maxy" or WKT geometry`)
	fs.Var(listFlag{&cfg.Strategies}, "strategies", "comma separated clipping strategies")
	fs.IntVar(&cfg.Iterations, "n", cfg.Iterations, "iterations per strategy")
	fs.Var(expectFlag{&cfg.Expect}, "expect", "expected command counts as strategy=count pairs")
	fs.BoolVar(&cfg.Lazy, "lazy", cfg.Lazy, "clip lazily while streaming")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory for SVG and PNG renderings (disabled if empty)")
	fs.IntVar(&cfg.Size, "size", cfg.Size, "rendering width and height in pixels")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseExpect(s string) (map[string]int, error) {
	m := map[string]int{}
	for _, pair := range splitList(s) {
		name, count, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid expectation %q, want strategy=count", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return nil, fmt.Errorf("invalid count in %q: %w", pair, err)
		}
		m[strings.TrimSpace(name)] = n
	}
	return m, nil
}
