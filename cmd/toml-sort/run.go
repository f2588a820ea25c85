package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/tomlsort"
	"github.com/signadot/tomlsort/encode"
	"github.com/signadot/tomlsort/libdiff"
	"github.com/signadot/tomlsort/parse"
	"github.com/signadot/tomlsort/settings"
)

func tomlSort(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Version {
		fmt.Fprintf(cc.Out, "%s %s\n", name, version)
		return nil
	}
	setVerbose(cfg.Verbose)
	s, err := cfg.loadSettings()
	if err != nil {
		return err
	}
	if s.Path != "" {
		theLog.Debug("loaded settings", "path", s.Path)
	}
	cfg.merge(s)
	if len(args) == 0 {
		args = []string{"-"}
	}
	if err := cfg.validate(s, args); err != nil {
		return err
	}
	sorter, err := tomlsort.New(s.Options()...)
	if err != nil {
		return err
	}
	r := &runner{
		cfg:    cfg,
		set:    s,
		sorter: sorter,
		stdin:  os.Stdin,
		stdout: cc.Out,
		stderr: os.Stderr,
		colors: cfg.colors(cc.Out),
	}
	return r.run(args)
}

// colors reports whether output to w is colored: -color decides when given,
// otherwise a terminal is.
func (cfg *MainConfig) colors(w io.Writer) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return cfg.Color
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type runner struct {
	cfg    *MainConfig
	set    *settings.Settings
	sorter *tomlsort.Sorter
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	colors bool
}

func (r *runner) run(files []string) error {
	var failures []string
	for _, f := range files {
		orig, err := r.read(f)
		if err != nil {
			return err
		}
		sorted, err := r.sorter.Sorted(orig)
		if err != nil {
			return fmt.Errorf("%s: %w", displayName(f), err)
		}
		switch {
		case r.set.Check:
			if orig == sorted {
				continue
			}
			failures = append(failures, displayName(f))
			if r.cfg.Diff {
				fmt.Fprint(r.stdout, libdiff.Unified(displayName(f), displayName(f)+" (sorted)", orig, sorted, r.colors))
			}
		case r.set.InPlace:
			if orig == sorted {
				theLog.Debug("already sorted", "file", f)
				continue
			}
			if err := writeInPlace(f, sorted); err != nil {
				return err
			}
			theLog.Debug("sorted", "file", f)
		default:
			if err := r.write(sorted); err != nil {
				return err
			}
		}
	}
	if len(failures) == 0 {
		return nil
	}
	fmt.Fprintf(r.stderr, "%d check failure(s):\n", len(failures))
	for _, f := range failures {
		fmt.Fprintf(r.stderr, "  - %s\n", f)
	}
	return cli.ExitCodeErr(1)
}

func (r *runner) read(f string) (string, error) {
	if f == "-" {
		d, err := io.ReadAll(r.stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(d), nil
	}
	d, err := os.ReadFile(f)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func (r *runner) write(sorted string) error {
	if r.cfg.Output != "" {
		return os.WriteFile(r.cfg.Output, []byte(sorted), 0644)
	}
	if !r.colors {
		_, err := io.WriteString(r.stdout, sorted)
		return err
	}
	doc, err := parse.ParseString(sorted, parse.ParseValidate(false))
	if err != nil {
		return err
	}
	return encode.Encode(doc, r.stdout, encode.EncodeColors(encode.NewColors()))
}

func writeInPlace(f, sorted string) error {
	st, err := os.Stat(f)
	if err != nil {
		return err
	}
	if !st.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", f, errNotRegular)
	}
	return os.WriteFile(f, []byte(sorted), st.Mode().Perm())
}

var errNotRegular = errors.New("not a regular file")

func displayName(f string) string {
	if f == "-" {
		return "<stdin>"
	}
	return f
}
