package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/John-Colvin/YAIDIP/interp"
	"github.com/John-Colvin/YAIDIP/rewrite"
	"github.com/John-Colvin/YAIDIP/scanner"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	mscanner "modernc.org/scanner"
)

// Execute runs the yaidip CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "yaidip",
		Usage:                  "Lower interpolated string literals into argument sequences",
		Version:                version,
		UseShortOptionHandling: true,
		// Allow `yaidip file.d` as shorthand for `yaidip check file.d`
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 && strings.HasSuffix(cmd.Args().First(), ".d") {
				return checkAction(ctx, cmd)
			}
			return cli.DefaultShowRootCommandHelp(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:      "parts",
				Usage:     "Print the lowered part sequence of every literal in a file",
				ArgsUsage: "<file.d> [files...]",
				Flags: append(conventionFlags(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Machine-readable output",
					},
				),
				Action: partsAction,
			},
			{
				Name:      "rewrite",
				Usage:     "Output the source with every literal spliced into its argument list",
				ArgsUsage: "<file.d>",
				Flags: append(conventionFlags(),
					&cli.StringFlag{
						Name:  "header-call",
						Usage: "Template name for the synthesized header argument",
					},
					&cli.BoolFlag{
						Name:  "no-header",
						Usage: "Omit the synthesized header argument",
					},
				),
				Action: rewriteAction,
			},
			{
				Name:      "check",
				Usage:     "Validate every literal: context, balance, embedded expressions",
				ArgsUsage: "[file.d | directory]",
				Flags: append(conventionFlags(),
					&cli.IntFlag{
						Name:    "jobs",
						Aliases: []string{"j"},
						Usage:   "Parallel files",
						Value:   1,
					},
					&cli.BoolFlag{
						Name:    "no-color",
						Aliases: []string{"C"},
						Usage:   "Disable ANSI color output",
					},
				),
				Action: checkAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func conventionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "convention",
			Usage: "Escape convention: dollar or brace",
		},
	}
}

// newRewriter builds a Rewriter from .yaidip.yml overridden by flags.
func newRewriter(cmd *cli.Command) (*rewrite.Rewriter, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	name := cfg.Convention
	if v := cmd.String("convention"); v != "" {
		name = v
	}
	conv, err := interp.ParseConvention(name)
	if err != nil {
		return nil, err
	}
	r := &rewrite.Rewriter{
		Convention: conv,
		HeaderCall: cfg.HeaderCall,
		NoHeader:   cfg.NoHeader,
	}
	if cmd.String("header-call") != "" {
		r.HeaderCall = cmd.String("header-call")
	}
	if cmd.Bool("no-header") {
		r.NoHeader = true
	}
	return r, nil
}

// partRecord is the JSON form of one lowered literal.
type partRecord struct {
	File   string        `json:"file"`
	Line   int           `json:"line"`
	Parts  []partField   `json:"parts"`
	Header interp.Header `json:"header"`
}

type partField struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func partsAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: yaidip parts <file.d> [files...]")
	}
	rw, err := newRewriter(cmd)
	if err != nil {
		return err
	}

	var records []partRecord
	for _, file := range cmd.Args().Slice() {
		src, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		lits, err := scanner.FindLiterals(string(src))
		if err != nil {
			return fmt.Errorf("%s:%w", file, err)
		}
		for _, lit := range lits {
			seq, err := interp.Lower(lit.Raw, rw.Convention)
			if err != nil {
				return fmt.Errorf("%s:%d: %w", file, lit.Line, err)
			}
			if cmd.Bool("json") {
				rec := partRecord{File: file, Line: lit.Line, Header: seq.Header()}
				for _, p := range seq {
					rec.Parts = append(rec.Parts, partField{Kind: p.Kind.String(), Text: p.Text})
				}
				records = append(records, rec)
			} else {
				fmt.Printf("%s:%d: %s\n", file, lit.Line, seq)
			}
		}
	}
	if cmd.Bool("json") {
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

func rewriteAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: yaidip rewrite <file.d>")
	}
	rw, err := newRewriter(cmd)
	if err != nil {
		return err
	}
	out, err := rw.RewriteFile(cmd.Args().First())
	if err != nil {
		return firstDiagnostic(err)
	}
	fmt.Print(out)
	return nil
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	targets := cmd.Args().Slice()
	if len(targets) == 0 {
		targets = []string{"."}
	}
	rw, err := newRewriter(cmd)
	if err != nil {
		return err
	}

	noColor := cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "" ||
		!term.IsTerminal(int(os.Stderr.Fd()))

	// Collect .d files
	var files []string
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return fmt.Errorf("cannot access %s: %w", target, err)
		}
		if info.IsDir() {
			entries, err := os.ReadDir(target)
			if err != nil {
				return fmt.Errorf("reading directory %s: %w", target, err)
			}
			for _, e := range entries {
				if !e.IsDir() && strings.HasSuffix(e.Name(), ".d") {
					files = append(files, filepath.Join(target, e.Name()))
				}
			}
		} else {
			files = append(files, target)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no .d source files found")
	}

	jobs := cmd.Int("jobs")
	if jobs < 1 {
		jobs = 1
	}

	// Literals are lowered independently, so files can be checked in
	// parallel; output is buffered per file and printed in order.
	type fileResult struct {
		literals int
		err      error
	}
	results := make([]fileResult, len(files))
	work := make(chan int, len(files))
	for i := range files {
		work <- i
	}
	close(work)
	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				n, err := rw.CheckFile(files[i])
				results[i] = fileResult{literals: n, err: err}
			}
		}()
	}
	wg.Wait()

	colorOK, colorFail, colorReset := "\033[32m", "\033[31m", "\033[0m"
	if noColor {
		colorOK, colorFail, colorReset = "", "", ""
	}

	totalLits, totalErrs := 0, 0
	for i, file := range files {
		r := results[i]
		totalLits += r.literals
		if r.err == nil {
			fmt.Fprintf(os.Stderr, "%s: %d literals %sok%s\n", file, r.literals, colorOK, colorReset)
			continue
		}
		lines := diagnosticLines(r.err)
		totalErrs += len(lines)
		for _, l := range lines {
			fmt.Fprintf(os.Stderr, "%s%s%s\n", colorFail, l, colorReset)
		}
	}

	if totalErrs > 0 {
		fmt.Fprintf(os.Stderr, "\n%d files, %d literals, %s%d errors%s\n",
			len(files), totalLits, colorFail, totalErrs, colorReset)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%d files, %d literals, %s0 errors%s\n",
		len(files), totalLits, colorOK, colorReset)
	return nil
}

// diagnosticLines flattens an error-list into printable lines.
func diagnosticLines(err error) []string {
	if el, ok := err.(mscanner.ErrList); ok {
		lines := make([]string, len(el))
		for i, e := range el {
			lines[i] = fmt.Sprintf("%s", e)
		}
		return lines
	}
	return []string{err.Error()}
}

// firstDiagnostic extracts the first error from an error list.
func firstDiagnostic(err error) error {
	if el, ok := err.(mscanner.ErrList); ok && len(el) > 0 {
		return fmt.Errorf("%s", el[0])
	}
	return err
}
