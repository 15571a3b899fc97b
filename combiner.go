package combine

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// OutputName is the name of the combined output file. It is always created in
// the directory being combined, and is never itself a candidate.
const OutputName = "combined_output.txt"

// Report summarises a single run.
type Report struct {
	// Output is the path of the file that was written.
	Output string
	// Combined lists the files whose blocks were written, in output order.
	Combined []string
	// Failed lists the candidates that could not be read.
	Failed []*ReadError
	// Skipped lists entries that were not candidates: non-regular entries,
	// the program itself, and the output file.
	Skipped []string
}

// Combiner concatenates the regular files of one directory into OutputName.
type Combiner struct {
	dir    string
	self   string
	stdout io.Writer
	logger *slog.Logger
	fail   *color.Color
	done   *color.Color
}

// New returns a Combiner for dir. By default it reports to os.Stdout and logs
// nowhere.
func New(dir string) *Combiner {
	return &Combiner{
		dir:    dir,
		stdout: os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		fail:   color.New(color.FgRed),
		done:   color.New(color.FgGreen),
	}
}

// WithSelf sets the name of the running program, so that it is left out of
// the output. Only the base name is used.
func (c *Combiner) WithSelf(name string) *Combiner {
	if name != "" {
		name = filepath.Base(name)
	}
	c.self = name
	return c
}

// WithStdout takes an io.Writer, and sends console messages to it instead of
// the default os.Stdout. Messages to a custom writer are never coloured.
func (c *Combiner) WithStdout(w io.Writer) *Combiner {
	c.stdout = w
	c.fail.DisableColor()
	c.done.DisableColor()
	return c
}

// WithLogger sets the logger used for operational events.
func (c *Combiner) WithLogger(l *slog.Logger) *Combiner {
	c.logger = l
	return c
}

// OutputPath returns the path of the output file.
func (c *Combiner) OutputPath() string {
	return filepath.Join(c.dir, OutputName)
}

// Run writes one block per candidate file to the output file, truncating
// whatever was there before. Files that cannot be read or are not valid UTF-8
// are reported on the console and left out; they never stop the run. Run
// returns an error only if the output file cannot be created or written, or
// the directory cannot be listed. The completion message is printed only
// when Run succeeds.
func (c *Combiner) Run() (Report, error) {
	report := Report{Output: c.OutputPath()}
	skip := NewSkipSet(c.self, OutputName)
	out, err := os.Create(report.Output)
	if err != nil {
		return report, fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()
	entries, err := ListEntries(c.dir)
	if err != nil {
		return report, fmt.Errorf("listing %s: %w", c.dir, err)
	}
	for _, e := range entries {
		if !skip.Admits(e) {
			c.logger.Debug("skipping entry", "name", e.Name, "regular", e.Regular)
			report.Skipped = append(report.Skipped, e.Name)
			continue
		}
		block := File(filepath.Join(c.dir, e.Name)).DecodeText().Block(e.Name)
		if block.Error() != nil {
			rerr := &ReadError{Name: e.Name, Err: block.Error()}
			c.fail.Fprintf(c.stdout, "Could not read %s: %v", rerr.Name, rerr.Err)
			fmt.Fprintln(c.stdout)
			c.logger.Debug("read failed", "name", e.Name, "error", rerr.Err)
			report.Failed = append(report.Failed, rerr)
			continue
		}
		n, err := block.AppendTo(out)
		if err != nil {
			return report, fmt.Errorf("writing %s: %w", report.Output, err)
		}
		c.logger.Debug("combined file", "name", e.Name, "bytes", n)
		report.Combined = append(report.Combined, e.Name)
	}
	if err := out.Close(); err != nil {
		return report, fmt.Errorf("closing %s: %w", report.Output, err)
	}
	c.logger.Info("run complete",
		"output", report.Output,
		"combined", len(report.Combined),
		"failed", len(report.Failed),
		"skipped", len(report.Skipped),
	)
	c.done.Fprintf(c.stdout, "All files combined into '%s'.", OutputName)
	fmt.Fprintln(c.stdout)
	return report, nil
}
