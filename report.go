package sort_suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
	yaml "gopkg.in/yaml.v2"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is everything printed for one benchmark run. Formatting only
// happens here, after every timing has been taken.
type Report struct {
	Source          string
	InputLength     int
	InputSortedness byte
	Samples         []TimingSample
	// PrintOutput includes each sorted sequence in the rendering.
	PrintOutput bool
}

func NewReport(source string, input []int, samples []TimingSample) *Report {
	return &Report{
		Source:          source,
		InputLength:     len(input),
		InputSortedness: Sortedness(input),
		Samples:         samples,
	}
}

// Ranked returns the samples fastest first. Ties keep presentation order.
func (r *Report) Ranked() []TimingSample {
	ranked := make([]TimingSample, len(r.Samples))
	copy(ranked, r.Samples)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Elapsed < ranked[j].Elapsed
	})
	return ranked
}

// Fastest returns the quickest sample, or nil for an empty report.
func (r *Report) Fastest() *TimingSample {
	if len(r.Samples) == 0 {
		return nil
	}
	ranked := r.Ranked()
	return &ranked[0]
}

type reportRow struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Label     string `json:"label" yaml:"label"`
	ElapsedNS int64  `json:"elapsed_ns" yaml:"elapsed_ns"`
	Output    []int  `json:"output,omitempty" yaml:"output,omitempty"`
}

type reportDoc struct {
	Source          string      `json:"source,omitempty" yaml:"source,omitempty"`
	InputLength     int         `json:"input_length" yaml:"input_length"`
	InputSortedness byte        `json:"input_sortedness" yaml:"input_sortedness"`
	Fastest         string      `json:"fastest,omitempty" yaml:"fastest,omitempty"`
	Results         []reportRow `json:"results" yaml:"results"`
}

func (r *Report) doc() reportDoc {
	d := reportDoc{
		Source:          r.Source,
		InputLength:     r.InputLength,
		InputSortedness: r.InputSortedness,
		Results:         make([]reportRow, 0, len(r.Samples)),
	}
	if f := r.Fastest(); f != nil {
		d.Fastest = f.Algorithm
	}
	for _, s := range r.Samples {
		row := reportRow{Algorithm: s.Algorithm, Label: s.Label, ElapsedNS: s.Elapsed.Nanoseconds()}
		if r.PrintOutput {
			row.Output = s.Output
		}
		d.Results = append(d.Results, row)
	}
	return d
}

// Render writes the report to w in the given format.
func (r *Report) Render(w io.Writer, format string) error {
	switch format {
	case "", FormatText:
		return r.renderText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.doc())
	case FormatYAML:
		out, err := yaml.Marshal(r.doc())
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func (r *Report) renderText(w io.Writer) error {
	label := color.New(color.FgCyan, color.Bold)
	fastest := color.New(color.FgGreen)
	if isTerminal(w) {
		label.EnableColor()
		fastest.EnableColor()
	} else {
		label.DisableColor()
		fastest.DisableColor()
	}

	if r.Source != "" {
		fmt.Fprintf(w, "Input: %s\n", r.Source)
	}
	fmt.Fprintf(w, "Items: %s (sortedness %d%%)\n", humanize.Comma(int64(r.InputLength)), r.InputSortedness)

	for _, s := range r.Samples {
		fmt.Fprintf(w, "%s: %s\n", label.Sprint(s.Label), FormatElapsed(s.Elapsed))
		if r.PrintOutput {
			fmt.Fprintln(w, FormatNumbers(s.Output))
		}
	}

	if f := r.Fastest(); f != nil && len(r.Samples) > 1 {
		fmt.Fprintf(w, "Fastest: %s\n", fastest.Sprint(f.Label))
	}
	return nil
}

// FormatElapsed renders d in milliseconds with microsecond precision.
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
