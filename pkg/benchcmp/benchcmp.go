// Package benchcmp compares two Google Benchmark JSON reports and renders the
// differences as a Markdown report.
package benchcmp

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// DefaultThreshold is the relative change above which a benchmark is reported.
const DefaultThreshold = 0.10

var aggregateSuffixes = []string{"_mean", "_median", "_stddev", "_cv"}

// Benchmark is a single run entry of a report.
type Benchmark struct {
	Name     string
	RealTime float64
	TimeUnit string
}

// Set maps benchmark names to entries. Aggregates are excluded.
type Set map[string]Benchmark

func isAggregate(name string) bool {
	for _, s := range aggregateSuffixes {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// Parse extracts benchmarks from the JSON document.
func Parse(data []byte) (Set, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	set := make(Set)
	gjson.GetBytes(data, "benchmarks").ForEach(func(_, b gjson.Result) bool {
		name := b.Get("name").String()
		if isAggregate(name) {
			return true
		}
		unit := b.Get("time_unit").String()
		if unit == "" {
			unit = "ns"
		}
		set[name] = Benchmark{Name: name, RealTime: b.Get("real_time").Float(), TimeUnit: unit}
		return true
	})
	return set, nil
}

// Load reads and parses a report file.
func Load(fs afero.Fs, path string) (Set, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read benchmark results %q", path)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse benchmark results %q", path)
	}
	return s, nil
}

// Result is the comparison of one benchmark present in both reports.
type Result struct {
	Name     string
	BaseTime float64
	PRTime   float64
	// Change is relative to the base time, 0.25 means 25% slower.
	Change   float64
	TimeUnit string
}

type Comparison struct {
	Threshold    float64
	Regressions  []Result
	Improvements []Result
	Unchanged    []Result
}

func (c Comparison) Total() int {
	return len(c.Regressions) + len(c.Improvements) + len(c.Unchanged)
}

func (c Comparison) HasRegressions() bool {
	return len(c.Regressions) > 0
}

// Compare classifies benchmarks present in both sets. Benchmarks missing from
// pr and those with a zero base time are skipped. Regressions are ordered from
// the largest slowdown and improvements from the largest speedup; unchanged
// results are ordered by name.
func Compare(base, pr Set, threshold float64) Comparison {
	c := Comparison{Threshold: threshold}
	for name, b := range base {
		p, ok := pr[name]
		if !ok || b.RealTime == 0 {
			continue
		}
		r := Result{
			Name:     name,
			BaseTime: b.RealTime,
			PRTime:   p.RealTime,
			Change:   (p.RealTime - b.RealTime) / b.RealTime,
			TimeUnit: b.TimeUnit,
		}
		switch {
		case r.Change > threshold:
			c.Regressions = append(c.Regressions, r)
		case r.Change < -threshold:
			c.Improvements = append(c.Improvements, r)
		default:
			c.Unchanged = append(c.Unchanged, r)
		}
	}
	byChange := func(a, b Result) int {
		return cmp.Or(cmp.Compare(a.Change, b.Change), strings.Compare(a.Name, b.Name))
	}
	slices.SortFunc(c.Regressions, func(a, b Result) int { return byChange(b, a) })
	slices.SortFunc(c.Improvements, byChange)
	slices.SortFunc(c.Unchanged, func(a, b Result) int { return strings.Compare(a.Name, b.Name) })
	return c
}

// FormatTime renders a time value, scaling nanoseconds up to microseconds or milliseconds.
func FormatTime(value float64, unit string) string {
	switch {
	case unit == "ns" && value >= 1_000_000:
		return fmt.Sprintf("%.2fms", value/1_000_000)
	case unit == "ns" && value >= 1_000:
		return fmt.Sprintf("%.2fus", value/1_000)
	default:
		return fmt.Sprintf("%.2f%s", value, unit)
	}
}

// Report renders the comparison as Markdown.
func Report(c Comparison) string {
	pct := c.Threshold * 100
	var sb strings.Builder
	sb.WriteString("## Performance Benchmark Report\n\n")
	sb.WriteString("### Summary\n\n")
	fmt.Fprintf(&sb, "- **Total benchmarks**: %d\n", c.Total())
	if c.HasRegressions() {
		fmt.Fprintf(&sb, "- **Regressions**: %d :x:\n", len(c.Regressions))
	} else {
		sb.WriteString("- **Regressions**: 0 :white_check_mark:\n")
	}
	fmt.Fprintf(&sb, "- **Improvements**: %d\n", len(c.Improvements))
	fmt.Fprintf(&sb, "- **Unchanged**: %d (within %.0f%% threshold)\n\n", len(c.Unchanged), pct)

	if c.HasRegressions() {
		fmt.Fprintf(&sb, "### :x: Regressions (>%.0f%% slower)\n\n", pct)
		writeTable(&sb, c.Regressions, func(r Result) string {
			return fmt.Sprintf("**+%.1f%%** :warning:", r.Change*100)
		})
	}
	if len(c.Improvements) > 0 {
		fmt.Fprintf(&sb, "### :rocket: Improvements (>%.0f%% faster)\n\n", pct)
		writeTable(&sb, c.Improvements, func(r Result) string {
			return fmt.Sprintf("**%.1f%%** :chart_with_downwards_trend:", r.Change*100)
		})
	}

	sb.WriteString("---\n")
	if c.HasRegressions() {
		sb.WriteString(":x: **Status**: Performance regressions detected. Please review the changes above.")
	} else {
		sb.WriteString(":white_check_mark: **Status**: No significant performance regressions detected.")
	}
	return sb.String()
}

func writeTable(sb *strings.Builder, rs []Result, change func(Result) string) {
	sb.WriteString("| Benchmark | Base | PR | Change |\n")
	sb.WriteString("|-----------|------|-----|--------|\n")
	for _, r := range rs {
		fmt.Fprintf(sb, "| `%s` | %s | %s | %s |\n",
			r.Name, FormatTime(r.BaseTime, r.TimeUnit), FormatTime(r.PRTime, r.TimeUnit), change(r))
	}
	sb.WriteString("\n")
}
