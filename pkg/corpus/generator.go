package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Format is the on-disk layout of seed files.
type Format int

const (
	// FormatRaw writes the case bytes as is, the layout libFuzzer style harnesses read.
	FormatRaw Format = iota
	// FormatGoFuzz writes Go native fuzzing corpus files, one directory per fuzz test.
	FormatGoFuzz
)

var formatNames = []string{"raw", "gofuzz"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

func ParseFormat(s string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, s) {
			return Format(i), nil
		}
	}
	return 0, errors.Errorf("unsupported format %q, expected one of %s", s, strings.Join(formatNames, ", "))
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

const goFuzzHeader = "go test fuzz v1\n"

// Generator writes cases into a corpus directory.
type Generator struct {
	fs     afero.Fs
	root   string
	format Format
	logger *zap.Logger
}

type Option func(*Generator)

func WithFormat(f Format) Option {
	return func(g *Generator) {
		g.format = f
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

func NewGenerator(fs afero.Fs, root string, opts ...Option) *Generator {
	g := &Generator{
		fs:     fs,
		root:   root,
		format: FormatRaw,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// RelPath returns the path of the case file relative to the corpus root.
func (g *Generator) RelPath(c Case) string {
	dir := c.Target.Dir()
	if g.format == FormatGoFuzz {
		dir = c.Target.FuzzFunc()
	}
	return filepath.Join(dir, c.Name)
}

// Content returns the file content for the case in the generator's format.
func (g *Generator) Content(c Case) []byte {
	if g.format == FormatGoFuzz {
		return fmt.Appendf([]byte(goFuzzHeader), "[]byte(%q)\n", c.Data)
	}
	return append([]byte{}, c.Data...)
}

// Generate writes one file per case and returns the manifest of written files.
// Files are independent and are written concurrently. Any failure aborts the
// run: a partially written corpus is reported as an error.
func (g *Generator) Generate(ctx context.Context, cases []Case) (Manifest, error) {
	seen := make(map[string]struct{}, len(cases))
	dirs := make(map[string]int)
	for _, c := range cases {
		if c.Name == "" || strings.ContainsAny(c.Name, `/\`) {
			return Manifest{}, errors.Errorf("invalid case name %q", c.Name)
		}
		p := g.RelPath(c)
		if _, ok := seen[p]; ok {
			return Manifest{}, errors.Errorf("duplicate case %q", p)
		}
		seen[p] = struct{}{}
		dirs[filepath.Dir(p)]++
	}
	for d := range dirs {
		full := filepath.Join(g.root, d)
		if err := g.fs.MkdirAll(full, 0o755); err != nil {
			return Manifest{}, errors.Wrapf(err, "failed to create directory %q", full)
		}
	}

	entries := make([]Entry, len(cases))
	eg, ctx := errgroup.WithContext(ctx)
	for i, c := range cases {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rel := g.RelPath(c)
			content := g.Content(c)
			full := filepath.Join(g.root, rel)
			if err := afero.WriteFile(g.fs, full, content, 0o644); err != nil {
				return errors.Wrapf(err, "failed to write case %q", full)
			}
			entries[i] = newEntry(c, rel, content)
			g.logger.Debug("Seed file written", zap.String("path", full), zap.Int("size", len(content)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Manifest{}, err
	}
	for d, n := range dirs {
		g.logger.Info(fmt.Sprintf("Generated %d seed files in %s", n, filepath.Join(g.root, d)))
	}
	m := Manifest{Format: g.format, Entries: entries}
	m.sort()
	return m, nil
}

// Build returns the manifest Generate would produce without writing anything.
func (g *Generator) Build(cases []Case) Manifest {
	entries := make([]Entry, len(cases))
	for i, c := range cases {
		entries[i] = newEntry(c, g.RelPath(c), g.Content(c))
	}
	m := Manifest{Format: g.format, Entries: entries}
	m.sort()
	return m
}
