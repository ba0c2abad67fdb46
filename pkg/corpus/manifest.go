package corpus

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ManifestFileName is the name of the manifest written into the corpus root.
const ManifestFileName = "MANIFEST.json"

// Entry describes one generated file. Path is relative to the corpus root and
// uses forward slashes.
type Entry struct {
	Target Target `json:"target"`
	Name   string `json:"name"`
	Path   string `json:"path"`
	Size   int    `json:"size"`
	Hash   string `json:"xxhash64"`
	Expect Expect `json:"expect"`
}

type Manifest struct {
	Format  Format  `json:"format"`
	Entries []Entry `json:"entries"`
}

func hashOf(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

func newEntry(c Case, path string, content []byte) Entry {
	return Entry{
		Target: c.Target,
		Name:   c.Name,
		Path:   filepath.ToSlash(path),
		Size:   len(content),
		Hash:   hashOf(content),
		Expect: c.Expect,
	}
}

func (m *Manifest) sort() {
	sort.Slice(m.Entries, func(i, j int) bool {
		return m.Entries[i].Path < m.Entries[j].Path
	})
}

// WriteManifest stores the manifest as indented JSON in the corpus root.
func WriteManifest(fs afero.Fs, root string, m Manifest) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal manifest")
	}
	p := filepath.Join(root, ManifestFileName)
	if err := afero.WriteFile(fs, p, append(b, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write manifest %q", p)
	}
	return nil
}

// ReadManifest loads the manifest from the corpus root.
func ReadManifest(fs afero.Fs, root string) (Manifest, error) {
	p := filepath.Join(root, ManifestFileName)
	b, err := afero.ReadFile(fs, p)
	if err != nil {
		return Manifest{}, errors.Wrapf(err, "failed to read manifest %q", p)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return Manifest{}, errors.Wrapf(err, "failed to parse manifest %q", p)
	}
	return m, nil
}

// Drift is a difference between a manifest entry and the file on disk.
type Drift struct {
	Entry  Entry
	Reason string
}

func (d Drift) String() string {
	return fmt.Sprintf("%s: %s", d.Entry.Path, d.Reason)
}

// Verify re-reads every file listed in the manifest and reports missing or
// changed files. Errors other than a missing file abort the verification.
func Verify(fs afero.Fs, root string, m Manifest) ([]Drift, error) {
	var drifts []Drift
	for _, e := range m.Entries {
		p := filepath.Join(root, filepath.FromSlash(e.Path))
		ok, err := afero.Exists(fs, p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat %q", p)
		}
		if !ok {
			drifts = append(drifts, Drift{Entry: e, Reason: "missing"})
			continue
		}
		b, err := afero.ReadFile(fs, p)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %q", p)
		}
		switch {
		case len(b) != e.Size:
			drifts = append(drifts, Drift{Entry: e, Reason: fmt.Sprintf("size %d, expected %d", len(b), e.Size)})
		case hashOf(b) != e.Hash:
			drifts = append(drifts, Drift{Entry: e, Reason: fmt.Sprintf("hash %s, expected %s", hashOf(b), e.Hash)})
		}
	}
	return drifts, nil
}
