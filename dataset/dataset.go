package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for dataset access.
var (
	// ErrNoFamilies is returned when the root holds no family directory.
	ErrNoFamilies = errors.New("dataset: no family directories")

	// ErrUnknownFamily is returned for a family that is not under the root.
	ErrUnknownFamily = errors.New("dataset: unknown family")

	// ErrIndexMissing is returned when <family>/<family>.csv does not exist.
	ErrIndexMissing = errors.New("dataset: family index missing")

	// ErrEmptyIndex is returned when an index lists no sample.
	ErrEmptyIndex = errors.New("dataset: family index is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dataset: invalid option supplied")
)

// FamilySamples holds one family's samples; IDs[i] names Sequences[i].
type FamilySamples struct {
	Family    string
	IDs       []string
	Sequences [][]string
}

// Option configures a Provider.
type Option func(*Provider)

// WithMaxSamples keeps only the first n samples of each family index.
// n == 0 keeps all; n < 0 is invalid.
func WithMaxSamples(n int) Option {
	return func(p *Provider) {
		if n < 0 {
			p.err = fmt.Errorf("%w: max samples must be non-negative (%d)", ErrOptionViolation, n)
			return
		}
		p.maxSamples = n
	}
}

// WithFamilies restricts the provider to the named families. Names that are
// not present under the root make Open fail with ErrUnknownFamily.
func WithFamilies(names ...string) Option {
	return func(p *Provider) {
		p.only = append(p.only, names...)
	}
}

// Provider serves families and samples from a dataset root.
type Provider struct {
	root       string
	families   []string
	maxSamples int
	only       []string
	err        error
}

// Open scans root for family directories (sorted by name, hidden entries skipped).
func Open(root string, opts ...Option) (*Provider, error) {
	p := &Provider{root: root}
	for _, opt := range opts {
		opt(p)
	}
	if p.err != nil {
		return nil, p.err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", root, err)
	}
	found := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			found[e.Name()] = true
			p.families = append(p.families, e.Name())
		}
	}

	if len(p.only) > 0 {
		p.families = p.families[:0]
		for _, name := range p.only {
			if !found[name] {
				return nil, fmt.Errorf("%w: %q under %q", ErrUnknownFamily, name, root)
			}
			p.families = append(p.families, name)
		}
	}
	if len(p.families) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoFamilies, root)
	}
	sort.Strings(p.families)

	return p, nil
}

// Root returns the dataset directory.
func (p *Provider) Root() string { return p.root }

// Families returns the family names in sorted order.
func (p *Provider) Families() []string {
	return append([]string(nil), p.families...)
}

// IDs reads the sample ids listed in family's index, honoring WithMaxSamples.
func (p *Provider) IDs(family string) ([]string, error) {
	path := filepath.Join(p.root, family, family+".csv")
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrIndexMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	ids, err := readIndex(f, family)
	if err != nil {
		return nil, fmt.Errorf("dataset: index %s: %w", path, err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyIndex, path)
	}
	if p.maxSamples > 0 && len(ids) > p.maxSamples {
		ids = ids[:p.maxSamples]
	}

	return ids, nil
}

// Samples reads every indexed sample of family, in index order.
func (p *Provider) Samples(family string) (*FamilySamples, error) {
	ids, err := p.IDs(family)
	if err != nil {
		return nil, err
	}

	fs := &FamilySamples{
		Family:    family,
		IDs:       ids,
		Sequences: make([][]string, len(ids)),
	}
	for i, id := range ids {
		seq, err := ReadSequence(filepath.Join(p.root, family, id+".csv"))
		if err != nil {
			return nil, err
		}
		fs.Sequences[i] = seq
	}

	return fs, nil
}

// readIndex returns the id column of an index file: the column whose header
// equals family, else the first column.
func readIndex(r io.Reader, family string) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	col := 0
	for i, h := range header {
		if strings.TrimSpace(h) == family {
			col = i
			break
		}
	}

	var ids []string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if col >= len(rec) {
			continue
		}
		if id := strings.TrimSpace(rec[col]); id != "" {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// ReadSequence reads one opcode per line from path.
func ReadSequence(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	seq, err := ParseSequence(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return seq, nil
}

// ParseSequence reads one opcode per line from r.
func ParseSequence(r io.Reader) ([]string, error) {
	var seq []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimRight(sc.Text(), "\r"))
		if line == "" {
			continue
		}
		seq = append(seq, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return seq, nil
}
