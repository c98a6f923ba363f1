package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Mode selects the output shape of a source loader.
type Mode int

const (
	// Standalone keeps the source's native ids unprefixed, for examining a
	// single vendor's data on its own.
	Standalone Mode = iota
	// Combined namespaces ids and group ids with the source tag so the
	// records can be merged into the global catalog.
	Combined
)

// Source loads one vendor's data file, normalized to the common record
// schema. Columns that are not part of the common schema are dropped, and
// derived quantities (e.g. unit weight from a measured sample) are converted
// before records are emitted.
type Source interface {
	// Name is the human-readable vendor name, used in diagnostics.
	Name() string
	// Tag is the short id-namespace prefix applied in Combined mode.
	// The primary vendor's tag may be empty.
	Tag() string
	// Load reads and normalizes the source data.
	Load(mode Mode) ([]Record, error)
}

// SourceOptions configures a vendor source.
type SourceOptions struct {
	// FS is the filesystem the data file is read from.
	// Defaults to the embedded data directory.
	FS fs.FS
	// Path is the data file path within FS. Files ending in .gz are
	// transparently decompressed. Defaults to the vendor's embedded file.
	Path string
	// Logger receives per-row diagnostics (dropped duplicates, rejected
	// rows). Defaults to slog.Default().
	Logger *slog.Logger
}

func applySourceOptions(opts SourceOptions, optFns []func(o *SourceOptions)) SourceOptions {
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.FS == nil {
		opts.FS = dataFS
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

// table is a parsed delimited file: a header index and the data rows.
type table struct {
	columns map[string]int
	rows    [][]string
}

// get returns the named cell of a row, trimmed.
func (t *table) get(row []string, name string) (string, bool) {
	i, ok := t.columns[name]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

// readTable reads a UTF-8 delimited file with a header row. Files ending in
// .gz are decompressed on the fly.
func readTable(fsys fs.FS, path string) (*table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.TrimSpace(name)] = i
	}
	return &table{columns: columns, rows: records[1:]}, nil
}

// parsePositiveFloat parses a strictly positive float cell.
func parsePositiveFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !(v > 0) {
		return 0, fmt.Errorf("value %v is not positive", v)
	}
	return v, nil
}
