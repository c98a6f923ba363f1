package catalog

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// stubSource emits fixed records, for exercising merge invariants directly.
type stubSource struct {
	name    string
	tag     string
	records []Record
	loads   int
}

func (s *stubSource) Name() string { return s.name }
func (s *stubSource) Tag() string  { return s.tag }
func (s *stubSource) Load(Mode) ([]Record, error) {
	s.loads++
	return s.records, nil
}

func buildDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Build(DefaultSources(func(o *SourceOptions) {
		o.Logger = discard()
	}), discard())
	require.NoError(t, err)
	return c
}

func TestBuildDefaultSources(t *testing.T) {
	c := buildDefault(t)
	require.Greater(t, c.Len(), 50)

	// No two rows share a product id.
	seen := make(map[string]bool)
	for rec := range c.All() {
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true

		assert.Positive(t, rec.Gauge, "%s gauge", rec.ID)
		assert.Positive(t, rec.UW, "%s uw", rec.ID)
		assert.NotEmpty(t, rec.GroupID, "%s group_id", rec.ID)
	}

	assert.Subset(t, c.GroupIDs(), []string{"PL", "PB", "NYL", "NYLW", "SJP", "WF"})
}

func TestSourceGroupNamespacesDisjoint(t *testing.T) {
	// The per-source group-id sets must not intersect.
	groupSets := make(map[string]map[string]bool)
	for _, src := range DefaultSources(func(o *SourceOptions) { o.Logger = discard() }) {
		records, err := src.Load(Combined)
		require.NoError(t, err)
		set := make(map[string]bool)
		for _, rec := range records {
			set[rec.GroupID] = true
		}
		groupSets[src.Name()] = set
	}

	for a, setA := range groupSets {
		for b, setB := range groupSets {
			if a == b {
				continue
			}
			for id := range setA {
				assert.False(t, setB[id], "group id %s found in both %s and %s", id, a, b)
			}
		}
	}
}

func TestStringjoyIDStructure(t *testing.T) {
	src := NewStringjoy(func(o *SourceOptions) { o.Logger = discard() })
	records, err := src.Load(Combined)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	for _, rec := range records {
		assert.True(t, strings.HasPrefix(rec.GroupID, "SJ"), "group id %s", rec.GroupID)
		assert.Contains(t, []int{3, 4}, len(rec.GroupID), "group id %s", rec.GroupID)
		require.True(t, strings.HasPrefix(rec.ID, rec.GroupID), "id %s", rec.ID)

		// The id suffix encodes the gauge without its leading dot.
		var encoded float64
		_, err := fmt.Sscanf("."+rec.ID[len(rec.GroupID):], "%f", &encoded)
		require.NoError(t, err)
		assert.Equal(t, rec.Gauge, encoded, "id %s", rec.ID)
	}
}

func TestStringjoyStandaloneMode(t *testing.T) {
	src := NewStringjoy(func(o *SourceOptions) { o.Logger = discard() })
	records, err := src.Load(Standalone)
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, "P010", records[0].ID)
	assert.Equal(t, "P", records[0].GroupID)
}

func TestWorthConversion(t *testing.T) {
	src := NewWorth(func(o *SourceOptions) { o.Logger = discard() })
	records, err := src.Load(Combined)
	require.NoError(t, err)
	require.NotEmpty(t, records)

	// First row: 0.0572 cm diameter, 0.481 g over a 100 cm sample.
	aa := records[0]
	assert.Equal(t, "WAa", aa.ID)
	assert.Equal(t, "WF", aa.GroupID)
	assert.InEpsilon(t, 0.022520, aa.Gauge, 1e-4)
	assert.InEpsilon(t, 2.6935e-5, aa.UW, 1e-4)
}

func TestBuildDuplicateID(t *testing.T) {
	_, err := Build([]Source{
		&stubSource{name: "alpha", records: []Record{
			{ID: "X010", Group: "Alpha", GroupID: "A", Gauge: 0.010, UW: 2e-5},
		}},
		&stubSource{name: "beta", records: []Record{
			{ID: "X010", Group: "Beta", GroupID: "B", Gauge: 0.011, UW: 3e-5},
		}},
	}, discard())

	var dupErr *ErrDuplicateID
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "X010", dupErr.ID)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, dupErr.Sources)
}

func TestBuildGroupCollision(t *testing.T) {
	_, err := Build([]Source{
		&stubSource{name: "alpha", records: []Record{
			{ID: "A010", Group: "Alpha", GroupID: "PL", Gauge: 0.010, UW: 2e-5},
		}},
		&stubSource{name: "beta", records: []Record{
			{ID: "B011", Group: "Beta", GroupID: "PL", Gauge: 0.011, UW: 3e-5},
		}},
	}, discard())

	var colErr *ErrGroupCollision
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, []string{"PL"}, colErr.GroupIDs)
}

func TestDaddarioDuplicateRows(t *testing.T) {
	fsys := fstest.MapFS{
		"dup.csv": &fstest.MapFile{Data: []byte(
			"id,category,group,group_id,gauge,uw,notes\n" +
				"PL010,Guitar,Plain Steel,PL,0.010,0.00002215,\n" +
				"PL010,Guitar,Plain Steel,PL,0.010,0.00002215,\n" + // exact duplicate
				"PL011,Guitar,Plain Steel,PL,0.011,0.00002680,\n" +
				"PL011,Guitar,Plain Steel,PL,0.011,0.00009999,\n", // conflicting duplicate
		)},
	}
	src := NewDaddario(func(o *SourceOptions) {
		o.FS = fsys
		o.Path = "dup.csv"
		o.Logger = discard()
	})

	records, err := src.Load(Combined)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// The first variant of a conflicting id wins; nothing is averaged.
	assert.Equal(t, 0.00002680, records[1].UW)
}

func TestStringjoyCodeGaugeMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"sj.csv": &fstest.MapFile{Data: []byte(
			"code,family,gauge,uw\n" +
				"P011,Plain Steel,0.011,0.00002681\n" +
				"P012,Plain Steel,0.013,0.00003745\n", // code says .012, gauge says .013
		)},
	}
	src := NewStringjoy(func(o *SourceOptions) {
		o.FS = fsys
		o.Path = "sj.csv"
		o.Logger = discard()
	})

	records, err := src.Load(Combined)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "SJP011", records[0].ID)
}

func TestBadRows(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative gauge", "id,category,group,group_id,gauge,uw,notes\nPL010,G,Plain,PL,-0.010,0.00002215,\n"},
		{"zero uw", "id,category,group,group_id,gauge,uw,notes\nPL010,G,Plain,PL,0.010,0,\n"},
		{"missing id", "id,category,group,group_id,gauge,uw,notes\n,G,Plain,PL,0.010,0.00002215,\n"},
		{"non-numeric uw", "id,category,group,group_id,gauge,uw,notes\nPL010,G,Plain,PL,0.010,heavy,\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.csv": &fstest.MapFile{Data: []byte(tt.data)}}
			src := NewDaddario(func(o *SourceOptions) {
				o.FS = fsys
				o.Path = "bad.csv"
				o.Logger = discard()
			})
			_, err := src.Load(Combined)
			var badErr *ErrBadRow
			require.ErrorAs(t, err, &badErr)
			assert.Equal(t, 2, badErr.Line)
		})
	}
}

func TestGroupRows(t *testing.T) {
	c := buildDefault(t)

	rows, err := c.GroupRows("PL", "PB")
	require.NoError(t, err)

	var n int
	for row := range rows.Iterator() {
		rec := c.Record(row)
		assert.Contains(t, []string{"PL", "PB"}, rec.GroupID)
		n++
	}
	assert.Equal(t, int(rows.Cardinality()), n)
	assert.Greater(t, n, 30)
}

func TestGroupRowsUnknown(t *testing.T) {
	c := buildDefault(t)

	_, err := c.GroupRows("PL", "XX", "YY")
	var unkErr *ErrUnknownGroup
	require.ErrorAs(t, err, &unkErr)
	assert.Equal(t, []string{"XX", "YY"}, unkErr.GroupIDs)
	assert.Equal(t, c.GroupIDs(), unkErr.Known)
}

func TestLookup(t *testing.T) {
	c := buildDefault(t)

	rec, err := c.Lookup("PL", 0.011)
	require.NoError(t, err)
	assert.Equal(t, "PL011", rec.ID)
	assert.Equal(t, 0.00002680, rec.UW)
}

func TestLookupGaugeNotFound(t *testing.T) {
	c := buildDefault(t)

	_, err := c.Lookup("PL", 0.0425)
	var nfErr *ErrGaugeNotFound
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "PL", nfErr.GroupID)
	assert.Contains(t, nfErr.Available, 0.011)
	assert.Contains(t, err.Error(), "available PL gauges")
}

func TestLookupAmbiguous(t *testing.T) {
	c, err := Build([]Source{
		&stubSource{name: "alpha", records: []Record{
			{ID: "A010", Group: "Alpha", GroupID: "A", Gauge: 0.010, UW: 2e-5},
			{ID: "A010B", Group: "Alpha", GroupID: "A", Gauge: 0.010, UW: 2.1e-5},
		}},
	}, discard())
	require.NoError(t, err)

	_, err = c.Lookup("A", 0.010)
	var ambErr *ErrAmbiguousGauge
	require.ErrorAs(t, err, &ambErr)
	assert.ElementsMatch(t, []string{"A010", "A010B"}, ambErr.IDs)
}

func TestGauges(t *testing.T) {
	c := buildDefault(t)

	gauges := c.Gauges("NYL")
	require.NotEmpty(t, gauges)
	assert.Contains(t, gauges, 0.031)
	assert.NotContains(t, gauges, 0.030) // no NYL030 in the line
}
