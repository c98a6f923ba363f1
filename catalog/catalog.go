package catalog

import (
	"iter"
	"log/slog"
	"sort"
)

// Record is one row of the merged catalog: a purchasable string.
type Record struct {
	// ID is the globally unique product id, namespaced by source.
	ID string
	// Group is the human-readable label for GroupID.
	Group string
	// GroupID identifies a family of strings sharing manufacturer,
	// material, and construction. Globally unique across sources.
	GroupID string
	// Gauge is the string diameter in inches.
	Gauge float64
	// UW is the unit weight (mass per unit length) in lbm/in.
	UW float64
}

type group struct {
	label string
	rows  *RowSet
}

// Catalog is the merged, immutable string table. The group domain is closed:
// filtering on a group id outside GroupIDs is an error, never a silent empty
// result.
type Catalog struct {
	records  []Record
	byID     map[string]uint32
	groups   map[string]group
	groupIDs []string
}

// Build loads every source in Combined mode and merges the results,
// enforcing the global id and group-namespace invariants. The build is
// deterministic given identical input files.
func Build(sources []Source, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Catalog{
		byID:   make(map[string]uint32),
		groups: make(map[string]group),
	}

	idSource := make(map[string]string)
	groupSource := make(map[string]string)

	for _, src := range sources {
		records, err := src.Load(Combined)
		if err != nil {
			return nil, err
		}

		var collisions []string
		for _, rec := range records {
			if owner, ok := groupSource[rec.GroupID]; ok && owner != src.Name() {
				collisions = append(collisions, rec.GroupID)
				continue
			}
			groupSource[rec.GroupID] = src.Name()

			if owner, ok := idSource[rec.ID]; ok {
				return nil, &ErrDuplicateID{ID: rec.ID, Sources: []string{owner, src.Name()}}
			}
			idSource[rec.ID] = src.Name()

			row := uint32(len(c.records))
			c.records = append(c.records, rec)
			c.byID[rec.ID] = row

			g, ok := c.groups[rec.GroupID]
			if !ok {
				g = group{label: rec.Group, rows: NewRowSet()}
			}
			g.rows.Add(row)
			c.groups[rec.GroupID] = g
		}
		if len(collisions) > 0 {
			sort.Strings(collisions)
			return nil, &ErrGroupCollision{
				GroupIDs: dedupSorted(collisions),
				Sources:  []string{groupSource[collisions[0]], src.Name()},
			}
		}
	}

	c.groupIDs = make([]string, 0, len(c.groups))
	for id := range c.groups {
		c.groupIDs = append(c.groupIDs, id)
	}
	sort.Strings(c.groupIDs)

	logger.Debug("catalog built",
		slog.Int("records", len(c.records)), slog.Int("groups", len(c.groupIDs)))

	return c, nil
}

func dedupSorted(s []string) []string {
	out := s[:0]
	for i, v := range s {
		if i == 0 || v != s[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// Record returns the record at the given row position.
func (c *Catalog) Record(row uint32) Record { return c.records[row] }

// All iterates over the records in catalog order.
func (c *Catalog) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, rec := range c.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// GroupIDs returns the closed group-id domain, sorted.
func (c *Catalog) GroupIDs() []string {
	out := make([]string, len(c.groupIDs))
	copy(out, c.groupIDs)
	return out
}

// HasGroup reports whether the group id is in the catalog's group domain.
func (c *Catalog) HasGroup(groupID string) bool {
	_, ok := c.groups[groupID]
	return ok
}

// GroupLabel returns the human-readable label of a group id.
func (c *Catalog) GroupLabel(groupID string) (string, bool) {
	g, ok := c.groups[groupID]
	return g.label, ok
}

// GroupRows returns the union of row positions for the given group ids.
// Unknown group ids produce an ErrUnknownGroup enumerating the valid domain.
func (c *Catalog) GroupRows(groupIDs ...string) (*RowSet, error) {
	var unknown []string
	rows := NewRowSet()
	for _, id := range groupIDs {
		g, ok := c.groups[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		rows.Or(g.rows)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &ErrUnknownGroup{GroupIDs: unknown, Known: c.GroupIDs()}
	}
	return rows, nil
}

// Gauges returns the gauges of a group, in catalog order.
func (c *Catalog) Gauges(groupID string) []float64 {
	g, ok := c.groups[groupID]
	if !ok {
		return nil
	}
	gauges := make([]float64, 0, g.rows.Cardinality())
	for row := range g.rows.Iterator() {
		gauges = append(gauges, c.records[row].Gauge)
	}
	return gauges
}

// Lookup finds the single record of a group with exactly the given gauge.
// Zero matches and multiple matches are both errors; the zero-match error
// lists the group's available gauges to aid correction.
func (c *Catalog) Lookup(groupID string, gauge float64) (Record, error) {
	g, ok := c.groups[groupID]
	if !ok {
		return Record{}, &ErrUnknownGroup{GroupIDs: []string{groupID}, Known: c.GroupIDs()}
	}

	var matches []uint32
	for row := range g.rows.Iterator() {
		if c.records[row].Gauge == gauge {
			matches = append(matches, row)
		}
	}
	switch len(matches) {
	case 0:
		return Record{}, &ErrGaugeNotFound{GroupID: groupID, Gauge: gauge, Available: c.Gauges(groupID)}
	case 1:
		return c.records[matches[0]], nil
	default:
		ids := make([]string, len(matches))
		for i, row := range matches {
			ids[i] = c.records[row].ID
		}
		return Record{}, &ErrAmbiguousGauge{GroupID: groupID, Gauge: gauge, IDs: ids}
	}
}
