package resolve

// Entry is one canonical identity in the match catalog.
type Entry struct {
	ID   int64
	Name string

	normalized string
}

// Catalog is an immutable snapshot of the canonical identity set, loaded
// once per pipeline run. It is never mutated after construction, so
// concurrent matchers need no synchronization.
type Catalog struct {
	entries []Entry
	exact   map[string]int64
}

// NewCatalog builds a catalog from canonical entries. On duplicate
// normalized names the first occurrence wins, matching the source data's
// stable ordering.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		exact:   make(map[string]int64, len(entries)),
	}

	for _, e := range entries {
		norm := NormalizeName(e.Name)
		if norm == "" {
			continue
		}
		e.normalized = norm
		c.entries = append(c.entries, e)
		if _, seen := c.exact[norm]; !seen {
			c.exact[norm] = e.ID
		}
	}

	return c
}

// Len returns the number of usable entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
