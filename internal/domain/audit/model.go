package audit

// Coverage is a populated-over-total pair for one column.
type Coverage struct {
	Total     int64
	Populated int64
}

// Pct returns the populated percentage, 0 for an empty table.
func (c Coverage) Pct() float64 {
	if c.Total == 0 {
		return 0
	}
	return 100 * float64(c.Populated) / float64(c.Total)
}
