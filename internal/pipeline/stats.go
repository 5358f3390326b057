package pipeline

// RunStats tracks aggregate counters across a batch run. Every processed
// file increments exactly one of Extracted or Failed, and both produce a
// CSV row.
type RunStats struct {
	Total     int // Eligible files discovered.
	Current   int // 1-based index of the file being (or last) processed.
	Extracted int // Files whose probe succeeded.
	Failed    int // Files that fell back to a null-field row.
}

// Rows returns the number of data rows written so far.
func (s *RunStats) Rows() int {
	return s.Extracted + s.Failed
}
