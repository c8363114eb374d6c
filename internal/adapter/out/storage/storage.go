package storage

// ScanParams describes one keyset scan over the tweet set, always
// ascending by id. From positions the scan at that id; SkipFrom drops
// the boundary row itself so the scan starts strictly after it. A nil
// From scans from the beginning.
type ScanParams struct {
	From     *int64
	SkipFrom bool
	Limit    int
}
