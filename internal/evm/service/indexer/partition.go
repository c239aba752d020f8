package indexer

type heightRange struct {
	start uint64
	end   uint64
}

// partition splits [start, end) into at most parts contiguous ranges of
// ceil((end-start)/parts) heights. The last range is clamped to end.
func partition(start, end uint64, parts int) []heightRange {
	if end <= start {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}

	gap := end - start
	size := (gap + uint64(parts) - 1) / uint64(parts)

	ranges := make([]heightRange, 0, parts)
	for from := start; from < end; from += size {
		to := from + size
		if to > end || to < from {
			to = end
		}
		ranges = append(ranges, heightRange{start: from, end: to})
	}
	return ranges
}
