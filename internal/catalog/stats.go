package catalog

// Summarize derives collection-wide statistics from the kit set. An empty
// kit set is the well-defined base case, not an error: every vocabulary
// entry is present in the coverage map with a count of 0 and the average
// completeness is 0.
func Summarize(kits []Kit, vocabulary []string) Statistics {
	s := Statistics{InstrumentCoverage: make(map[string]int, len(vocabulary))}
	for _, tag := range vocabulary {
		s.InstrumentCoverage[tag] = 0
	}

	var sum float64
	for _, k := range kits {
		s.TotalFiles += len(k.AvailableInstruments)
		for _, tag := range k.AvailableInstruments {
			s.InstrumentCoverage[tag]++
		}
		if k.Completeness == 100 {
			s.CompleteSoundkits++
		}
		sum += k.Completeness
	}
	if len(kits) > 0 {
		s.AverageCompleteness = sum / float64(len(kits))
	}
	return s
}
