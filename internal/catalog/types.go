package catalog

// ManifestVersion is the document format version written by Build.
const ManifestVersion = "1.0"

// Kit represents one soundkit: a named group of sample files, one per
// instrument, derived from a shared filename prefix.
type Kit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Instruments maps an instrument tag to the file's path relative to
	// the samples root, e.g. "kick/Batman Begins - kick.wav".
	Instruments map[string]string `json:"instruments"`
	// AvailableInstruments lists the tags present in Instruments, sorted
	// and deduplicated.
	AvailableInstruments []string `json:"availableInstruments"`
	// Completeness is the percentage of the vocabulary this kit covers,
	// always recomputed from AvailableInstruments.
	Completeness float64 `json:"completeness"`
}

// Statistics holds collection-wide aggregates derived from the kit set.
type Statistics struct {
	TotalFiles          int            `json:"totalFiles"`
	InstrumentCoverage  map[string]int `json:"instrumentCoverage"`
	CompleteSoundkits   int            `json:"completeSoundkits"`
	AverageCompleteness float64        `json:"averageCompleteness"`
}

// Manifest is the persisted catalog document. It is written wholesale on
// every generation run; there is no incremental update.
type Manifest struct {
	Version        string     `json:"version"`
	Generated      string     `json:"generated"`
	TotalSoundkits int        `json:"totalSoundkits"`
	Instruments    []string   `json:"instruments"`
	BaseURL        string     `json:"baseUrl,omitempty"`
	Soundkits      []Kit      `json:"soundkits"`
	Statistics     Statistics `json:"statistics"`
}
