package export

import "time"

// Dataset labels used in export file names.
const (
	LabelFiltered = "ece_research_data"
	LabelComplete = "ece_complete_data"
)

// FileName returns "<label>_<YYYYMMDD>" for the calendar day of t.
func FileName(label string, t time.Time) string {
	return label + "_" + t.Format("20060102")
}

// CSVFileName is FileName with a ".csv" extension.
func CSVFileName(label string, t time.Time) string {
	return FileName(label, t) + ".csv"
}

// Suffixes appended to a dataset label to name its exports.
const (
	filteredSuffix = "_research_data"
	completeSuffix = "_complete_data"
)

// FilteredLabel names the export of a filtered view of dataset.
// FilteredLabel("ece") == LabelFiltered.
func FilteredLabel(dataset string) string {
	return dataset + filteredSuffix
}

// CompleteLabel names the export of the whole of dataset.
// CompleteLabel("ece") == LabelComplete.
func CompleteLabel(dataset string) string {
	return dataset + completeSuffix
}
