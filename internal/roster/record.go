package roster

import (
	"encoding/json"
	"strings"
)

// Row is a raw roster entry as supplied by a dataset source.
//
// Field tags cover every encoding a source reads rows from: yaml for YAML
// datasets, json for CUE decoding and JSON output.
type Row struct {
	Seq                    int    `yaml:"seq" json:"seq"`
	Name                   string `yaml:"name" json:"name"`
	Rank                   string `yaml:"rank" json:"rank"`
	Domain                 string `yaml:"domain" json:"domain"`
	JournalPublications    int    `yaml:"journal_publications" json:"journal_publications"`
	ConferencePublications int    `yaml:"conference_publications" json:"conference_publications"`
	BookChapters           int    `yaml:"book_chapters" json:"book_chapters"`
	ProjectsCompleted      int    `yaml:"projects_completed" json:"projects_completed"`
	ProjectsOngoing        int    `yaml:"projects_ongoing" json:"projects_ongoing"`
}

// FacultyRecord is one roster entry with its derived totals.
//
// Totals are methods over the source counts rather than stored fields.
type FacultyRecord struct {
	Row
}

// NewRecord wraps a raw row as a FacultyRecord.
func NewRecord(row Row) FacultyRecord {
	return FacultyRecord{Row: row}
}

// TotalPublications is journal + conference + book chapter counts.
func (r FacultyRecord) TotalPublications() int {
	return r.JournalPublications + r.ConferencePublications + r.BookChapters
}

// TotalProjects is completed + ongoing projects.
func (r FacultyRecord) TotalProjects() int {
	return r.ProjectsCompleted + r.ProjectsOngoing
}

// recordJSON is the wire shape of a FacultyRecord, totals included.
type recordJSON struct {
	Row
	TotalPublications int `json:"total_publications"`
	TotalProjects     int `json:"total_projects"`
}

// MarshalJSON emits the source fields followed by the derived totals.
func (r FacultyRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Row:               r.Row,
		TotalPublications: r.TotalPublications(),
		TotalProjects:     r.TotalProjects(),
	})
}

// honorific is stripped by DisplayName.
const honorific = "Dr "

// DisplayName shortens a faculty name for chart and table labels by dropping
// a leading "Dr " honorific. Names written "Dr." are left as they are.
func DisplayName(name string) string {
	return strings.TrimPrefix(name, honorific)
}
