package aggregate

import "github.com/roach88/facultymetrics/internal/roster"

// KPIs are the headline numbers for a view.
type KPIs struct {
	Faculty                int     `json:"faculty"`
	JournalPublications    int     `json:"journal_publications"`
	ConferencePublications int     `json:"conference_publications"`
	BookChapters           int     `json:"book_chapters"`
	TotalPublications      int     `json:"total_publications"`
	ProjectsCompleted      int     `json:"projects_completed"`
	ProjectsOngoing        int     `json:"projects_ongoing"`
	TotalProjects          int     `json:"total_projects"`
	MeanPublications       float64 `json:"mean_publications"`
	DistinctDomains        int     `json:"distinct_domains"`
}

// ComputeKPIs sums every count over records. MeanPublications is the mean
// of TotalPublications and is 0 for an empty view.
func ComputeKPIs(records []roster.FacultyRecord) KPIs {
	var k KPIs
	domains := make(map[string]struct{})
	for _, r := range records {
		k.Faculty++
		k.JournalPublications += r.JournalPublications
		k.ConferencePublications += r.ConferencePublications
		k.BookChapters += r.BookChapters
		k.TotalPublications += r.TotalPublications()
		k.ProjectsCompleted += r.ProjectsCompleted
		k.ProjectsOngoing += r.ProjectsOngoing
		k.TotalProjects += r.TotalProjects()
		domains[r.Domain] = struct{}{}
	}
	k.DistinctDomains = len(domains)
	if k.Faculty > 0 {
		k.MeanPublications = float64(k.TotalPublications) / float64(k.Faculty)
	}
	return k
}

// PublicationTypes splits publications by kind.
type PublicationTypes struct {
	Journal      int `json:"journal"`
	Conference   int `json:"conference"`
	BookChapters int `json:"book_chapters"`
}

// Total is the sum of the three kinds.
func (p PublicationTypes) Total() int {
	return p.Journal + p.Conference + p.BookChapters
}

// SumByPublicationType totals journal, conference and book chapter counts.
func SumByPublicationType(records []roster.FacultyRecord) PublicationTypes {
	var p PublicationTypes
	for _, r := range records {
		p.Journal += r.JournalPublications
		p.Conference += r.ConferencePublications
		p.BookChapters += r.BookChapters
	}
	return p
}
