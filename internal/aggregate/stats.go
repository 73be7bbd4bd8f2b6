package aggregate

import (
	"sort"

	"github.com/roach88/facultymetrics/internal/roster"
)

// DomainStats breaks down one domain's publications by kind.
type DomainStats struct {
	Domain            string `json:"domain"`
	Journal           int    `json:"journal"`
	Conference        int    `json:"conference"`
	BookChapters      int    `json:"book_chapters"`
	TotalPublications int    `json:"total_publications"`
}

// DomainPublicationStats sums each publication kind per domain, ordered by
// total descending, ties by domain ascending.
func DomainPublicationStats(records []roster.FacultyRecord) []DomainStats {
	byDomain := make(map[string]*DomainStats)
	for _, r := range records {
		s, ok := byDomain[r.Domain]
		if !ok {
			s = &DomainStats{Domain: r.Domain}
			byDomain[r.Domain] = s
		}
		s.Journal += r.JournalPublications
		s.Conference += r.ConferencePublications
		s.BookChapters += r.BookChapters
		s.TotalPublications += r.TotalPublications()
	}

	out := make([]DomainStats, 0, len(byDomain))
	for _, s := range byDomain {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPublications != out[j].TotalPublications {
			return out[i].TotalPublications > out[j].TotalPublications
		}
		return out[i].Domain < out[j].Domain
	})
	return out
}

// RankStats is the project tally of one rank.
type RankStats struct {
	Rank          string `json:"rank"`
	Completed     int    `json:"completed"`
	Ongoing       int    `json:"ongoing"`
	TotalProjects int    `json:"total_projects"`
}

// RankProjectStats sums projects per rank, ordered by total projects
// descending, ties by rank ascending.
func RankProjectStats(records []roster.FacultyRecord) []RankStats {
	byRank := make(map[string]*RankStats)
	for _, r := range records {
		s, ok := byRank[r.Rank]
		if !ok {
			s = &RankStats{Rank: r.Rank}
			byRank[r.Rank] = s
		}
		s.Completed += r.ProjectsCompleted
		s.Ongoing += r.ProjectsOngoing
		s.TotalProjects += r.TotalProjects()
	}

	out := make([]RankStats, 0, len(byRank))
	for _, s := range byRank {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalProjects != out[j].TotalProjects {
			return out[i].TotalProjects > out[j].TotalProjects
		}
		return out[i].Rank < out[j].Rank
	})
	return out
}
