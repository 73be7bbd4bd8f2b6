package aggregate

import (
	"sort"

	"github.com/roach88/facultymetrics/internal/roster"
)

// DomainTotal is the publication total of one domain.
type DomainTotal struct {
	Domain            string `json:"domain"`
	TotalPublications int    `json:"total_publications"`
}

// SumByDomain totals publications per domain, largest first, ties by
// domain ascending.
func SumByDomain(records []roster.FacultyRecord) []DomainTotal {
	order, sums := groupSum(records,
		func(r roster.FacultyRecord) string { return r.Domain },
		func(r roster.FacultyRecord) int { return r.TotalPublications() },
	)
	out := make([]DomainTotal, 0, len(order))
	for _, d := range order {
		out = append(out, DomainTotal{Domain: d, TotalPublications: sums[d]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPublications != out[j].TotalPublications {
			return out[i].TotalPublications > out[j].TotalPublications
		}
		return out[i].Domain < out[j].Domain
	})
	return out
}

// RankCount is the number of faculty holding one rank.
type RankCount struct {
	Rank  string `json:"rank"`
	Count int    `json:"count"`
}

// CountByRank counts records per rank, most common first, ties by rank
// ascending.
func CountByRank(records []roster.FacultyRecord) []RankCount {
	order, counts := groupSum(records,
		func(r roster.FacultyRecord) string { return r.Rank },
		func(roster.FacultyRecord) int { return 1 },
	)
	out := make([]RankCount, 0, len(order))
	for _, rank := range order {
		out = append(out, RankCount{Rank: rank, Count: counts[rank]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Rank < out[j].Rank
	})
	return out
}

// FacultyProjects is the project tally of one faculty name.
type FacultyProjects struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Ongoing   int    `json:"ongoing"`
}

// Total is completed + ongoing.
func (f FacultyProjects) Total() int {
	return f.Completed + f.Ongoing
}

// ProjectsByFaculty tallies completed and ongoing projects per faculty name
// and returns the top n by completed projects, ties by name ascending.
//
// Records are grouped by name, not sequence number: two people sharing a
// name are reported as one. Names with no projects at all are dropped.
// n <= 0 returns an empty slice.
func ProjectsByFaculty(records []roster.FacultyRecord, n int) []FacultyProjects {
	if n <= 0 {
		return []FacultyProjects{}
	}
	byName := make(map[string]*FacultyProjects)
	for _, r := range records {
		p, ok := byName[r.Name]
		if !ok {
			p = &FacultyProjects{Name: r.Name}
			byName[r.Name] = p
		}
		p.Completed += r.ProjectsCompleted
		p.Ongoing += r.ProjectsOngoing
	}

	out := make([]FacultyProjects, 0, len(byName))
	for _, p := range byName {
		if p.Total() > 0 {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return out[i].Completed > out[j].Completed
		}
		return out[i].Name < out[j].Name
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// groupSum partitions records by key and sums value per partition.
// order lists keys in first-seen order.
func groupSum(records []roster.FacultyRecord, key func(roster.FacultyRecord) string, value func(roster.FacultyRecord) int) ([]string, map[string]int) {
	sums := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, exists := sums[k]; !exists {
			order = append(order, k)
		}
		sums[k] += value(r)
	}
	return order, sums
}
