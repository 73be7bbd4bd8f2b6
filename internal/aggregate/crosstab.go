package aggregate

import (
	"sort"

	"github.com/roach88/facultymetrics/internal/roster"
)

// CrossTabCell counts the records sharing one (domain, rank) pair.
type CrossTabCell struct {
	Domain string `json:"domain"`
	Rank   string `json:"rank"`
	Count  int    `json:"count"`
}

// CrossTabDomainRank counts records per (domain, rank) pair. Only pairs that
// occur are returned, ordered by domain then rank. Use Pivot for a dense
// matrix.
func CrossTabDomainRank(records []roster.FacultyRecord) []CrossTabCell {
	type pair struct{ domain, rank string }
	counts := make(map[pair]int)
	for _, r := range records {
		counts[pair{r.Domain, r.Rank}]++
	}

	out := make([]CrossTabCell, 0, len(counts))
	for p, n := range counts {
		out = append(out, CrossTabCell{Domain: p.domain, Rank: p.rank, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Domain != out[j].Domain {
			return out[i].Domain < out[j].Domain
		}
		return out[i].Rank < out[j].Rank
	})
	return out
}

// PivotTable is a dense domain x rank count matrix.
// Counts[i][j] is the count for Domains[i] and Ranks[j].
type PivotTable struct {
	Domains []string `json:"domains"`
	Ranks   []string `json:"ranks"`
	Counts  [][]int  `json:"counts"`
}

// Pivot expands sparse cells into a dense matrix, filling absent pairs with
// zero. Domains and ranks are the sorted distinct values found in cells.
func Pivot(cells []CrossTabCell) PivotTable {
	domainIdx := make(map[string]int)
	rankIdx := make(map[string]int)
	t := PivotTable{Domains: []string{}, Ranks: []string{}}
	for _, c := range cells {
		if _, ok := domainIdx[c.Domain]; !ok {
			domainIdx[c.Domain] = 0
			t.Domains = append(t.Domains, c.Domain)
		}
		if _, ok := rankIdx[c.Rank]; !ok {
			rankIdx[c.Rank] = 0
			t.Ranks = append(t.Ranks, c.Rank)
		}
	}
	sort.Strings(t.Domains)
	sort.Strings(t.Ranks)
	for i, d := range t.Domains {
		domainIdx[d] = i
	}
	for j, r := range t.Ranks {
		rankIdx[r] = j
	}

	t.Counts = make([][]int, len(t.Domains))
	for i := range t.Counts {
		t.Counts[i] = make([]int, len(t.Ranks))
	}
	for _, c := range cells {
		t.Counts[domainIdx[c.Domain]][rankIdx[c.Rank]] += c.Count
	}
	return t
}

// Count returns the cell for (domain, rank), zero when either is absent.
func (t PivotTable) Count(domain, rank string) int {
	i := sort.SearchStrings(t.Domains, domain)
	if i == len(t.Domains) || t.Domains[i] != domain {
		return 0
	}
	j := sort.SearchStrings(t.Ranks, rank)
	if j == len(t.Ranks) || t.Ranks[j] != rank {
		return 0
	}
	return t.Counts[i][j]
}
