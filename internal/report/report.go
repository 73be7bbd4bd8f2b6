// Package report bundles every aggregate of a filtered roster view into one
// value, the data behind a dashboard page or a `report` command.
package report

import (
	"github.com/roach88/facultymetrics/internal/aggregate"
	"github.com/roach88/facultymetrics/internal/filter"
	"github.com/roach88/facultymetrics/internal/roster"
)

// Default limits for the ranked sections.
const (
	DefaultTopN      = 15
	DefaultProjectsN = 15
)

// Options controls the size of the ranked sections.
type Options struct {
	TopN      int
	ProjectsN int
}

// DefaultOptions returns the limits used by the dashboard charts.
func DefaultOptions() Options {
	return Options{TopN: DefaultTopN, ProjectsN: DefaultProjectsN}
}

// Report is every summary of one view.
type Report struct {
	Criteria         filter.Criteria             `json:"criteria"`
	RosterSize       int                         `json:"roster_size"`
	Bounds           roster.Bounds               `json:"bounds"`
	KPIs             aggregate.KPIs              `json:"kpis"`
	Top              []roster.FacultyRecord      `json:"top"`
	Domains          []aggregate.DomainTotal     `json:"domains"`
	DomainStats      []aggregate.DomainStats     `json:"domain_stats"`
	Projects         []aggregate.FacultyProjects `json:"projects"`
	Ranks            []aggregate.RankCount       `json:"ranks"`
	RankStats        []aggregate.RankStats       `json:"rank_stats"`
	PublicationTypes aggregate.PublicationTypes  `json:"publication_types"`
	CrossTab         []aggregate.CrossTabCell    `json:"crosstab"`
	Pivot            aggregate.PivotTable        `json:"pivot"`
}

// Build filters s with c and summarises the resulting view. Bounds and
// RosterSize describe the whole roster, everything else the view.
func Build(s *roster.Store, c filter.Criteria, opts Options) Report {
	return FromView(s, c, filter.Apply(s.All(), c), opts)
}

// FromView summarises an already filtered view, for callers that selected
// it elsewhere (for example through a SQL query).
func FromView(s *roster.Store, c filter.Criteria, view []roster.FacultyRecord, opts Options) Report {
	cells := aggregate.CrossTabDomainRank(view)
	return Report{
		Criteria:         c,
		RosterSize:       s.Len(),
		Bounds:           s.Bounds(),
		KPIs:             aggregate.ComputeKPIs(view),
		Top:              aggregate.TopByTotalPublications(view, opts.TopN),
		Domains:          aggregate.SumByDomain(view),
		DomainStats:      aggregate.DomainPublicationStats(view),
		Projects:         aggregate.ProjectsByFaculty(view, opts.ProjectsN),
		Ranks:            aggregate.CountByRank(view),
		RankStats:        aggregate.RankProjectStats(view),
		PublicationTypes: aggregate.SumByPublicationType(view),
		CrossTab:         cells,
		Pivot:            aggregate.Pivot(cells),
	}
}
