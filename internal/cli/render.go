package cli

import (
	"fmt"
	"io"

	"github.com/roach88/facultymetrics/internal/aggregate"
	"github.com/roach88/facultymetrics/internal/roster"
)

func writeRecords(w io.Writer, records []roster.FacultyRecord) {
	fmt.Fprintln(w, "=== Faculty ===")
	if len(records) == 0 {
		fmt.Fprintln(w, "  (no faculty match)")
		return
	}
	for _, r := range records {
		fmt.Fprintf(w, "  [%d] %s\n", r.Seq, r.Name)
		fmt.Fprintf(w, "       %s, %s\n", r.Rank, r.Domain)
		fmt.Fprintf(w, "       Publications: %d (journal %d, conference %d, book chapters %d)\n",
			r.TotalPublications(), r.JournalPublications, r.ConferencePublications, r.BookChapters)
		fmt.Fprintf(w, "       Projects: %d (completed %d, ongoing %d)\n",
			r.TotalProjects(), r.ProjectsCompleted, r.ProjectsOngoing)
	}
}

func writeKPIs(w io.Writer, k aggregate.KPIs) {
	fmt.Fprintln(w, "=== KPIs ===")
	fmt.Fprintf(w, "  Faculty:                 %d\n", k.Faculty)
	fmt.Fprintf(w, "  Total Publications:      %d\n", k.TotalPublications)
	fmt.Fprintf(w, "  Journal Publications:    %d\n", k.JournalPublications)
	fmt.Fprintf(w, "  Conference Publications: %d\n", k.ConferencePublications)
	fmt.Fprintf(w, "  Book Chapters:           %d\n", k.BookChapters)
	fmt.Fprintf(w, "  Projects Completed:      %d\n", k.ProjectsCompleted)
	fmt.Fprintf(w, "  Projects Ongoing:        %d\n", k.ProjectsOngoing)
	fmt.Fprintf(w, "  Total Projects:          %d\n", k.TotalProjects)
	fmt.Fprintf(w, "  Mean Publications:       %.2f\n", k.MeanPublications)
	fmt.Fprintf(w, "  Distinct Domains:        %d\n", k.DistinctDomains)
}

// writeTop and writeProjects label rows with roster.DisplayName; JSON output
// keeps full names.
func writeTop(w io.Writer, top []roster.FacultyRecord, limit int) {
	fmt.Fprintf(w, "=== Top %d by Total Publications ===\n", limit)
	if len(top) == 0 {
		fmt.Fprintln(w, "  (no faculty match)")
		return
	}
	for i, r := range top {
		fmt.Fprintf(w, "  %2d. %-28s %4d  (journal %d, conference %d, book chapters %d)\n",
			i+1, roster.DisplayName(r.Name), r.TotalPublications(), r.JournalPublications, r.ConferencePublications, r.BookChapters)
	}
}

func writeDomains(w io.Writer, domains []aggregate.DomainTotal) {
	fmt.Fprintln(w, "=== Publications by Domain ===")
	if len(domains) == 0 {
		fmt.Fprintln(w, "  (no domains)")
		return
	}
	for _, d := range domains {
		fmt.Fprintf(w, "  %-34s %5d\n", d.Domain, d.TotalPublications)
	}
}

func writeDomainStats(w io.Writer, stats []aggregate.DomainStats) {
	fmt.Fprintln(w, "=== Publications by Domain and Type ===")
	if len(stats) == 0 {
		fmt.Fprintln(w, "  (no domains)")
		return
	}
	fmt.Fprintf(w, "  %-34s %7s %10s %5s %5s\n", "Domain", "Journal", "Conference", "Books", "Total")
	for _, s := range stats {
		fmt.Fprintf(w, "  %-34s %7d %10d %5d %5d\n", s.Domain, s.Journal, s.Conference, s.BookChapters, s.TotalPublications)
	}
}

func writeProjects(w io.Writer, projects []aggregate.FacultyProjects, limit int) {
	fmt.Fprintf(w, "=== Research Projects by Faculty (top %d) ===\n", limit)
	if len(projects) == 0 {
		fmt.Fprintln(w, "  (no projects)")
		return
	}
	for _, p := range projects {
		fmt.Fprintf(w, "  %-28s completed %2d  ongoing %2d  total %2d\n", roster.DisplayName(p.Name), p.Completed, p.Ongoing, p.Total())
	}
}

func writeRanks(w io.Writer, ranks []aggregate.RankCount) {
	fmt.Fprintln(w, "=== Faculty by Rank ===")
	if len(ranks) == 0 {
		fmt.Fprintln(w, "  (no ranks)")
		return
	}
	for _, r := range ranks {
		fmt.Fprintf(w, "  %-34s %3d\n", r.Rank, r.Count)
	}
}

func writeRankStats(w io.Writer, stats []aggregate.RankStats) {
	fmt.Fprintln(w, "=== Research Projects by Rank ===")
	if len(stats) == 0 {
		fmt.Fprintln(w, "  (no ranks)")
		return
	}
	for _, s := range stats {
		fmt.Fprintf(w, "  %-34s completed %3d  ongoing %3d  total %3d\n", s.Rank, s.Completed, s.Ongoing, s.TotalProjects)
	}
}

func writePublicationTypes(w io.Writer, p aggregate.PublicationTypes) {
	total := p.Total()
	share := func(n int) float64 {
		if total == 0 {
			return 0
		}
		return 100 * float64(n) / float64(total)
	}
	fmt.Fprintln(w, "=== Publications by Type ===")
	fmt.Fprintf(w, "  Journal:       %5d  %5.1f%%\n", p.Journal, share(p.Journal))
	fmt.Fprintf(w, "  Conference:    %5d  %5.1f%%\n", p.Conference, share(p.Conference))
	fmt.Fprintf(w, "  Book Chapters: %5d  %5.1f%%\n", p.BookChapters, share(p.BookChapters))
	fmt.Fprintf(w, "  Total:         %5d\n", total)
}

func writeCrossTab(w io.Writer, cells []aggregate.CrossTabCell) {
	fmt.Fprintln(w, "=== Faculty by Domain and Rank ===")
	if len(cells) == 0 {
		fmt.Fprintln(w, "  (no faculty match)")
		return
	}
	for _, c := range cells {
		fmt.Fprintf(w, "  %-34s %-34s %3d\n", c.Domain, c.Rank, c.Count)
	}
}

func writePivot(w io.Writer, t aggregate.PivotTable) {
	fmt.Fprintln(w, "=== Faculty by Domain and Rank ===")
	if len(t.Domains) == 0 {
		fmt.Fprintln(w, "  (no faculty match)")
		return
	}
	for i, d := range t.Domains {
		fmt.Fprintf(w, "  %s\n", d)
		for j, r := range t.Ranks {
			fmt.Fprintf(w, "    %-34s %3d\n", r, t.Counts[i][j])
		}
	}
}
