package filter

// Predicate is a sealed filter condition over a roster record.
type Predicate interface {
	predicateNode()
}

// NameContains matches records whose name contains Substring under Unicode
// case folding. An empty Substring matches every record; Criteria never
// emits one.
type NameContains struct {
	Substring string
}

func (NameContains) predicateNode() {}

// RankIn matches records whose rank is exactly one of Values.
// An empty Values matches nothing.
type RankIn struct {
	Values []string
}

func (RankIn) predicateNode() {}

// DomainIn matches records whose domain is exactly one of Values.
// An empty Values matches nothing.
type DomainIn struct {
	Values []string
}

func (DomainIn) predicateNode() {}

// MinTotalPublications matches records with TotalPublications() >= Min.
type MinTotalPublications struct {
	Min int
}

func (MinTotalPublications) predicateNode() {}

// MinJournalPublications matches records with JournalPublications >= Min.
type MinJournalPublications struct {
	Min int
}

func (MinJournalPublications) predicateNode() {}

// And matches when every predicate matches. An empty And matches everything.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}
