package example

type MatchType string

const (
	MatchTypeExact MatchType = "exact"
	MatchTypePrefix MatchType = "prefix"
)

type QueueStatus string

const (
	QueueStatusPending  QueueStatus = "pending"
	QueueStatusRejected QueueStatus = "rejected"
)

type Rule struct {
	MatchType MatchType
	Text      string
}

type QueueItem struct {
	Status QueueStatus
}

func bad() {
	r := &Rule{}
	r.MatchType = "fuzzy" // want "enum field MatchType assigned string literal"

	q := &QueueItem{}
	q.Status = "archived" // want "enum field Status assigned string literal"

	_ = Rule{MatchType: "glob"} // want "enum field MatchType assigned string literal"
}

func good() {
	r := &Rule{}
	r.MatchType = MatchTypePrefix
	r.Text = "plain strings are fine"

	q := &QueueItem{Status: QueueStatusPending}
	q.Status = QueueStatusRejected
}

func alsoGood() {
	// A variable is not a literal.
	mt := MatchTypeExact
	r := &Rule{MatchType: mt}
	_ = r
}
