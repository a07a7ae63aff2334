package report

// Document is the format-neutral layout produced by a Template and drawn by
// the HTML and PDF renderers.
type Document struct {
	Title    string
	Subtitle string
	Header   []Line
	Sections []Section
	Footer   string
}

// Section is a titled block of label/value lines.
type Section struct {
	Heading string
	Lines   []Line
}

// Line is a single label/value pair. Emphasis marks totals.
type Line struct {
	Label    string
	Value    string
	Emphasis bool
}
