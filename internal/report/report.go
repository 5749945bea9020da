package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Entry is one slide's row in the report.
type Entry struct {
	Index     int    `json:"index"`
	Summary   string `json:"summary"`
	Thumbnail string `json:"thumbnail,omitempty"` // image file reference
}

// Report is the ordered per-slide summary document produced by one run.
type Report struct {
	Title   string
	Entries []Entry
}

// New creates an empty report.
func New(title string) *Report {
	if title == "" {
		title = "Slide Deck Summary"
	}
	return &Report{Title: title}
}

// Add appends one slide entry. Callers add slides in ordinal order.
func (r *Report) Add(index int, summary, thumbnail string) {
	r.Entries = append(r.Entries, Entry{Index: index, Summary: summary, Thumbnail: thumbnail})
}

// Markdown renders the report with one "## Slide N" section per entry.
func (r *Report) Markdown() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n", r.Title)
	for _, e := range r.Entries {
		fmt.Fprintf(&buf, "\n## Slide %d\n\n", e.Index)
		if e.Thumbnail != "" {
			fmt.Fprintf(&buf, "![Slide %d](%s)\n\n", e.Index, e.Thumbnail)
		}
		buf.WriteString(strings.TrimSpace(e.Summary))
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

var (
	reSlideHeading = regexp.MustCompile(`^Slide (\d+)$`)
	reImageLine    = regexp.MustCompile(`^!\[[^\]]*\]\(([^)]+)\)\s*$`)
)

// ParseMarkdown recovers the ordered entries from a rendered report. The
// slide headings are located through the markdown AST; each summary is the
// raw source between its heading and the next, so summaries containing
// markdown of their own (bullet lists etc.) survive the round trip.
func ParseMarkdown(src []byte) (*Report, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	type headingPos struct {
		index     int
		lineStart int // offset of the "## " prefix
		lineStop  int // offset just past the heading text
	}

	var title string
	var headings []headingPos

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			continue
		}
		seg := h.Lines().At(0)
		headingText := strings.TrimSpace(string(seg.Value(src)))

		if h.Level == 1 && title == "" {
			title = headingText
			continue
		}
		if h.Level != 2 {
			continue
		}
		m := reSlideHeading.FindStringSubmatch(headingText)
		if m == nil {
			continue
		}
		idx, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("bad slide heading %q: %w", headingText, err)
		}
		headings = append(headings, headingPos{
			index:     idx,
			lineStart: seg.Start - (h.Level + 1),
			lineStop:  seg.Stop,
		})
	}

	r := New(title)
	for i, h := range headings {
		end := len(src)
		if i+1 < len(headings) {
			end = headings[i+1].lineStart
		}
		body := strings.TrimSpace(string(src[h.lineStop:end]))

		thumbnail := ""
		if line, rest, found := strings.Cut(body, "\n"); found || body != "" {
			if m := reImageLine.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				thumbnail = m[1]
				if found {
					body = strings.TrimSpace(rest)
				} else {
					body = ""
				}
			}
		}

		r.Add(h.index, body, thumbnail)
	}
	return r, nil
}
