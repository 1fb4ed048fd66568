package pptx

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"
)

// SlideSummary is the text content of one rendered slide. Shapes holds the
// paragraphs of every text-bearing shape in drawing order; decorative shapes
// without any text are left out. Empty paragraphs inside a text shape are
// kept so callers can detect stray blank lines.
type SlideSummary struct {
	Index  int        `json:"index"`
	Shapes [][]string `json:"shapes"`
}

// Title returns the first paragraph of the first text shape.
func (s SlideSummary) Title() string {
	if len(s.Shapes) == 0 || len(s.Shapes[0]) == 0 {
		return ""
	}
	return s.Shapes[0][0]
}

// Body returns the paragraphs of the second text shape: the subtitle of a
// title slide or the bullets of a content slide.
func (s SlideSummary) Body() []string {
	if len(s.Shapes) < 2 {
		return nil
	}
	return s.Shapes[1]
}

// Summary describes a .pptx file as read back from disk.
type Summary struct {
	Path   string         `json:"path"`
	Title  string         `json:"title"`
	Slides []SlideSummary `json:"slides"`
}

// Inspect reads the document at path.
func Inspect(path string) (Summary, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return Summary{}, fmt.Errorf("read pptx %s: %w", path, err)
	}

	summary := Summary{Path: path}
	if props := pres.GetDocumentProperties(); props != nil {
		summary.Title = props.Title
	}

	for i, slide := range pres.GetAllSlides() {
		ss := SlideSummary{Index: i + 1}
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			paragraphs := make([]string, 0, len(rts.GetParagraphs()))
			hasText := false
			for _, para := range rts.GetParagraphs() {
				var text strings.Builder
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok {
						text.WriteString(run.GetText())
					}
				}
				line := strings.TrimSpace(text.String())
				if line != "" {
					hasText = true
				}
				paragraphs = append(paragraphs, line)
			}
			if hasText {
				ss.Shapes = append(ss.Shapes, paragraphs)
			}
		}
		summary.Slides = append(summary.Slides, ss)
	}
	return summary, nil
}
