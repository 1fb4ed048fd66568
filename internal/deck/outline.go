package deck

// OutlineEntry is the flattened, serialisable view of one slide.
type OutlineEntry struct {
	Index  int      `json:"index" yaml:"index"`
	Layout string   `json:"layout" yaml:"layout"`
	Title  string   `json:"title" yaml:"title"`
	Lines  []string `json:"lines" yaml:"lines"`
}

// Outline flattens the deck for display. Lines holds the subtitle lines of a
// title slide or the bullets of a content slide.
func (d *Deck) Outline() []OutlineEntry {
	entries := make([]OutlineEntry, 0, len(d.slides))
	for i, s := range d.slides {
		entry := OutlineEntry{
			Index:  i + 1,
			Layout: s.Layout.String(),
			Title:  s.Title,
		}
		if s.Layout == LayoutTitle {
			entry.Lines = s.SubtitleLines()
		} else {
			entry.Lines = append([]string(nil), s.Bullets...)
		}
		entries = append(entries, entry)
	}
	return entries
}
