package deck

import (
	"errors"
	"fmt"
	"strings"

	"agrideck/internal/textutil"
)

var (
	// ErrSealed is returned when a slide is appended to a deck that has
	// already been serialized.
	ErrSealed = errors.New("deck is sealed")
	// ErrInvalid wraps every validation failure reported by Validate.
	ErrInvalid = errors.New("invalid deck")
)

// Layout names the placeholder arrangement a slide exposes.
type Layout int

const (
	// LayoutTitle is the title + subtitle layout used for the opening slide.
	LayoutTitle Layout = iota
	// LayoutTitleAndContent is the title + bulleted body layout.
	LayoutTitleAndContent
)

func (l Layout) String() string {
	switch l {
	case LayoutTitle:
		return "title"
	case LayoutTitleAndContent:
		return "title+bullets"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// Slide is one page of the deck. Subtitle is only meaningful for LayoutTitle
// and Bullets only for LayoutTitleAndContent.
type Slide struct {
	Layout   Layout
	Title    string
	Subtitle string
	Bullets  []string
}

// NewTitleSlide builds a title + subtitle slide. Subtitle lines are separated
// by "\n" and render as separate paragraphs.
func NewTitleSlide(title, subtitle string) Slide {
	return Slide{
		Layout:   LayoutTitle,
		Title:    textutil.CleanSlideText(title),
		Subtitle: textutil.CleanSlideText(subtitle),
	}
}

// NewBulletSlide builds a title + bullets slide. Bullet order is preserved.
func NewBulletSlide(title string, bullets ...string) Slide {
	cleaned := make([]string, len(bullets))
	for i, b := range bullets {
		cleaned[i] = textutil.CleanSlideText(b)
	}
	return Slide{
		Layout:  LayoutTitleAndContent,
		Title:   textutil.CleanSlideText(title),
		Bullets: cleaned,
	}
}

// SubtitleLines splits the subtitle into its paragraph lines.
func (s Slide) SubtitleLines() []string {
	if s.Subtitle == "" {
		return nil
	}
	return strings.Split(s.Subtitle, "\n")
}

func (s Slide) clone() Slide {
	out := s
	if s.Bullets != nil {
		out.Bullets = append([]string(nil), s.Bullets...)
	}
	return out
}

// Deck is an ordered, append-only sequence of slides.
type Deck struct {
	slides []Slide
	sealed bool
}

// New returns an empty deck.
func New() *Deck {
	return &Deck{}
}

// Append adds slide to the end of the deck.
func (d *Deck) Append(slide Slide) error {
	if d.sealed {
		return ErrSealed
	}
	d.slides = append(d.slides, slide.clone())
	return nil
}

// MustAppend is Append for decks built from literals; it panics on a sealed deck.
func (d *Deck) MustAppend(slides ...Slide) *Deck {
	for _, s := range slides {
		if err := d.Append(s); err != nil {
			panic(err)
		}
	}
	return d
}

// Len reports the number of slides.
func (d *Deck) Len() int {
	return len(d.slides)
}

// Slides returns a copy of the slides in presentation order.
func (d *Deck) Slides() []Slide {
	out := make([]Slide, len(d.slides))
	for i, s := range d.slides {
		out[i] = s.clone()
	}
	return out
}

// Seal marks the deck as serialized.
func (d *Deck) Seal() {
	d.sealed = true
}

// Sealed reports whether Seal has been called.
func (d *Deck) Sealed() bool {
	return d.sealed
}

// Validate checks the structural rules every rendered deck must satisfy: the
// first slide is the only title slide, and every slide has a title and a
// non-empty body.
func (d *Deck) Validate() error {
	if len(d.slides) == 0 {
		return fmt.Errorf("%w: no slides", ErrInvalid)
	}
	for i, s := range d.slides {
		pos := i + 1
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("%w: slide %d has no title", ErrInvalid, pos)
		}
		switch s.Layout {
		case LayoutTitle:
			if i != 0 {
				return fmt.Errorf("%w: slide %d uses the title layout; only slide 1 may", ErrInvalid, pos)
			}
			if strings.TrimSpace(s.Subtitle) == "" {
				return fmt.Errorf("%w: slide %d has no subtitle", ErrInvalid, pos)
			}
		case LayoutTitleAndContent:
			if i == 0 {
				return fmt.Errorf("%w: slide 1 must use the title layout", ErrInvalid)
			}
			if len(s.Bullets) == 0 {
				return fmt.Errorf("%w: slide %d has no bullets", ErrInvalid, pos)
			}
			for j, b := range s.Bullets {
				if strings.TrimSpace(b) == "" {
					return fmt.Errorf("%w: slide %d bullet %d is blank", ErrInvalid, pos, j+1)
				}
			}
		default:
			return fmt.Errorf("%w: slide %d has unknown %s", ErrInvalid, pos, s.Layout)
		}
	}
	return nil
}
