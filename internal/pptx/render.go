package pptx

import (
	"bytes"
	"fmt"
	"log/slog"

	ppt "github.com/VantageDataChat/GoPPT"

	"agrideck/internal/config"
	"agrideck/internal/deck"
	"agrideck/internal/logging"
)

// Options controls document metadata and text styling. Font sizes are points.
type Options struct {
	Title            string
	Creator          string
	TitleFontSize    int
	SubtitleFontSize int
	HeadingFontSize  int
	BodyFontSize     int
	AccentColor      string
	TextColor        string
}

// OptionsFromConfig maps the [document] section onto renderer options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	doc := cfg.Document
	return Options{
		Title:            doc.Title,
		Creator:          doc.Creator,
		TitleFontSize:    doc.TitleFontSize,
		SubtitleFontSize: doc.SubtitleFontSize,
		HeadingFontSize:  doc.HeadingFontSize,
		BodyFontSize:     doc.BodyFontSize,
		AccentColor:      doc.AccentColor,
		TextColor:        doc.TextColor,
	}
}

// Renderer turns decks into PowerPoint documents.
type Renderer struct {
	opts   Options
	logger *slog.Logger
}

// NewRenderer creates a renderer. A nil logger discards output.
func NewRenderer(opts Options, logger *slog.Logger) *Renderer {
	return &Renderer{opts: opts, logger: logging.NewComponentLogger(logger, "pptx")}
}

// Render builds the in-memory presentation for d. The deck must validate and
// must not have been serialized already.
func (r *Renderer) Render(d *deck.Deck) (*ppt.Presentation, error) {
	if d.Sealed() {
		return nil, fmt.Errorf("render: %w", deck.ErrSealed)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	p := ppt.New()
	props := p.GetDocumentProperties()
	props.Title = r.opts.Title
	props.Creator = r.opts.Creator

	for i, s := range d.Slides() {
		// ppt.New seeds the presentation with one empty slide; it becomes
		// slide 1 instead of leaving a blank page at the front.
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		switch s.Layout {
		case deck.LayoutTitle:
			r.drawTitleSlide(slide, s)
		case deck.LayoutTitleAndContent:
			r.drawBulletSlide(slide, s)
		}
		r.logger.Debug("slide rendered",
			logging.Int(logging.FieldSlide, i+1),
			logging.String("layout", s.Layout.String()),
			logging.String("title", s.Title),
		)
	}
	return p, nil
}

// Encode serializes p as a .pptx package.
func (r *Renderer) Encode(p *ppt.Presentation) ([]byte, error) {
	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriterUnavailable, err)
	}
	writer, ok := w.(*ppt.PPTXWriter)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected writer %T", ErrWriterUnavailable, w)
	}

	var buf bytes.Buffer
	if err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode pptx: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBytes renders and encodes d, then seals it so it cannot be
// serialized a second time.
func (r *Renderer) RenderBytes(d *deck.Deck) ([]byte, error) {
	p, err := r.Render(d)
	if err != nil {
		return nil, err
	}
	data, err := r.Encode(p)
	if err != nil {
		return nil, err
	}
	d.Seal()
	return data, nil
}

// CheckWriter reports whether GoPPT can construct a PowerPoint 2007 writer.
func CheckWriter() error {
	if _, err := ppt.NewWriter(ppt.New(), ppt.WriterPowerPoint2007); err != nil {
		return fmt.Errorf("%w: %v", ErrWriterUnavailable, err)
	}
	return nil
}

func (r *Renderer) drawTitleSlide(slide *ppt.Slide, s deck.Slide) {
	r.accentBar(slide, 0)

	title := slide.CreateRichTextShape()
	title.SetOffsetX(marginLeft).SetOffsetY(coverTitleY)
	title.SetWidth(contentWidth).SetHeight(coverTitleHeight)
	tr := title.CreateTextRun(s.Title)
	tr.GetFont().SetSize(r.opts.TitleFontSize).SetBold(true).SetColor(ppt.NewColor(r.opts.AccentColor))
	alignCenter(title.GetActiveParagraph())

	subtitle := slide.CreateRichTextShape()
	subtitle.SetOffsetX(marginLeft).SetOffsetY(coverSubtitleY)
	subtitle.SetWidth(contentWidth).SetHeight(coverSubtitleH)
	for i, line := range s.SubtitleLines() {
		if i > 0 {
			subtitle.CreateParagraph()
		}
		run := subtitle.CreateTextRun(line)
		run.GetFont().SetSize(r.opts.SubtitleFontSize).SetColor(ppt.NewColor(r.opts.TextColor))
		alignCenter(subtitle.GetActiveParagraph())
	}

	r.accentBar(slide, slideHeight-accentBarHeight)
}

func (r *Renderer) drawBulletSlide(slide *ppt.Slide, s deck.Slide) {
	r.accentBar(slide, 0)

	heading := slide.CreateRichTextShape()
	heading.SetOffsetX(marginLeft).SetOffsetY(headingY)
	heading.SetWidth(contentWidth).SetHeight(headingHeight)
	tr := heading.CreateTextRun(s.Title)
	tr.GetFont().SetSize(r.opts.HeadingFontSize).SetBold(true).SetColor(ppt.NewColor(r.opts.AccentColor))

	body := slide.CreateRichTextShape()
	body.SetOffsetX(marginLeft).SetOffsetY(bodyY)
	body.SetWidth(contentWidth).SetHeight(bodyHeight)
	for i, bullet := range s.Bullets {
		// The shape starts with one empty paragraph; the first bullet fills
		// it and only later bullets open new ones.
		if i > 0 {
			body.CreateParagraph()
		}
		body.GetActiveParagraph().SetBullet(ppt.NewBullet().SetCharBullet(bulletChar))
		run := body.CreateTextRun(bullet)
		run.GetFont().SetSize(r.opts.BodyFontSize).SetColor(ppt.NewColor(r.opts.TextColor))
	}
}

func (r *Renderer) accentBar(slide *ppt.Slide, y int64) {
	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(0).SetOffsetY(y)
	bar.SetWidth(slideWidth).SetHeight(accentBarHeight)
	bar.SetFill(ppt.NewFill().SetSolid(ppt.NewColor(r.opts.AccentColor)))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}
