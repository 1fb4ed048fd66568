package pptx_test

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
	"github.com/google/go-cmp/cmp"

	"agrideck/internal/deck"
	"agrideck/internal/pptx"
)

func renderToFile(t *testing.T, d *deck.Deck) string {
	t.Helper()
	r := pptx.NewRenderer(pptx.OptionsFromConfig(nil), nil)
	data, err := r.RenderBytes(d)
	if err != nil {
		t.Fatalf("RenderBytes: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("rendered document is empty")
	}
	path := filepath.Join(t.TempDir(), deck.OutputFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}

func TestRenderAgriSenseReadsBack(t *testing.T) {
	d := deck.AgriSense()
	summary, err := pptx.Inspect(renderToFile(t, d))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	if len(summary.Slides) != 10 {
		t.Fatalf("expected 10 slides, got %d", len(summary.Slides))
	}
	if summary.Title != "AgriSense" {
		t.Fatalf("document title = %q", summary.Title)
	}

	want := deck.AgriSense().Slides()
	for i, slide := range summary.Slides {
		if got := slide.Title(); got != want[i].Title {
			t.Errorf("slide %d title = %q, want %q", i+1, got, want[i].Title)
		}
		if len(slide.Shapes) != 2 {
			t.Errorf("slide %d has %d text shapes, want 2", i+1, len(slide.Shapes))
		}
	}
}

func TestRenderBodyParagraphsMatchBullets(t *testing.T) {
	d := deck.AgriSense()
	want := d.Slides()
	summary, err := pptx.Inspect(renderToFile(t, d))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}

	for i, slide := range summary.Slides[1:] {
		expected := want[i+1]
		body := slide.Body()
		if len(body) != len(expected.Bullets) {
			t.Fatalf("slide %d: %d paragraphs, want %d: %q", i+2, len(body), len(expected.Bullets), body)
		}
		for _, p := range body {
			if p == "" {
				t.Fatalf("slide %d has a blank paragraph: %q", i+2, body)
			}
		}
		if diff := cmp.Diff(expected.Bullets, body); diff != "" {
			t.Fatalf("slide %d bullets mismatch (-want +got):\n%s", i+2, diff)
		}
	}
}

// bodyRuns returns the text runs of the second text-bearing shape of every
// slide, grouped per slide.
func bodyRuns(t *testing.T, path string) [][]*ppt.TextRun {
	t.Helper()
	pres, err := (&ppt.PPTXReader{}).Read(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var out [][]*ppt.TextRun
	for _, slide := range pres.GetAllSlides() {
		var textShapes [][]*ppt.TextRun
		for _, shape := range slide.GetShapes() {
			rts, ok := shape.(*ppt.RichTextShape)
			if !ok {
				continue
			}
			var runs []*ppt.TextRun
			for _, para := range rts.GetParagraphs() {
				for _, elem := range para.GetElements() {
					if run, ok := elem.(*ppt.TextRun); ok && run.GetText() != "" {
						runs = append(runs, run)
					}
				}
			}
			if len(runs) > 0 {
				textShapes = append(textShapes, runs)
			}
		}
		if len(textShapes) < 2 {
			t.Fatalf("slide %d has %d text shapes", len(out)+1, len(textShapes))
		}
		out = append(out, textShapes[1])
	}
	return out
}

func TestRenderBulletRunsUseBodyFontSize(t *testing.T) {
	d := deck.AgriSense()
	want := d.Slides()
	slides := bodyRuns(t, renderToFile(t, d))
	if len(slides) != 10 {
		t.Fatalf("expected 10 slides, got %d", len(slides))
	}

	for i, runs := range slides[1:] {
		if len(runs) != len(want[i+1].Bullets) {
			t.Fatalf("slide %d: %d bullet runs, want %d", i+2, len(runs), len(want[i+1].Bullets))
		}
		for j, run := range runs {
			if size := run.GetFont().Size; size != 24 {
				t.Errorf("slide %d bullet %d font size = %v, want 24", i+2, j+1, size)
			}
		}
	}
}

func TestRenderBulletsUseParagraphMarker(t *testing.T) {
	d := deck.AgriSense()
	want := d.Slides()
	path := renderToFile(t, d)

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	defer zr.Close()

	parts := make(map[string]string)
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/slide") || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(data)
	}

	for i, slide := range want {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		xml, ok := parts[name]
		if !ok {
			t.Fatalf("package has no %s", name)
		}
		if got := strings.Count(xml, "<a:buChar"); got != len(slide.Bullets) {
			t.Errorf("%s: %d bullet markers, want %d", name, got, len(slide.Bullets))
		}
		if strings.Contains(xml, "• ") {
			t.Errorf("%s: bullet glyph written into the paragraph text", name)
		}
	}
}

func TestRenderTitleSlideSubtitleLines(t *testing.T) {
	summary, err := pptx.Inspect(renderToFile(t, deck.AgriSense()))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	want := []string{"Smart Agriculture Monitoring & Disease Detection", "Team Nerula"}
	if diff := cmp.Diff(want, summary.Slides[0].Body()); diff != "" {
		t.Fatalf("subtitle mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderLastBulletCarriesContactURL(t *testing.T) {
	summary, err := pptx.Inspect(renderToFile(t, deck.AgriSense()))
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	body := summary.Slides[9].Body()
	if len(body) == 0 || !strings.Contains(body[len(body)-1], deck.ContactURL) {
		t.Fatalf("last bullet of slide 10 lacks contact url: %q", body)
	}
}

func TestRenderBytesSealsDeck(t *testing.T) {
	d := deck.AgriSense()
	r := pptx.NewRenderer(pptx.OptionsFromConfig(nil), nil)
	if _, err := r.RenderBytes(d); err != nil {
		t.Fatalf("first RenderBytes: %v", err)
	}
	if !d.Sealed() {
		t.Fatal("expected deck to be sealed after serialization")
	}
	if _, err := r.RenderBytes(d); !errors.Is(err, deck.ErrSealed) {
		t.Fatalf("expected ErrSealed on second serialization, got %v", err)
	}
}

func TestRenderRejectsInvalidDeck(t *testing.T) {
	r := pptx.NewRenderer(pptx.OptionsFromConfig(nil), nil)
	_, err := r.Render(deck.New())
	if !errors.Is(err, deck.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCheckWriter(t *testing.T) {
	if err := pptx.CheckWriter(); err != nil {
		t.Fatalf("CheckWriter: %v", err)
	}
}

func TestInspectMissingFile(t *testing.T) {
	if _, err := pptx.Inspect(filepath.Join(t.TempDir(), "missing.pptx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
