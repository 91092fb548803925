package reader

import (
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/tabella/model"
)

// Default page dimensions in points (US Letter), used when a page carries no
// usable MediaBox anywhere in its inheritance chain.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Document is an open PDF whose pages can be read as positioned text
// fragments.
type Document struct {
	file *os.File // non-nil when the document owns the underlying file
	r    *pdf.Reader
}

// Open opens the PDF file at path. The returned Document must be closed
// when done.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Document{file: f, r: r}, nil
}

// NewDocument reads a PDF from ra, which must contain size bytes.
// The caller retains ownership of ra; Close is a no-op on the result.
func NewDocument(ra io.ReaderAt, size int64) (*Document, error) {
	r, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, err
	}
	return &Document{r: r}, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.r.NumPage()
}

// Page loads the page with the given number (1-based) and returns it with one
// text fragment per glyph run, exactly as the content stream reports them.
// Fragment boxes are anchored at the run's baseline with height equal to the
// font size.
func (d *Document) Page(number int) (page *model.Page, err error) {
	// The underlying library panics on malformed files, so everything that
	// touches it is fenced with recover.
	defer func() {
		if r := recover(); r != nil {
			page, err = nil, fmt.Errorf("malformed page: %v", r)
		}
	}()

	p := d.r.Page(number)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page not found")
	}

	width, height := pageSize(p)
	page = model.NewPage(number, width, height)

	for _, t := range p.Content().Text {
		page.AddFragment(model.TextFragment{
			Text: t.S,
			BBox: model.BBox{
				X:      t.X,
				Y:      t.Y,
				Width:  t.W,
				Height: t.FontSize,
			},
			Font:     t.Font,
			FontSize: t.FontSize,
			Page:     number,
		})
	}

	return page, nil
}

// Close releases the underlying file, if the document owns one.
// It is safe to call Close multiple times.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// pageSize returns the page dimensions in points. MediaBox is an inheritable
// attribute, so a page without one defers to its ancestors in the page tree.
func pageSize(p pdf.Page) (width, height float64) {
	if w, h, ok := mediaBoxSize(p.V.Key("MediaBox")); ok {
		return w, h
	}

	// Bounded walk up the tree; malformed files can contain parent cycles.
	parent := p.V.Key("Parent")
	for i := 0; i < 10 && !parent.IsNull(); i++ {
		if w, h, ok := mediaBoxSize(parent.Key("MediaBox")); ok {
			return w, h
		}
		parent = parent.Key("Parent")
	}

	return defaultPageWidth, defaultPageHeight
}

// mediaBoxSize converts a MediaBox array [llx lly urx ury] to a positive
// width and height. ok is false when the value is missing or malformed.
func mediaBoxSize(box pdf.Value) (width, height float64, ok bool) {
	if box.IsNull() || box.Kind() != pdf.Array || box.Len() != 4 {
		return 0, 0, false
	}

	var coords [4]float64
	for i := range coords {
		v := box.Index(i)
		switch v.Kind() {
		case pdf.Integer:
			coords[i] = float64(v.Int64())
		case pdf.Real:
			coords[i] = v.Float64()
		default:
			return 0, 0, false
		}
	}

	width = coords[2] - coords[0]
	height = coords[3] - coords[1]
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}
