// Package docx edits WordprocessingML documents.
//
// A document is a zip package. The main part (word/document.xml) and the
// style part (word/styles.xml) are parsed into element trees; every other
// part is carried through unchanged when the document is saved. Only the
// small subset of the format needed to fill a table of flashcards is
// modelled: styles, tables, rows, cells, paragraphs and runs.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/beevik/etree"
)

const (
	documentPart = "word/document.xml"
	stylesPart   = "word/styles.xml"
)

var (
	ErrNoBody        = errors.New("document has no body")
	ErrNoStyles      = errors.New("document has no styles part")
	ErrNoTable       = errors.New("table not found")
	ErrCellRange     = errors.New("cell out of range")
	ErrStyleExists   = errors.New("style already exists")
	ErrStyleNotFound = errors.New("style not found")
)

type part struct {
	name string
	data []byte
}

type Document struct {
	parts  []part
	doc    *etree.Document
	styles *etree.Document
	body   *etree.Element
}

func Open(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open document: %w", err)
	}
	return OpenReader(bytes.NewReader(b), int64(len(b)))
}

func OpenReader(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("could not read document package: %w", err)
	}

	d := &Document{}
	for _, f := range zr.File {
		data, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("could not read part %s: %w", f.Name, err)
		}
		switch f.Name {
		case documentPart:
			d.doc = etree.NewDocument()
			if err := d.doc.ReadFromBytes(data); err != nil {
				return nil, fmt.Errorf("could not parse %s: %w", f.Name, err)
			}
		case stylesPart:
			d.styles = etree.NewDocument()
			if err := d.styles.ReadFromBytes(data); err != nil {
				return nil, fmt.Errorf("could not parse %s: %w", f.Name, err)
			}
		}
		d.parts = append(d.parts, part{name: f.Name, data: data})
	}

	if d.doc == nil || d.doc.Root() == nil {
		return nil, ErrNoBody
	}
	d.body = d.doc.Root().SelectElement("w:body")
	if d.body == nil {
		return nil, ErrNoBody
	}
	if d.styles == nil || d.styles.Root() == nil {
		return nil, ErrNoStyles
	}
	return d, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Tables returns the tables at the top level of the body.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, el := range d.body.SelectElements("w:tbl") {
		tables = append(tables, &Table{el: el})
	}
	return tables
}

func (d *Document) Table(i int) (*Table, error) {
	tables := d.Tables()
	if i < 0 || i >= len(tables) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoTable, i, len(tables))
	}
	return tables[i], nil
}

func (d *Document) Styles() *Styles {
	return &Styles{root: d.styles.Root()}
}

// WriteTo writes the document package to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, p := range d.parts {
		data := p.data
		switch p.name {
		case documentPart:
			b, err := d.doc.WriteToBytes()
			if err != nil {
				return cw.n, fmt.Errorf("could not serialize %s: %w", p.name, err)
			}
			data = b
		case stylesPart:
			b, err := d.styles.WriteToBytes()
			if err != nil {
				return cw.n, fmt.Errorf("could not serialize %s: %w", p.name, err)
			}
			data = b
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: time.Now(),
		})
		if err != nil {
			return cw.n, err
		}
		if _, err := fw.Write(data); err != nil {
			return cw.n, err
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// Save writes the document to a new file at path. An existing file is
// never overwritten; nothing is left behind if writing fails.
func (d *Document) Save(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("could not write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("could not close output file: %w", err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
