package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="` + wordNamespace + `">
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>
<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/></w:style>
</w:styles>`

// TemplateOptions describes a blank flashcard template: a table of Rows
// by Cols cells on a letter page with narrow margins.
type TemplateOptions struct {
	Rows        int
	Cols        int
	RowHeight   int // twips
	ColumnWidth int // twips
}

func DefaultTemplateOptions() TemplateOptions {
	return TemplateOptions{
		Rows:        10,
		Cols:        2,
		RowHeight:   2 * TwipsPerInch,
		ColumnWidth: 3.5 * TwipsPerInch,
	}
}

func documentXML(opts TemplateOptions) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="` + wordNamespace + `"><w:body><w:tbl>`)
	b.WriteString(`<w:tblPr><w:tblW w:w="0" w:type="auto"/><w:tblLayout w:type="fixed"/></w:tblPr>`)
	b.WriteString(`<w:tblGrid>`)
	width := strconv.Itoa(opts.ColumnWidth)
	for c := 0; c < opts.Cols; c++ {
		b.WriteString(`<w:gridCol w:w="` + width + `"/>`)
	}
	b.WriteString(`</w:tblGrid>`)
	height := strconv.Itoa(opts.RowHeight)
	for r := 0; r < opts.Rows; r++ {
		b.WriteString(`<w:tr><w:trPr><w:trHeight w:val="` + height + `" w:hRule="exact"/></w:trPr>`)
		for c := 0; c < opts.Cols; c++ {
			b.WriteString(`<w:tc><w:tcPr><w:tcW w:w="` + width + `" w:type="dxa"/><w:vAlign w:val="center"/></w:tcPr><w:p/></w:tc>`)
		}
		b.WriteString(`</w:tr>`)
	}
	b.WriteString(`</w:tbl><w:p/>`)
	b.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>`)
	b.WriteString(`<w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720" w:header="0" w:footer="0" w:gutter="0"/></w:sectPr>`)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

// NewTemplate returns the bytes of a blank template package.
func NewTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, fmt.Errorf("template needs at least one row and column, got %dx%d", opts.Rows, opts.Cols)
	}
	parts := []part{
		{name: "[Content_Types].xml", data: []byte(contentTypesXML)},
		{name: "_rels/.rels", data: []byte(packageRelsXML)},
		{name: "word/_rels/document.xml.rels", data: []byte(documentRelsXML)},
		{name: documentPart, data: []byte(documentXML(opts))},
		{name: stylesPart, data: []byte(stylesXML)},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(p.data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTemplate writes a blank template to path unless the file exists.
func WriteTemplate(path string, opts TemplateOptions) error {
	b, err := NewTemplate(opts)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("could not create template: %w", err)
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("could not write template: %w", err)
	}
	return f.Close()
}
