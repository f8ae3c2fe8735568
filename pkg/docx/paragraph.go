package docx

import (
	"strings"

	"github.com/beevik/etree"
)

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

type Paragraph struct {
	el *etree.Element
}

// pPr returns the paragraph properties, which must be the first child.
func (p *Paragraph) pPr() *etree.Element {
	if pPr := p.el.SelectElement("w:pPr"); pPr != nil {
		return pPr
	}
	pPr := etree.NewElement("w:pPr")
	p.el.InsertChildAt(0, pPr)
	return pPr
}

// SetStyle applies the paragraph style with the given id.
func (p *Paragraph) SetStyle(id string) {
	pPr := p.pPr()
	if st := pPr.SelectElement("w:pStyle"); st != nil {
		pPr.RemoveChild(st)
	}
	st := etree.NewElement("w:pStyle")
	st.CreateAttr("w:val", id)
	pPr.InsertChildAt(0, st)
}

func (p *Paragraph) Style() string {
	if pPr := p.el.SelectElement("w:pPr"); pPr != nil {
		if st := pPr.SelectElement("w:pStyle"); st != nil {
			return st.SelectAttrValue("w:val", "")
		}
	}
	return ""
}

func (p *Paragraph) SetAlignment(a Alignment) {
	pPr := p.pPr()
	if jc := pPr.SelectElement("w:jc"); jc != nil {
		jc.CreateAttr("w:val", string(a))
		return
	}
	jc := etree.NewElement("w:jc")
	jc.CreateAttr("w:val", string(a))
	// run properties of the paragraph mark come after jc
	if rPr := pPr.SelectElement("w:rPr"); rPr != nil {
		pPr.InsertChildAt(rPr.Index(), jc)
		return
	}
	pPr.AddChild(jc)
}

func (p *Paragraph) Alignment() Alignment {
	if pPr := p.el.SelectElement("w:pPr"); pPr != nil {
		if jc := pPr.SelectElement("w:jc"); jc != nil {
			return Alignment(jc.SelectAttrValue("w:val", ""))
		}
	}
	return ""
}

// SetText replaces the content of the paragraph with a single run.
func (p *Paragraph) SetText(text string) {
	for _, child := range p.el.ChildElements() {
		if child.Space == "w" && child.Tag == "pPr" {
			continue
		}
		p.el.RemoveChild(child)
	}
	p.AddRun(text, "")
}

// AddRun appends text in the character style with the given id; an
// empty id keeps the paragraph style.
func (p *Paragraph) AddRun(text, styleID string) {
	r := p.el.CreateElement("w:r")
	if styleID != "" {
		r.CreateElement("w:rPr").CreateElement("w:rStyle").CreateAttr("w:val", styleID)
	}
	t := r.CreateElement("w:t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(text)
}

// Text returns the text of all runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.el.SelectElements("w:r") {
		for _, t := range r.SelectElements("w:t") {
			b.WriteString(t.Text())
		}
	}
	return b.String()
}

// RunStyles returns the character style id of every run, "" for runs
// without one.
func (p *Paragraph) RunStyles() []string {
	var styles []string
	for _, r := range p.el.SelectElements("w:r") {
		id := ""
		if rPr := r.SelectElement("w:rPr"); rPr != nil {
			if st := rPr.SelectElement("w:rStyle"); st != nil {
				id = st.SelectAttrValue("w:val", "")
			}
		}
		styles = append(styles, id)
	}
	return styles
}
