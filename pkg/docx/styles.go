package docx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

type StyleType string

const (
	ParagraphStyle StyleType = "paragraph"
	CharacterStyle StyleType = "character"
)

// Style describes a custom style. BasedOn names the parent style; Font
// and SizePt are left unset when empty or zero.
type Style struct {
	Name    string
	Type    StyleType
	BasedOn string
	Font    string
	SizePt  float64
}

// ID is the style id Word derives from the name.
func (s Style) ID() string {
	return strings.ReplaceAll(s.Name, " ", "")
}

// Styles is the style table of one document.
type Styles struct {
	root *etree.Element
}

// Lookup returns the id of the style with the given name or id.
func (s *Styles) Lookup(name string) (string, bool) {
	for _, el := range s.root.SelectElements("w:style") {
		id := el.SelectAttrValue("w:styleId", "")
		if id == name {
			return id, true
		}
		if n := el.SelectElement("w:name"); n != nil && n.SelectAttrValue("w:val", "") == name {
			return id, true
		}
	}
	return "", false
}

// Add appends a style definition and returns its id.
func (s *Styles) Add(st Style) (string, error) {
	id := st.ID()
	if _, ok := s.Lookup(st.Name); ok {
		return "", fmt.Errorf("%w: %s", ErrStyleExists, st.Name)
	}
	if _, ok := s.Lookup(id); ok {
		return "", fmt.Errorf("%w: %s", ErrStyleExists, id)
	}
	if st.Type == "" {
		st.Type = ParagraphStyle
	}
	var parent string
	if st.BasedOn != "" {
		var ok bool
		if parent, ok = s.Lookup(st.BasedOn); !ok {
			return "", fmt.Errorf("%w: %s is based on %s", ErrStyleNotFound, st.Name, st.BasedOn)
		}
	}

	el := s.root.CreateElement("w:style")
	el.CreateAttr("w:type", string(st.Type))
	el.CreateAttr("w:customStyle", "1")
	el.CreateAttr("w:styleId", id)
	el.CreateElement("w:name").CreateAttr("w:val", st.Name)
	if parent != "" {
		el.CreateElement("w:basedOn").CreateAttr("w:val", parent)
	}
	el.CreateElement("w:qFormat")

	if st.Font != "" || st.SizePt > 0 {
		rPr := el.CreateElement("w:rPr")
		if st.Font != "" {
			fonts := rPr.CreateElement("w:rFonts")
			fonts.CreateAttr("w:ascii", st.Font)
			fonts.CreateAttr("w:hAnsi", st.Font)
			fonts.CreateAttr("w:eastAsia", st.Font)
			fonts.CreateAttr("w:cs", st.Font)
		}
		if st.SizePt > 0 {
			// sizes are stored in half-points
			halfPoints := strconv.Itoa(int(st.SizePt * 2))
			rPr.CreateElement("w:sz").CreateAttr("w:val", halfPoints)
			rPr.CreateElement("w:szCs").CreateAttr("w:val", halfPoints)
		}
	}
	return id, nil
}
