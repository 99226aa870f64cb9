package scene

import (
	"fmt"

	"github.com/iburimskiy/neoncircuit/internal/theme"
)

// Section is one headed block of page copy. Offset shifts the section
// color so a second group of headings does not repeat the first.
type Section struct {
	Heading string
	Body    string
	Offset  int
}

// PageTitle heads the card.
const PageTitle = "NEONCIRCUIT"

// PageSections is the copy both frontends lay out under the circuit.
var PageSections = []Section{
	{Heading: "ABOUT", Body: "procedural palettes"},
	{Heading: "EXPERIENCE", Body: "gates and wires"},
	{Heading: "PROJECTS", Body: "golden-ratio hues"},
	{Heading: "SKILLS", Body: "contrast repair"},
	{Heading: "CONTACT", Body: "press r to reroll"},
	{Heading: "GALLERY", Body: "press c to pick", Offset: 4},
}

// SectionColor is the color of section i under s.
func SectionColor(s theme.Scheme, i int) theme.SectionColor {
	return s.SectionFor(i, PageSections[i%len(PageSections)].Offset)
}

// StatusLine summarizes the scheme for the accent status row.
func StatusLine(s theme.Scheme) string {
	t := s.Theme
	return fmt.Sprintf("> %s // hue %d -> %d // text %.1f:1 // accent %.1f:1",
		t.Harmony, t.PrimaryHue, t.AccentHue, t.TextContrast, t.AccentContrast)
}
