package main

type RGB struct {
	R, G, B int
}

// brand palette plus the neutral greys used by the table and captions
var (
	brandGreen  = RGB{0x76, 0xB9, 0x00}
	brandStroke = RGB{0x5A, 0x8F, 0x00}

	subtitleGrey = RGB{0x55, 0x55, 0x55}
	captionGrey  = RGB{0x66, 0x66, 0x66}
	rowShade     = RGB{0xF5, 0xF5, 0xF5}
	totalsShade  = RGB{0xE8, 0xE8, 0xE8}
	gridGrey     = RGB{0xCC, 0xCC, 0xCC}
	ruleGrey     = RGB{0x33, 0x33, 0x33}

	white = RGB{0xFF, 0xFF, 0xFF}
	black = RGB{0x00, 0x00, 0x00}
)

// ParagraphStyle holds the visual attributes applied to one paragraph.
// Align uses the layout engine's codes: "L", "C" or "J".
type ParagraphStyle struct {
	FontFamily  string
	FontStyle   string
	FontSize    float64
	Leading     float64
	Align       string
	Color       RGB
	SpaceBefore float64
	SpaceAfter  float64
}

type StyleSheet struct {
	CoverTitle    ParagraphStyle
	CoverSubtitle ParagraphStyle
	BodyJustified ParagraphStyle
	SectionHead   ParagraphStyle
	Caption       ParagraphStyle
}

func defaultStyles() StyleSheet {
	return StyleSheet{
		CoverTitle: ParagraphStyle{
			FontFamily: "Helvetica",
			FontStyle:  "B",
			FontSize:   28,
			Leading:    34,
			Align:      "C",
			Color:      black,
			SpaceAfter: 20,
		},
		CoverSubtitle: ParagraphStyle{
			FontFamily: "Helvetica",
			FontStyle:  "B",
			FontSize:   16,
			Leading:    20,
			Align:      "C",
			Color:      subtitleGrey,
			SpaceAfter: 40,
		},
		BodyJustified: ParagraphStyle{
			FontFamily: "Helvetica",
			FontSize:   11,
			Leading:    15,
			Align:      "J",
			Color:      black,
			SpaceAfter: 12,
		},
		SectionHead: ParagraphStyle{
			FontFamily:  "Helvetica",
			FontStyle:   "B",
			FontSize:    16,
			Leading:     20,
			Align:       "L",
			Color:       black,
			SpaceBefore: 20,
			SpaceAfter:  10,
		},
		Caption: ParagraphStyle{
			FontFamily:  "Helvetica",
			FontSize:    10,
			Leading:     12,
			Align:       "C",
			Color:       captionGrey,
			SpaceBefore: 6,
			SpaceAfter:  16,
		},
	}
}
