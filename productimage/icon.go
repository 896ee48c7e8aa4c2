package productimage

import "strings"

type Icon struct {
	Name   string
	markup string
}

// Render fills the icon's fill and stroke colour.
func (i Icon) Render(color string) string {
	return strings.ReplaceAll(i.markup, "{color}", color)
}

type keywordIcon struct {
	keywords []string
	icon     Icon
}

var keywordIcons = []keywordIcon{
	{
		keywords: []string{"headphone", "headset"},
		icon: Icon{Name: "headphones", markup: `<g transform="translate(200, 200)">
    <circle cx="0" cy="-20" r="25" fill="{color}" />
    <rect x="-15" y="-35" width="30" height="20" fill="white" rx="10" />
    <rect x="-5" y="-15" width="10" height="30" fill="{color}" />
    <rect x="-8" y="15" width="16" height="8" fill="{color}" rx="4" />
  </g>`},
	},
	{
		keywords: []string{"monitor", "screen"},
		icon: Icon{Name: "monitor", markup: `<g transform="translate(200, 200)">
    <rect x="-40" y="-25" width="80" height="50" fill="{color}" rx="4" />
    <rect x="-35" y="-20" width="70" height="40" fill="white" rx="2" />
    <rect x="-5" y="25" width="10" height="15" fill="{color}" />
    <rect x="-15" y="40" width="30" height="5" fill="{color}" rx="2" />
  </g>`},
	},
	{
		keywords: []string{"jeans", "pants"},
		icon: Icon{Name: "pants", markup: `<g transform="translate(200, 200)">
    <rect x="-20" y="-30" width="40" height="60" fill="{color}" rx="5" />
    <rect x="-15" y="-25" width="30" height="50" fill="white" rx="3" />
    <rect x="-10" y="-20" width="20" height="8" fill="{color}" />
    <rect x="-8" y="-10" width="16" height="4" fill="{color}" />
    <rect x="-6" y="0" width="12" height="4" fill="{color}" />
  </g>`},
	},
	{
		keywords: []string{"sweater", "shirt", "dress"},
		icon: Icon{Name: "top", markup: `<g transform="translate(200, 200)">
    <path d="M-25 -20 L0 -30 L25 -20 L25 20 L0 30 L-25 20 Z" fill="{color}" />
    <path d="M-20 -15 L0 -25 L20 -15 L20 15 L0 25 L-20 15 Z" fill="white" />
    <circle cx="0" cy="-5" r="8" fill="{color}" />
    <rect x="-3" y="5" width="6" height="8" fill="{color}" />
  </g>`},
	},
	{
		keywords: []string{"book"},
		icon: Icon{Name: "book", markup: `<g transform="translate(200, 200)">
    <rect x="-30" y="-25" width="60" height="50" fill="{color}" rx="2" />
    <rect x="-25" y="-20" width="50" height="40" fill="white" />
    <line x1="-20" y1="-10" x2="20" y2="-10" stroke="{color}" stroke-width="1" />
    <line x1="-20" y1="0" x2="20" y2="0" stroke="{color}" stroke-width="1" />
    <line x1="-20" y1="10" x2="20" y2="10" stroke="{color}" stroke-width="1" />
  </g>`},
	},
}

var categoryIcons = map[string]Icon{
	"electronics": {Name: "category-electronics", markup: `<rect x="170" y="150" width="60" height="40" fill="{color}" rx="4" />
  <rect x="175" y="155" width="50" height="30" fill="white" rx="2" />
  <circle cx="200" cy="170" r="8" fill="{color}" />`},
	"books": {Name: "category-books", markup: `<rect x="170" y="150" width="60" height="80" fill="{color}" rx="2" />
  <rect x="175" y="155" width="50" height="70" fill="white" />
  <line x1="180" y1="170" x2="220" y2="170" stroke="{color}" stroke-width="1" />
  <line x1="180" y1="185" x2="220" y2="185" stroke="{color}" stroke-width="1" />
  <line x1="180" y1="200" x2="220" y2="200" stroke="{color}" stroke-width="1" />`},
	"clothes": {Name: "category-clothes", markup: `<path d="M170 150 L200 130 L230 150 L230 200 L200 220 L170 200 Z" fill="{color}" />
  <circle cx="200" cy="160" r="15" fill="white" />
  <path d="M185 175 L215 175" stroke="white" stroke-width="2" />
  <path d="M185 185 L215 185" stroke="white" stroke-width="2" />`},
}

var genericIcon = Icon{Name: "generic", markup: `<circle cx="200" cy="170" r="20" fill="{color}" />
  <text x="200" y="175" text-anchor="middle" font-family="Arial, sans-serif" font-size="16" font-weight="bold" fill="white">?</text>`}

// SelectIcon matches the lowercased name against the keyword groups in order,
// then falls back to the category icon and finally the "?" glyph.
func SelectIcon(name, category string) Icon {
	lower := strings.ToLower(name)
	for _, k := range keywordIcons {
		for _, kw := range k.keywords {
			if strings.Contains(lower, kw) {
				return k.icon
			}
		}
	}

	if icon, ok := categoryIcons[strings.ToLower(category)]; ok {
		return icon
	}
	return genericIcon
}
