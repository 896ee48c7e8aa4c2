package productimage

import (
	"encoding/base64"
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode/utf8"

	"camptrade/models"
	"camptrade/utils"
)

const (
	maxTitleLen = 25
	ellipsis    = "…"

	base64Prefix  = "data:image/svg+xml;base64,"
	encodedPrefix = "data:image/svg+xml;charset=utf-8,"
)

const svgTemplate = `<svg width="400" height="400" viewBox="0 0 400 400" fill="none" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="%[1]s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
      <stop offset="0%%" style="stop-color:%[2]s;stop-opacity:0.05" />
      <stop offset="100%%" style="stop-color:%[3]s;stop-opacity:0.1" />
    </linearGradient>
  </defs>
  <rect width="400" height="400" fill="url(#%[1]s)" />
  <rect x="50" y="50" width="300" height="300" fill="white" stroke="%[2]s" stroke-width="3" rx="16" />
  %[4]s
  <text x="200" y="320" text-anchor="middle" font-family="Arial, sans-serif" font-size="16" font-weight="bold" fill="%[3]s">%[5]s</text>
  <text x="200" y="340" text-anchor="middle" font-family="Arial, sans-serif" font-size="14" font-weight="600" fill="%[2]s">Rs %[6]s</text>
  <rect x="60" y="60" width="90" height="28" fill="%[2]s" rx="14" />
  <text x="105" y="78" text-anchor="middle" font-family="Arial, sans-serif" font-size="11" font-weight="bold" fill="white">%[7]s</text>
</svg>`

// SVG renders the 400x400 product card.
func SVG(p models.Product) string {
	style := StyleFor(p.Category)
	icon := SelectIcon(p.Name, p.Category).Render(style.Primary)

	return fmt.Sprintf(svgTemplate,
		GradientID(p),
		style.Primary,
		style.Secondary,
		icon,
		html.EscapeString(Title(p.Name)),
		FormatPrice(p.Price),
		html.EscapeString(strings.ToUpper(p.Category)),
	)
}

// DataURI returns the card as a self-contained image locator. Text that is
// not valid UTF-8 cannot go through base64 as UTF-8 and is percent-encoded instead.
func DataURI(p models.Product) string {
	svg := SVG(p)
	if !utf8.ValidString(svg) {
		return encodedPrefix + utils.EncodeURIComponent(svg)
	}
	return base64Prefix + base64.StdEncoding.EncodeToString([]byte(svg))
}

// Title cuts names longer than 25 characters and appends an ellipsis.
func Title(name string) string {
	r := []rune(name)
	if len(r) <= maxTitleLen {
		return name
	}
	return string(r[:maxTitleLen]) + ellipsis
}

// FormatPrice prints the shortest representation, without trailing zeros.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
