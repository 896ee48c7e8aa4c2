package productimage

import (
	"strconv"
	"unicode/utf16"

	"camptrade/models"
)

// Hash is a polynomial rolling hash over the UTF-16 code units of s,
// wrapped to 32 bits and made non-negative. Only used for cosmetic seeds.
func Hash(s string) int64 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

func seed(p models.Product) string {
	return p.Name + "-" + p.Category + "-" + p.Id
}

// GradientID names the background gradient so several images can share a page.
func GradientID(p models.Product) string {
	return "bg-" + strconv.FormatInt(Hash(seed(p)), 36)
}
