package productimage

import (
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestSelectIcon(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{"Wireless Headphones", "electronics", "headphones"},
		{"Gaming headset", "general", "headphones"},
		{"27in Monitor", "electronics", "monitor"},
		{"Blue Jeans", "clothes", "pants"},
		{"Wool Sweater", "clothes", "top"},
		{"Notebook", "books", "book"},
		// first group wins
		{"Headphone stand for monitor", "general", "headphones"},
		{"Laptop", "Electronics", "category-electronics"},
		{"Calculus", "books", "category-books"},
		{"Hoodie", "CLOTHES", "category-clothes"},
		{"Unbranded Widget", "unknown-category", "generic"},
		{"", "", "generic"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectIcon(tt.name, tt.category).Name, tt.name)
	}
}

func TestIconRender(t *testing.T) {
	out := SelectIcon("Unbranded Widget", "unknown-category").Render("#123456")
	assert.Assert(t, strings.Contains(out, `fill="#123456"`))
	assert.Assert(t, strings.Contains(out, ">?</text>"))
	assert.Assert(t, !strings.Contains(out, "{color}"))
}
