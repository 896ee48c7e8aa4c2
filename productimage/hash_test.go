package productimage

import (
	"testing"

	"gotest.tools/assert"

	"camptrade/models"
)

func TestHash(t *testing.T) {
	assert.Equal(t, int64(0), Hash(""))
	assert.Equal(t, int64(97), Hash("a"))
	assert.Equal(t, int64(3105), Hash("ab"))
	assert.Equal(t, int64(1794106052), Hash("hello world"))
	// wraps negative before the absolute value is taken
	assert.Equal(t, int64(609428141), Hash("The quick brown fox jumps over the lazy dog"))
	// surrogate pairs count as two code units
	assert.Equal(t, int64(1772899), Hash("😀"))

	for _, s := range []string{"", "Wireless Headphones", "Used Lamp-general-1", "ñandú"} {
		assert.Assert(t, Hash(s) >= 0)
		assert.Equal(t, Hash(s), Hash(s))
	}
}

func TestGradientID(t *testing.T) {
	p := models.Product{Id: "42", Name: "Wireless Headphones", Category: "electronics"}
	assert.Equal(t, "bg-3gmoca", GradientID(p))

	p.Id = "43"
	assert.Assert(t, GradientID(p) != "bg-3gmoca")
}
