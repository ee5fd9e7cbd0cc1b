package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		code        string
		digit       bool
		letter      bool
		wholeDigits bool
		digitFamily bool
		backbone    bool
	}{
		{code: "", digit: false, letter: false, wholeDigits: false, digitFamily: false, backbone: false},
		{code: "A", letter: true, backbone: true},
		{code: "BK", letter: true, backbone: true},
		{code: "A1", letter: true, backbone: true},
		{code: "2", digit: true, wholeDigits: true, digitFamily: true, backbone: true},
		{code: "12", digit: true, wholeDigits: true, digitFamily: true, backbone: true},
		{code: "2A", digit: true, digitFamily: true},
		{code: "12BC", digit: true, digitFamily: true},
		{code: "2a", digit: true},
		{code: "2A1", digit: true},
		{code: "a", backbone: false},
		{code: "+", backbone: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.digit, StartsWithDigit(tt.code), "StartsWithDigit")
			assert.Equal(t, tt.letter, StartsWithLetter(tt.code), "StartsWithLetter")
			assert.Equal(t, tt.wholeDigits, IsWholeDigits(tt.code), "IsWholeDigits")
			assert.Equal(t, tt.digitFamily, IsDigitFamily(tt.code), "IsDigitFamily")
			assert.Equal(t, tt.backbone, IsBackbone(tt.code), "IsBackbone")
		})
	}
}

func TestOf(t *testing.T) {
	assert.Equal(t, ClassExecutive, Of("A"))
	assert.Equal(t, ClassSpecialOrder, Of("7"))
	assert.Equal(t, ClassSubItem, Of("7C"))
	assert.Equal(t, ClassOther, Of(""))
	assert.Equal(t, ClassOther, Of("+3"))
}

func TestIsSubItem(t *testing.T) {
	assert.True(t, IsSubItem("2A"))
	assert.False(t, IsSubItem("2"))
	assert.False(t, IsSubItem("A"))
	assert.False(t, IsSubItem(""))
}
