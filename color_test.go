package ico2svg

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor_ParseBackground(t *testing.T) {
	testCases := []struct {
		in       string
		expected color.NRGBA
	}{
		{in: "white", expected: white},
		{in: "Red", expected: red},
		{in: "cornflowerblue", expected: color.NRGBA{R: 100, G: 149, B: 237, A: 0xff}},
		{in: "#0000ff", expected: blue},
		{in: "#00F", expected: blue},
		{in: "ff0000", expected: red},
		{in: " #102030 ", expected: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			bg, err := ParseBackground(tc.in)
			require.NoError(t, err)
			require.NotNil(t, bg)
			assert.Equal(t, tc.expected, bg.NRGBA)
		})
	}
}

func TestColor_TransparentBackground(t *testing.T) {
	for _, in := range []string{"", "transparent", "TRANSPARENT"} {
		bg, err := ParseBackground(in)
		require.NoError(t, err)
		assert.Nil(t, bg)
	}
}

func TestColor_InvalidBackground(t *testing.T) {
	for _, in := range []string{"notacolor", "#12345", "#ggg", "rgb(1,2,3)"} {
		_, err := ParseBackground(in)
		require.Error(t, err, in)

		var verr *ValidationError
		assert.True(t, errors.As(err, &verr), in)
	}
}

func TestColor_Hex(t *testing.T) {
	bg := &Background{color.NRGBA{R: 0xab, G: 0x01, B: 0xff, A: 0xff}}
	assert.Equal(t, "#ab01ff", bg.Hex())
}
