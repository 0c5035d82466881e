package polyclipping

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestRound(t *testing.T) {
	var tts = []struct {
		v    float64
		want int64
	}{
		{0.0, 0},
		{2.4, 2},
		{2.5, 3}, // half rounds away from zero
		{2.6, 3},
		{-2.4, -2},
		{-2.5, -3},
		{-2.6, -3},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.v), func(t *testing.T) {
			test.T(t, round(tt.v), tt.want)
		})
	}
}

func TestRect64(t *testing.T) {
	r := Rect64{-5, 0, 10, 20}
	test.T(t, r.Width(), int64(15))
	test.T(t, r.Height(), int64(20))
	test.String(t, r.String(), "(-5,0,10,20)")
}
