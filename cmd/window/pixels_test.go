package main

import (
	"image/color"
	"testing"

	"github.com/sheikhrachel/go-gol-sim/model"
)

func TestFillPixels(t *testing.T) {
	g, err := model.ParseGrid("#.", ".#")
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, g.Len()*4)
	on := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	off := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	fillPixels(buf, g.Cells(), on, off)

	want := []byte{
		0, 0, 255, 255,
		255, 0, 0, 255,
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d (buf %v)", i, buf[i], want[i], buf)
		}
	}
}
