package ui

import (
	"testing"
	"unicode/utf8"
)

func TestBannerBlock(t *testing.T) {
	b := BannerBlock()
	if len(b) != 6 {
		t.Fatalf("BannerBlock() has %d rows, want 6", len(b))
	}
	for i, row := range b {
		if utf8.RuneCountInString(row) == 0 {
			t.Fatalf("row %d is empty", i)
		}
	}
}
