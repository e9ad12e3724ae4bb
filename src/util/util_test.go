package util

import "testing"

func TestStringWidth(t *testing.T) {
	assert := func(s string, expected int) {
		if w := StringWidth(s); w != expected {
			t.Errorf("%q: expected %d, got %d", s, expected, w)
		}
	}

	assert("", 0)
	assert("abc", 3)
	assert("한글", 4)
	assert("🌈", 2)
}

func TestMaxMin(t *testing.T) {
	if Max(-2, 5) != 5 || Max(2, 1) != 2 {
		t.Error("Max")
	}
	if Min(-2, 5) != -2 || Min(2, 1) != 1 {
		t.Error("Min")
	}
}
