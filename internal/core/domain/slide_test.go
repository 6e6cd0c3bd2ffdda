package domain

import "testing"

func TestNewSlide_KeepsPositiveDuration(t *testing.T) {
	s := NewSlide("1.jpg", 12.5)
	if s.Filename != "1.jpg" {
		t.Errorf("expected filename 1.jpg, got %q", s.Filename)
	}
	if s.DurationSeconds != 12.5 {
		t.Errorf("expected duration 12.5, got %v", s.DurationSeconds)
	}
}

func TestNewSlide_DefaultsNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -1, -0.5} {
		s := NewSlide("2.jpg", d)
		if s.DurationSeconds != DefaultSlideDuration {
			t.Errorf("NewSlide with duration %v: expected default %v, got %v",
				d, DefaultSlideDuration, s.DurationSeconds)
		}
	}
}
