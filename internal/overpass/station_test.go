package overpass

import "testing"

func TestNearestEmpty(t *testing.T) {
	if _, ok := Nearest(nil); ok {
		t.Error("Nearest(nil) should report no station")
	}
	if _, ok := Nearest([]Station{}); ok {
		t.Error("Nearest of empty slice should report no station")
	}
}

func TestNearestReturnsFirst(t *testing.T) {
	s1 := Station{ID: 1, Name: "Close", DistanceMiles: 0.4}
	s2 := Station{ID: 2, Name: "Far", DistanceMiles: 2.1}

	got, ok := Nearest([]Station{s1, s2})
	if !ok {
		t.Fatal("expected a station")
	}
	if got.ID != s1.ID {
		t.Errorf("Nearest returned station %d, want %d", got.ID, s1.ID)
	}
}
