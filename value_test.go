package textlayout

import "testing"

func TestLayoutValueApproxSizeUsesCapacity(t *testing.T) {
	advances := make([]float32, 2, 10)
	v := LayoutValue{Advances: advances}

	got := v.approxSize()
	want := int64(32) + 10*4
	if got != want {
		t.Fatalf("approxSize() = %d, want %d (sized by capacity, not length)", got, want)
	}
}
