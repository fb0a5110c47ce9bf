package types

import "testing"

func TestCompareOrdersByKindFirst(t *testing.T) {
	r := NewRegistry()
	ri, _ := r.Reference(Int())
	ordered := []Type{Void(), Bool(), Int(), r.Function(nil, Void()), ri, Error()}

	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := compareInt(i, j)
			if got != want {
				t.Errorf("Compare(%s, %s): expected %d, got %d", ordered[i], ordered[j], want, got)
			}
		}
	}
}

func TestCompareFunctionStructure(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		a, b Type
		want int
	}{
		// parameter lists compare lexicographically
		{r.Function([]Type{Bool()}, Int()), r.Function([]Type{Int()}, Int()), -1},
		{r.Function([]Type{Int()}, Int()), r.Function([]Type{Int(), Int()}, Int()), -1},
		{r.Function([]Type{Int(), Bool()}, Int()), r.Function([]Type{Int()}, Int()), 1},
		// then the return type
		{r.Function([]Type{Int()}, Bool()), r.Function([]Type{Int()}, Int()), -1},
		{r.Function([]Type{Int()}, Int()), r.Function([]Type{Int()}, Int()), 0},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%s, %s): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

func TestSameAcrossRegistries(t *testing.T) {
	a := NewRegistry().Function([]Type{Int()}, Bool())
	b := NewRegistry().Function([]Type{Int()}, Bool())
	if a == b {
		t.Error("Expected separate registries to hold separate instances")
	}
	if Compare(a, b) != 0 {
		t.Error("Expected structurally equal types to compare equal")
	}
}
