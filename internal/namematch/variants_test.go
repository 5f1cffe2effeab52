package namematch

import (
	"reflect"
	"testing"
)

func TestVariants_InputAlwaysFirst(t *testing.T) {
	inputs := []string{"jon jones", "jonathan dwight jones", "khabib", "dan lee"}
	for _, in := range inputs {
		got := Variants(in)
		if len(got) == 0 || got[0] != in {
			t.Errorf("Variants(%q) = %v, want input as first element", in, got)
		}
	}
}

func TestVariants(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{
			// Middle name dropped, long surname added alone.
			in:   "jonathan dwight jones",
			want: []string{"jonathan dwight jones", "jonathan jones", "jones", "jon dwight jones", "jon jones"},
		},
		{
			// Short surname is not emitted alone.
			in:   "dan lee",
			want: []string{"dan lee", "daniel lee"},
		},
		{
			// Single token: nothing to expand.
			in:   "khabib",
			want: []string{"khabib"},
		},
		{
			// Reverse nickname direction, both alias forms collapse to one.
			in:   "mike perry",
			want: []string{"mike perry", "perry", "michael perry"},
		},
	}
	for _, tt := range tests {
		got := Variants(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Variants(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVariants_NoDuplicates(t *testing.T) {
	got := Variants("william billy johnson")
	seen := make(map[string]int)
	for _, v := range got {
		seen[v]++
		if seen[v] > 1 {
			t.Errorf("Variants produced duplicate %q in %v", v, got)
		}
	}
}
