package catalog

import "testing"

func TestNewRegistryLoadsEmbeddedTaxonomies(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	if len(r.Categories(KindPortfolio)) == 0 {
		t.Errorf("portfolio taxonomy is empty")
	}
	if len(r.Categories(KindBlog)) == 0 {
		t.Errorf("blog taxonomy is empty")
	}
}

func TestRegistryValid(t *testing.T) {
	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	tests := []struct {
		name  string
		kind  Kind
		value string
		want  bool
	}{
		{name: "portfolio known", kind: KindPortfolio, value: "portraits", want: true},
		{name: "portfolio label not value", kind: KindPortfolio, value: "Portraits", want: false},
		{name: "portfolio unknown", kind: KindPortfolio, value: "sculpture", want: false},
		{name: "blog known", kind: KindBlog, value: "Textiles", want: true},
		{name: "blog wrong case", kind: KindBlog, value: "textiles", want: false},
		{name: "kinds do not bleed", kind: KindBlog, value: "portraits", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Valid(tt.kind, tt.value); got != tt.want {
				t.Errorf("Valid(%s, %q) = %v, want %v", tt.kind, tt.value, got, tt.want)
			}
		})
	}
}
