package output

import "testing"

func TestQuoteJoin(t *testing.T) {
	tests := []struct {
		name     string
		fields   []string
		expected string
	}{
		{"single field", []string{"scenario"}, `"scenario"`},
		{"multiple fields", []string{"a", "b", "c"}, `"a","b","c"`},
		{"empty field", []string{"a", "", "c"}, `"a","","c"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := quoteJoin(tt.fields); result != tt.expected {
				t.Errorf("quoteJoin(%v) = %s, expected %s", tt.fields, result, tt.expected)
			}
		})
	}
}
