package contact

import "testing"

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"empty list", nil, "0"},
		{"single numeric id", []string{"0"}, "1"},
		{"mixed numeric and junk", []string{"2", "5", "x", "9"}, "10"},
		{"no numeric ids", []string{"a", "b"}, "0"},
		{"unordered ids", []string{"7", "3", "12"}, "13"},
		{"duplicate max", []string{"4", "4"}, "5"},
		{"empty string id skipped", []string{"", "2"}, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts := make([]Contact, len(tt.ids))
			for i, id := range tt.ids {
				contacts[i] = Contact{ID: id}
			}
			if got := NextID(contacts); got != tt.want {
				t.Errorf("NextID(%v) = %q, want %q", tt.ids, got, tt.want)
			}
		})
	}
}
