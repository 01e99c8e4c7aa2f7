package matchmaking

import "testing"

func TestSkillMatchScore(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"both empty", nil, nil, 0},
		{"one empty", []string{"go"}, nil, 0},
		{"identical", []string{"go", "sql"}, []string{"go", "sql"}, 100},
		{"disjoint", []string{"go"}, []string{"rust"}, 0},
		{"half of smaller", []string{"go", "sql"}, []string{"GO", "rust", "js"}, 50},
		{"smaller fully contained", []string{"go"}, []string{"go", "rust", "js"}, 100},
		{"case and whitespace", []string{" Go ", "SQL"}, []string{"go", "sql "}, 100},
		{"duplicates collapse", []string{"go", "go"}, []string{"go", "rust"}, 100},
		{"whitespace only entries", []string{"  "}, []string{"go"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkillMatchScore(tt.a, tt.b); got != tt.want {
				t.Fatalf("SkillMatchScore(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
