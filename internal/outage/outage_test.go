package outage

import "testing"

func TestTypePageParam(t *testing.T) {
	if got := TypePlanned.PageParam(); got != "planowane" {
		t.Errorf("TypePlanned.PageParam() = %q, want %q", got, "planowane")
	}
	if got := TypeUnplanned.PageParam(); got != "awarie" {
		t.Errorf("TypeUnplanned.PageParam() = %q, want %q", got, "awarie")
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{"planned", TypePlanned, false},
		{"unplanned", TypeUnplanned, false},
		{"", "", true},
		{"PLANNED", "", true},
		{"awarie", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseType(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
