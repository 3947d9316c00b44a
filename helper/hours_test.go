package helper

import "testing"

func TestWithinOpeningHours(t *testing.T) {
	tests := []struct {
		name    string
		now     string
		opening string
		closing string
		want    bool
	}{
		{"dentro da janela diurna", "12:00", "11:00", "23:00", true},
		{"antes de abrir", "10:59", "11:00", "23:00", false},
		{"abertura é inclusiva", "11:00", "11:00", "23:00", true},
		{"fechamento é exclusivo", "23:00", "11:00", "23:00", false},

		// janela que cruza a meia-noite (18:00–02:00)
		{"noite, antes da meia-noite", "22:30", "18:00", "02:00", true},
		{"madrugada, depois da meia-noite", "01:30", "18:00", "02:00", true},
		{"tarde, fora da janela noturna", "15:00", "18:00", "02:00", false},
		{"fechou às duas", "02:00", "18:00", "02:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withinOpeningHours(tt.now, tt.opening, tt.closing); got != tt.want {
				t.Errorf("withinOpeningHours(%q, %q, %q) = %v, want %v", tt.now, tt.opening, tt.closing, got, tt.want)
			}
		})
	}
}
