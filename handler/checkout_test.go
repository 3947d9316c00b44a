package handler

import (
	"strings"
	"testing"
)

func TestGenerateOrderCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := generateOrderCode()
		if !strings.HasPrefix(code, "PED-") || len(code) != 10 {
			t.Fatalf("código fora do formato PED-XXXXXX: %q", code)
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("código deveria ser maiúsculo: %q", code)
		}
		if seen[code] {
			t.Fatalf("código repetido em 100 gerações: %q", code)
		}
		seen[code] = true
	}
}

func TestParseChangeFor(t *testing.T) {
	// cenário típico: pizza R$ 50 + entrega R$ 5
	const total = 55.0

	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{"cobre o total", "60", 60, false},
		{"vírgula decimal", "60,50", 60.50, false},
		{"exatamente o total", "55", 55, false},
		{"abaixo do total", "40", 0, true},
		{"não numérico", "sessenta", 0, true},
		{"vazio", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseChangeFor(tt.raw, total)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseChangeFor(%q) deveria falhar", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseChangeFor(%q) erro inesperado: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("parseChangeFor(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseChangeForInsufficientMentionsTotal(t *testing.T) {
	_, err := parseChangeFor("40", 55)
	if err == nil {
		t.Fatal("esperava erro de valor insuficiente")
	}
	if !strings.Contains(err.Error(), "55.00") {
		t.Errorf("mensagem deveria citar o total do pedido: %q", err.Error())
	}
}

func TestBuildOrderNotes(t *testing.T) {
	sixty := 60.0

	tests := []struct {
		name      string
		notes     string
		changeFor *float64
		total     float64
		want      string
	}{
		{"sem troco mantém observações", "sem cebola", nil, 55, "sem cebola"},
		{"troco sem observações", "", &sixty, 55, "Troco para R$ 60.00 (troco: R$ 5.00)"},
		{"troco anexado às observações", "sem cebola", &sixty, 55, "sem cebola | Troco para R$ 60.00 (troco: R$ 5.00)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildOrderNotes(tt.notes, tt.changeFor, tt.total); got != tt.want {
				t.Errorf("buildOrderNotes() = %q, want %q", got, tt.want)
			}
		})
	}
}
