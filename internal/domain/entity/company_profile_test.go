// Package entity defines the core business entities for the domain layer.
package entity

import "testing"

func TestCompanyProfileCity(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"comma separated address", "Jl. Merdeka No. 1, Bandung, Indonesia", "Bandung"},
		{"space separated address", "Jl. Sudirman Jakarta Selatan", "Jakarta"},
		{"empty address falls back", "", "Kota"},
		{"single token falls back", "Bandung", "Kota"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CompanyProfile{Address: tt.address}
			if got := p.City(); got != tt.want {
				t.Errorf("City() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompanyProfileBankAccountLines(t *testing.T) {
	t.Run("splits newline separated accounts", func(t *testing.T) {
		p := CompanyProfile{BankAccount: "BCA 123456 a.n. Zahra\nMandiri 654321 a.n. Zahra"}
		lines := p.BankAccountLines()
		if len(lines) != 2 {
			t.Fatalf("got %d lines, want 2", len(lines))
		}
		if lines[1] != "Mandiri 654321 a.n. Zahra" {
			t.Errorf("second line = %q", lines[1])
		}
	})

	t.Run("empty account yields nil", func(t *testing.T) {
		p := CompanyProfile{}
		if lines := p.BankAccountLines(); lines != nil {
			t.Errorf("got %v, want nil", lines)
		}
	})
}
