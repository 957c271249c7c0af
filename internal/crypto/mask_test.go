package crypto

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-page-guard/models"
)

func TestMask_Email(t *testing.T) {
	got := Mask("jane.doe@example.com", models.MaskEmail)

	if !strings.HasPrefix(got, "ja") {
		t.Fatalf("masked email %q must start with \"ja\"", got)
	}
	if !strings.HasSuffix(got, "@example.com") {
		t.Fatalf("masked email %q must end with \"@example.com\"", got)
	}
	if strings.Contains(got, "doe") {
		t.Fatalf("masked email %q leaks the local part", got)
	}
}

func TestMask_Card(t *testing.T) {
	got := Mask("4111111111111111", models.MaskCard)

	if got != "**** **** **** 1111" {
		t.Fatalf("Mask = %q", got)
	}
	if strings.Count(got, "1") != 4 {
		t.Fatalf("masked card %q exposes more than the last four digits", got)
	}
}

func TestMask_Table(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  models.MaskKind
		want  string
	}{
		{"short local part", "j@example.com", models.MaskEmail, "j***@example.com"},
		{"email without at", "not-an-email", models.MaskEmail, fullMask},
		{"email without local part", "@example.com", models.MaskEmail, fullMask},
		{"email without domain", "jane@", models.MaskEmail, fullMask},
		{"card with dashes", "4000-1234-5678-9010", models.MaskCard, "**** **** **** 9010"},
		{"card with letters", "4000-12ab-5678-9010", models.MaskCard, fullMask},
		{"account", "DE-12 3456 7890", models.MaskAccount, fullMask},
		{"account digits", "1234567890", models.MaskAccount, "****7890"},
		{"account too short", "123", models.MaskAccount, fullMask},
		{"unknown kind", "1234567890", models.MaskKind("phone"), fullMask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mask(tt.input, tt.kind); got != tt.want {
				t.Fatalf("Mask(%q, %q) = %q, want %q", tt.input, tt.kind, got, tt.want)
			}
		})
	}
}
