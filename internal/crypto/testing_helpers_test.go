package crypto

import (
	"testing"

	"github.com/MKhiriev/go-page-guard/internal/config"
)

// testCryptoConfig keeps Argon2 cheap so the suite stays fast.
func testCryptoConfig() config.Crypto {
	return config.Crypto{
		MasterSecret:      "test-master-secret-0123456789",
		KDFTime:           1,
		KDFMemoryKiB:      1024,
		KDFThreads:        1,
		PasswordTime:      1,
		PasswordMemoryKiB: 1024,
	}
}

func newTestVault(t *testing.T) Vault {
	t.Helper()
	km, err := NewKeyManager(testCryptoConfig())
	if err != nil {
		t.Fatalf("NewKeyManager error: %v", err)
	}
	return NewVault(km, testKeyContexts...)
}

var testKeyContexts = []string{"accounts", "billing"}
