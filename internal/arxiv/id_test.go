// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantBase    string
		wantVersion int
		wantOK      bool
	}{
		{"modern bare", "2301.07041", "2301.07041", 0, true},
		{"modern five digit", "2301.12345", "2301.12345", 0, true},
		{"modern versioned", "1706.03762v7", "1706.03762", 7, true},
		{"legacy bare", "cond-mat/9709123", "cond-mat/9709123", 0, true},
		{"legacy versioned", "hep-th/9901001v2", "hep-th/9901001", 2, true},
		{"legacy dotted archive", "math.GT/0309136", "math.gt/0309136", 0, true},
		{"uppercase lowered", "COND-MAT/9709123", "cond-mat/9709123", 0, true},
		{"whitespace trimmed", "  2301.07041  ", "2301.07041", 0, true},
		{"abs url", "https://arxiv.org/abs/2301.07041", "2301.07041", 0, true},
		{"abs url versioned", "https://arxiv.org/abs/1706.03762v7", "1706.03762", 7, true},
		{"abs url www host", "https://www.arxiv.org/abs/2301.07041", "2301.07041", 0, true},
		{"abs url http scheme", "http://arxiv.org/abs/2301.07041v1", "2301.07041", 1, true},
		{"abs url mixed-case host", "https://ArXiv.ORG/abs/2301.07041", "2301.07041", 0, true},
		{"abs url legacy id", "https://arxiv.org/abs/cond-mat/9709123v2", "cond-mat/9709123", 2, true},
		{"pdf url", "https://arxiv.org/pdf/2301.07041.pdf", "2301.07041", 0, true},
		{"pdf url no extension", "https://arxiv.org/pdf/2301.07041", "2301.07041", 0, true},
		{"pdf url versioned", "https://arxiv.org/pdf/1706.03762v7.pdf", "1706.03762", 7, true},
		{"url trailing slash", "https://arxiv.org/abs/2301.07041/", "2301.07041", 0, true},

		{"empty", "", "", 0, false},
		{"whitespace only", "   ", "", 0, false},
		{"modern three digit suffix", "2301.123", "", 0, false},
		{"modern six digit suffix", "2301.123456", "", 0, false},
		{"legacy six digits", "cond-mat/970912", "", 0, false},
		{"legacy eight digits", "cond-mat/97091234", "", 0, false},
		{"prefixed form", "arXiv:2301.07041", "", 0, false},
		{"malformed suffix", "2301.07041vx", "", 0, false},
		{"trailing junk", "2301.07041 paper", "", 0, false},
		{"wrong host", "https://example.com/abs/2301.07041", "", 0, false},
		{"subdomain host", "https://export.arxiv.org/abs/2301.07041", "", 0, false},
		{"wrong path", "https://arxiv.org/list/cs.LG/2301", "", 0, false},
		{"bare host", "https://arxiv.org/", "", 0, false},
		{"extra path segment", "https://arxiv.org/abs/2301.07041/extra", "", 0, false},
		{"doi", "10.1145/1234567.1234568", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseID(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseID(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if id.Base != tt.wantBase {
				t.Errorf("ParseID(%q) base = %q, want %q", tt.input, id.Base, tt.wantBase)
			}
			if id.Version != tt.wantVersion {
				t.Errorf("ParseID(%q) version = %d, want %d", tt.input, id.Version, tt.wantVersion)
			}
		})
	}
}

func TestParseIDAgreesAcrossWrappings(t *testing.T) {
	// Every accepted wrapping of the same identifier must produce the
	// same base and requested version.
	wrappings := []string{
		"1706.03762v7",
		"https://arxiv.org/abs/1706.03762v7",
		"https://www.arxiv.org/abs/1706.03762v7",
		"https://arxiv.org/pdf/1706.03762v7.pdf",
		"https://arxiv.org/pdf/1706.03762v7",
	}
	for _, input := range wrappings {
		id, ok := ParseID(input)
		if !ok {
			t.Fatalf("ParseID(%q) not ok", input)
		}
		if id.Base != "1706.03762" || id.Version != 7 {
			t.Errorf("ParseID(%q) = %+v, want base 1706.03762 v7", input, id)
		}
	}
}
