package session

import "testing"

func TestNewToken(t *testing.T) {
	first, err := NewToken()
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	second, err := NewToken()
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct tokens")
	}
	if len(first) == 0 {
		t.Fatalf("expected non-empty token")
	}
}

func TestHashToken(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Fatalf("expected stable hash")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Fatalf("expected different hashes for different tokens")
	}
	if HashToken("abc") == "abc" {
		t.Fatalf("expected hash to differ from token")
	}
}
