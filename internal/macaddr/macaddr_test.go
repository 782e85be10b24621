package macaddr

import (
	"errors"
	"testing"
)

func TestNormalizeColonUppercase(t *testing.T) {
	mac, err := Normalize("AA:BB:CC:DD:EE:FF")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if mac.String() != "aa:bb:cc:dd:ee:ff" {
		t.Errorf("Normalize = %q, want %q", mac, "aa:bb:cc:dd:ee:ff")
	}
}

func TestNormalizeDashSeparated(t *testing.T) {
	mac, err := Normalize("aa-bb-cc-11-22-33")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if mac.String() != "aa:bb:cc:11:22:33" {
		t.Errorf("Normalize = %q, want %q", mac, "aa:bb:cc:11:22:33")
	}
}

func TestNormalizeNoSeparator(t *testing.T) {
	mac, err := Normalize("AABBCCDDEEFF")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if mac.String() != "aa:bb:cc:dd:ee:ff" {
		t.Errorf("Normalize = %q, want %q", mac, "aa:bb:cc:dd:ee:ff")
	}
}

func TestNormalizeSpaceSeparated(t *testing.T) {
	mac, err := Normalize("aa bb cc dd ee ff")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if mac.String() != "aa:bb:cc:dd:ee:ff" {
		t.Errorf("Normalize = %q, want %q", mac, "aa:bb:cc:dd:ee:ff")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	// 正規形を再入力しても同じ結果になる
	mac1, err := Normalize("Aa:Bb:Cc:Dd:Ee:Ff")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	mac2, err := Normalize(mac1.String())
	if err != nil {
		t.Fatalf("Normalize(canonical) error: %v", err)
	}
	if mac1 != mac2 {
		t.Errorf("Normalize not idempotent: %q != %q", mac1, mac2)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	_, err := Normalize("")
	if !errors.Is(err, ErrInvalidMac) {
		t.Errorf("Normalize(\"\") error = %v, want ErrInvalidMac", err)
	}
}

func TestNormalizeTooShort(t *testing.T) {
	// 除去後11文字
	_, err := Normalize("AA:BB:CC:DD:EE")
	if !errors.Is(err, ErrInvalidMac) {
		t.Errorf("error = %v, want ErrInvalidMac", err)
	}
}

func TestNormalizeTooLong(t *testing.T) {
	_, err := Normalize("aa:bb:cc:dd:ee:ff:00")
	if !errors.Is(err, ErrInvalidMac) {
		t.Errorf("error = %v, want ErrInvalidMac", err)
	}
}

func TestNormalizeNonHex(t *testing.T) {
	// 12文字だが16進ではない
	_, err := Normalize("gg:hh:ii:jj:kk:ll")
	if !errors.Is(err, ErrInvalidMac) {
		t.Errorf("error = %v, want ErrInvalidMac", err)
	}
}

func TestNormalizeGarbage(t *testing.T) {
	_, err := Normalize("invalid-mac")
	if !errors.Is(err, ErrInvalidMac) {
		t.Errorf("error = %v, want ErrInvalidMac", err)
	}
}

func TestPrefix(t *testing.T) {
	mac, err := Normalize("aa:bb:cc:dd:ee:ff")
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if mac.Prefix() != "aa:bb:cc" {
		t.Errorf("Prefix = %q, want %q", mac.Prefix(), "aa:bb:cc")
	}
}
