package domain_test

import (
	"testing"

	"viaduct/internal/domain"
)

func TestVersionOrdering(t *testing.T) {
	v16 := domain.NewVersion(16, "1.16")
	v18 := domain.NewVersion(18, "1.18")
	v18b := domain.NewVersion(18, "1.18-pre")

	if !v18.HigherThan(v16) || v18.LowerThan(v16) {
		t.Fatal("1.18 must compare strictly higher than 1.16")
	}
	if !v16.LowerThan(v18) || v16.HigherThan(v18) {
		t.Fatal("1.16 must compare strictly lower than 1.18")
	}
	if v18.HigherThan(v18b) || v18.LowerThan(v18b) {
		t.Fatal("versions with equal ids must compare neither higher nor lower")
	}
	if !v18.Equals(v18b) {
		t.Fatal("versions with equal ids must be equal")
	}
}

func TestVersionZeroValue(t *testing.T) {
	if domain.Unknown.Known() {
		t.Fatal("zero version must be unknown")
	}
	if !domain.NewVersion(16, "1.16").Known() {
		t.Fatal("constructed version must be known")
	}
}

func TestVersionString(t *testing.T) {
	if got := domain.NewVersion(16, "1.16").String(); got != "1.16 (16)" {
		t.Fatalf("unexpected named rendering: %q", got)
	}
	if got := domain.NewVersion(16, "").String(); got != "v16" {
		t.Fatalf("unexpected unnamed rendering: %q", got)
	}
}
