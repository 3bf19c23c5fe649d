package domain_test

import (
	"testing"

	"go.trai.ch/lode/internal/core/domain"
)

func TestDependency_Equality(t *testing.T) {
	a := domain.NewDependency("Alamofire", "~> 5.0", "")
	b := domain.NewDependency("Alamofire", "~> 5.0", "")
	c := domain.NewDependency("Alamofire", "~> 4.0", "")

	if a != b {
		t.Error("Expected declarations with equal fields to be equal")
	}
	if a == c {
		t.Error("Expected declarations with different requirements to differ")
	}

	// Zero-value fields and interned empty strings must agree.
	literal := domain.Dependency{Name: domain.NewInternedString("Kit")}
	if literal != domain.NewDependency("Kit", "", "") {
		t.Error("Expected literal and constructed declarations to be equal")
	}

	seen := map[domain.Dependency]int{a: 1}
	if seen[b] != 1 {
		t.Error("Expected equal declarations to share a map key")
	}
}

func TestDependency_String(t *testing.T) {
	tests := []struct {
		name string
		dep  domain.Dependency
		want string
	}{
		{"name only", domain.NewDependency("Kit", "", ""), "Kit"},
		{"with requirement", domain.NewDependency("Alamofire", "~> 5.0", ""), "Alamofire (~> 5.0)"},
		{
			"with source",
			domain.NewDependency("Kit", "= 1.0", "https://example.com/specs.git"),
			"Kit (= 1.0) from https://example.com/specs.git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dep.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
