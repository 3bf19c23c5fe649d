package domain_test

import (
	"errors"
	"slices"
	"testing"

	"go.trai.ch/lode/internal/core/domain"
)

func TestParseInheritance(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Inheritance
		wantErr bool
	}{
		{"", domain.InheritanceComplete, false},
		{"complete", domain.InheritanceComplete, false},
		{"None", domain.InheritanceNone, false},
		{"search_paths", domain.InheritanceSearchPaths, false},
		{"partial", "", true},
	}

	for _, tt := range tests {
		got, err := domain.ParseInheritance(tt.in)
		if tt.wantErr {
			if !errors.Is(err, domain.ErrInvalidInheritance) {
				t.Errorf("ParseInheritance(%q) error = %v, want ErrInvalidInheritance", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseInheritance(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseInheritance(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTargetDefinition_Dependencies(t *testing.T) {
	alamofire := domain.NewDependency("Alamofire", "~> 5.0", "")
	kit := domain.NewDependency("Kit", "", "")
	quick := domain.NewDependency("Quick", "", "")

	root := domain.NewTargetDefinition("Root", true, "")
	root.AddDependency(kit)

	app := domain.NewTargetDefinition("App", false, domain.InheritanceComplete)
	app.AddDependency(alamofire)
	root.AddChild(app)

	tests := domain.NewTargetDefinition("AppTests", false, domain.InheritanceSearchPaths)
	tests.AddDependency(quick)
	app.AddChild(tests)

	ui := domain.NewTargetDefinition("AppUITests", false, domain.InheritanceComplete)
	ui.AddDependency(kit)
	app.AddChild(ui)

	cases := []struct {
		target *domain.TargetDefinition
		want   []domain.Dependency
	}{
		{root, []domain.Dependency{kit}},
		{app, []domain.Dependency{alamofire, kit}},
		{tests, []domain.Dependency{quick}},
		{ui, []domain.Dependency{kit, alamofire, kit}},
	}

	for _, c := range cases {
		got, err := c.target.Dependencies()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.target.Label(), err)
		}
		if !slices.Equal(got, c.want) {
			t.Errorf("%s: got %v, want %v", c.target.Label(), got, c.want)
		}
	}

	if ui.Label() != "Root/App/AppUITests" {
		t.Errorf("unexpected label %q", ui.Label())
	}
	if !tests.IsExclusive() || ui.IsExclusive() || !root.IsExclusive() {
		t.Error("unexpected exclusivity")
	}
}

func TestTargetDefinition_ReturnsCopies(t *testing.T) {
	root := domain.NewTargetDefinition("Root", true, "")
	root.AddDependency(domain.NewDependency("Kit", "", ""))

	deps, err := root.Dependencies()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deps[0] = domain.NewDependency("Other", "", "")

	again, _ := root.Dependencies()
	if again[0].Name.String() != "Kit" {
		t.Errorf("mutating the returned slice changed the target: %v", again)
	}
}
