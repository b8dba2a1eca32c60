package rollout

import (
	"testing"

	"github.com/goccy/go-yaml"
)

func TestEligible(t *testing.T) {
	dev := &DeviceAttributes{Platform: "android", AppVersion: "2.0.0"}
	rules := &RuleSet{
		Match: MatchAll,
		Rules: []Rule{{Field: "platform", Op: OpEq, Value: NewValue("android")}},
	}
	pts := []struct {
		rel  Release
		want bool
	}{
		{
			rel:  Release{RolloutPercentage: 100, TargetingRules: rules},
			want: true,
		},
		{
			rel:  Release{RolloutPercentage: 0, TargetingRules: rules},
			want: false,
		},
		{
			rel:  Release{RolloutPercentage: 100, MinAppVersion: "2.1"},
			want: false,
		},
		{
			rel:  Release{RolloutPercentage: 100, MaxAppVersion: "1.9"},
			want: false,
		},
		{
			rel:  Release{RolloutPercentage: 100, MinAppVersion: "1.0", MaxAppVersion: "3.0"},
			want: true,
		},
		{
			rel: Release{
				RolloutPercentage: 100,
				TargetingRules: &RuleSet{
					Match: MatchAll,
					Rules: []Rule{{Field: "platform", Op: OpEq, Value: NewValue("ios")}},
				},
			},
			want: false,
		},
	}
	for i := range pts {
		pt := &pts[i]
		if got := Eligible("device-42", dev, &pt.rel); got != pt.want {
			t.Errorf("case %d: got %v, want %v", i, got, pt.want)
		}
	}
}

func TestEligibleDeterministic(t *testing.T) {
	dev := &DeviceAttributes{Platform: "ios", AppVersion: "1.0"}
	rel := &Release{RolloutPercentage: 37}
	first := Eligible("adaeebc2-70e2-41c5-b4ea-8b35c1447a0a", dev, rel)
	for i := 0; i < 10; i++ {
		if Eligible("adaeebc2-70e2-41c5-b4ea-8b35c1447a0a", dev, rel) != first {
			t.Fatal("eligibility flapped for identical inputs")
		}
	}
}

func TestReleaseYAML(t *testing.T) {
	doc := `
rolloutPercentage: 25
minAppVersion: "1.2"
targetingRules:
  match: any
  rules:
  - field: locale
    op: in
    value: [de-DE, de-AT]
  - field: os_version
    op: semver_gte
    value: "14"
`
	rel := &Release{}
	if err := yaml.Unmarshal([]byte(doc), rel); err != nil {
		t.Fatal(err)
	}
	if rel.RolloutPercentage != 25 || rel.MinAppVersion != "1.2" {
		t.Errorf("got %+v", rel)
	}
	if rel.TargetingRules == nil || rel.TargetingRules.Match != MatchAny {
		t.Fatalf("targeting rules: got %+v", rel.TargetingRules)
	}
	if len(rel.TargetingRules.Rules) != 2 {
		t.Fatalf("rules: got %d, want 2", len(rel.TargetingRules.Rules))
	}
	in := rel.TargetingRules.Rules[0]
	if in.Op != OpIn || len(in.Value.List()) != 2 || in.Value.List()[0] != "de-DE" {
		t.Errorf("rule 0: got %+v", in)
	}
	gte := rel.TargetingRules.Rules[1]
	if gte.Op != OpSemverGte || gte.Value.One() != "14" {
		t.Errorf("rule 1: got %+v", gte)
	}
}
