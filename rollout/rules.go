package rollout

import (
	"slices"
	"strings"

	"github.com/otaforge/bundlekit/debug"
)

// Operators understood by rule evaluation.  Anything else fails the
// rule closed: the device is excluded.
const (
	OpEq         = "eq"
	OpNe         = "ne"
	OpIn         = "in"
	OpNotIn      = "not_in"
	OpContains   = "contains"
	OpStartsWith = "starts_with"
	OpEndsWith   = "ends_with"
	OpSemverEq   = "semver_eq"
	OpSemverGt   = "semver_gt"
	OpSemverGte  = "semver_gte"
	OpSemverLt   = "semver_lt"
	OpSemverLte  = "semver_lte"
	OpExpr       = "expr"
)

// Rule compares one device field against a value.
type Rule struct {
	Field string `json:"field" yaml:"field"`
	Op    string `json:"op" yaml:"op"`
	Value Value  `json:"value" yaml:"value"`
}

const (
	MatchAll = "all"
	MatchAny = "any"
)

// RuleSet combines rules with all or any semantics.
type RuleSet struct {
	Match string `json:"match" yaml:"match"`
	Rules []Rule `json:"rules" yaml:"rules"`
}

// EvalRules evaluates rs against dev.  A nil rule set or an empty
// rule list means no targeting: every device is eligible.
func EvalRules(rs *RuleSet, dev *DeviceAttributes) bool {
	if rs == nil || len(rs.Rules) == 0 {
		return true
	}
	anyMatch := rs.Match == MatchAny
	for i := range rs.Rules {
		ok := evalRule(&rs.Rules[i], dev)
		if anyMatch && ok {
			return true
		}
		if !anyMatch && !ok {
			return false
		}
	}
	return !anyMatch
}

func evalRule(r *Rule, dev *DeviceAttributes) bool {
	if r.Op == OpExpr {
		return evalExpr(r, dev)
	}
	got, known := dev.Field(r.Field)
	if !known {
		if debug.Rules() {
			debug.Logf("rule on unknown field %q fails closed\n", r.Field)
		}
		return false
	}
	switch r.Op {
	case OpEq:
		return got == r.Value.One()
	case OpNe:
		return got != r.Value.One()
	case OpIn:
		return slices.Contains(r.Value.List(), got)
	case OpNotIn:
		return !slices.Contains(r.Value.List(), got)
	case OpContains:
		return strings.Contains(got, r.Value.One())
	case OpStartsWith:
		return strings.HasPrefix(got, r.Value.One())
	case OpEndsWith:
		return strings.HasSuffix(got, r.Value.One())
	case OpSemverEq:
		return CompareVersions(got, r.Value.One()) == 0
	case OpSemverGt:
		return CompareVersions(got, r.Value.One()) > 0
	case OpSemverGte:
		return CompareVersions(got, r.Value.One()) >= 0
	case OpSemverLt:
		return CompareVersions(got, r.Value.One()) < 0
	case OpSemverLte:
		return CompareVersions(got, r.Value.One()) <= 0
	}
	if debug.Rules() {
		debug.Logf("unknown rule operator %q fails closed\n", r.Op)
	}
	return false
}
