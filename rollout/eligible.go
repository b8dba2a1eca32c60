package rollout

// Release carries the targeting inputs of a release record, supplied
// by the surrounding service as plain values.
type Release struct {
	RolloutPercentage int      `json:"rolloutPercentage" yaml:"rolloutPercentage"`
	TargetingRules    *RuleSet `json:"targetingRules,omitempty" yaml:"targetingRules,omitempty"`
	MinAppVersion     string   `json:"minAppVersion,omitempty" yaml:"minAppVersion,omitempty"`
	MaxAppVersion     string   `json:"maxAppVersion,omitempty" yaml:"maxAppVersion,omitempty"`
}

// Eligible decides whether the device should receive rel: the app
// version must be within [MinAppVersion, MaxAppVersion], the
// targeting rules must pass, and the device must fall in the rollout.
// The three predicates are independent and short circuit in that
// order.
func Eligible(deviceID string, dev *DeviceAttributes, rel *Release) bool {
	if !versionWithin(dev.AppVersion, rel.MinAppVersion, rel.MaxAppVersion) {
		return false
	}
	if !EvalRules(rel.TargetingRules, dev) {
		return false
	}
	return InRollout(deviceID, rel.RolloutPercentage)
}

// versionWithin treats an empty bound as unbounded.
func versionWithin(v, lo, hi string) bool {
	if lo != "" && CompareVersions(v, lo) < 0 {
		return false
	}
	if hi != "" && CompareVersions(v, hi) > 0 {
		return false
	}
	return true
}
