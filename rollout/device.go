package rollout

// DeviceAttributes is an immutable snapshot of the requesting device,
// built fresh from each update check request and never persisted.
type DeviceAttributes struct {
	Platform      string `json:"platform" yaml:"platform"`
	OSVersion     string `json:"osVersion" yaml:"osVersion"`
	DeviceModel   string `json:"deviceModel" yaml:"deviceModel"`
	Timezone      string `json:"timezone" yaml:"timezone"`
	Locale        string `json:"locale" yaml:"locale"`
	AppVersion    string `json:"appVersion" yaml:"appVersion"`
	BundleVersion string `json:"bundleVersion" yaml:"bundleVersion"`
}

// Field returns the value of a targeting field by its wire name.
func (d *DeviceAttributes) Field(name string) (string, bool) {
	switch name {
	case "platform":
		return d.Platform, true
	case "os_version", "osVersion":
		return d.OSVersion, true
	case "device_model", "deviceModel":
		return d.DeviceModel, true
	case "timezone":
		return d.Timezone, true
	case "locale":
		return d.Locale, true
	case "app_version", "appVersion":
		return d.AppVersion, true
	case "bundle_version", "bundleVersion":
		return d.BundleVersion, true
	}
	return "", false
}

// Env exposes the attributes to expr targeting expressions.
func (d *DeviceAttributes) Env() map[string]any {
	return map[string]any{
		"platform":       d.Platform,
		"os_version":     d.OSVersion,
		"device_model":   d.DeviceModel,
		"timezone":       d.Timezone,
		"locale":         d.Locale,
		"app_version":    d.AppVersion,
		"bundle_version": d.BundleVersion,
	}
}
