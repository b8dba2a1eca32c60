package rollout

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// Value is a rule comparison value: a single string, or a list of
// strings for the in and not_in operators.
type Value struct {
	strs   []string
	isList bool
}

func NewValue(s string) Value {
	return Value{strs: []string{s}}
}

func NewListValue(ss ...string) Value {
	return Value{strs: ss, isList: true}
}

// One returns the single string form; for a list value, its first
// element.
func (v Value) One() string {
	if len(v.strs) == 0 {
		return ""
	}
	return v.strs[0]
}

func (v Value) List() []string {
	return v.strs
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.strs)
	}
	return json.Marshal(v.One())
}

func (v *Value) UnmarshalJSON(d []byte) error {
	var s string
	if err := json.Unmarshal(d, &s); err == nil {
		*v = NewValue(s)
		return nil
	}
	var ss []string
	if err := json.Unmarshal(d, &ss); err != nil {
		return err
	}
	*v = NewListValue(ss...)
	return nil
}

func (v Value) MarshalYAML() ([]byte, error) {
	if v.isList {
		return yaml.Marshal(v.strs)
	}
	return yaml.Marshal(v.One())
}

func (v *Value) UnmarshalYAML(d []byte) error {
	var s string
	if err := yaml.Unmarshal(d, &s); err == nil {
		*v = NewValue(s)
		return nil
	}
	var ss []string
	if err := yaml.Unmarshal(d, &ss); err != nil {
		return err
	}
	*v = NewListValue(ss...)
	return nil
}
