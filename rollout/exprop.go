package rollout

import (
	"github.com/expr-lang/expr"

	"github.com/otaforge/bundlekit/debug"
)

// evalExpr evaluates an expr targeting rule.  The expression sees the
// device attributes under their wire field names and must produce a
// boolean.  Compile or runtime failures fail the rule closed.
func evalExpr(r *Rule, dev *DeviceAttributes) bool {
	env := dev.Env()
	prog, err := expr.Compile(r.Value.One(), expr.Env(env), expr.AsBool())
	if err != nil {
		if debug.Rules() {
			debug.Logf("expr rule %q: compile: %v\n", r.Value.One(), err)
		}
		return false
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		if debug.Rules() {
			debug.Logf("expr rule %q: run: %v\n", r.Value.One(), err)
		}
		return false
	}
	b, ok := out.(bool)
	if !ok {
		return false
	}
	return b
}
