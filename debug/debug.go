package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Diff  bool
	Patch bool
	Rules bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("BUNDLEKIT_DEBUG_PARSE")
	d.Diff = boolEnv("BUNDLEKIT_DEBUG_DIFF")
	d.Patch = boolEnv("BUNDLEKIT_DEBUG_PATCH")
	d.Rules = boolEnv("BUNDLEKIT_DEBUG_RULES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Rules() bool {
	return d.Rules
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
