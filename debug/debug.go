package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Table     bool
	Transform bool
	Walk      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("PDXMUL_DEBUG_PARSE")
	d.Table = boolEnv("PDXMUL_DEBUG_TABLE")
	d.Transform = boolEnv("PDXMUL_DEBUG_TRANSFORM")
	d.Walk = boolEnv("PDXMUL_DEBUG_WALK")
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
func Table() bool {
	return d.Table
}
func Transform() bool {
	return d.Transform
}
func Walk() bool {
	return d.Walk
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
