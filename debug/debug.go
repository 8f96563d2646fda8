package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("GD_DEBUG_TOKENS")
	d.Parse = boolEnv("GD_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}

func Parse() bool {
	return d.Parse
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
