package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Indent bool
	Parse  bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Indent = boolEnv("YAMLFMT_DEBUG_INDENT")
	d.Parse = boolEnv("YAMLFMT_DEBUG_PARSE")
	d.LSP = boolEnv("YAMLFMT_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Indent() bool {
	return d.Indent
}
func Parse() bool {
	return d.Parse
}
func LSP() bool {
	return d.LSP
}
