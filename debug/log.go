package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/yaml-format/go-yamlfmt/encode"
	"github.com/signadot/yaml-format/go-yamlfmt/tree"
)

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *tree.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
