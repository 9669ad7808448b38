package token

import "fmt"

// Pos locates a token in its source document. Line is 1-based, Col is the
// 0-based column of the token's first byte, Off its byte offset.
type Pos struct {
	Line int
	Col  int
	Off  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col+1)
}
