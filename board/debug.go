package board

import "fmt"

// assert panics when cond is false. Call sites wrap it in `if debug`.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("board: assertion failed: "+format, args...))
	}
}
