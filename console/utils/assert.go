package utils

// Assert panics when condition is false. It guards caller contracts that
// correct code never violates, such as an out-of-range cell index.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
