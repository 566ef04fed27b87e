// Command failing is a test binary whose second routine fails on purpose.
package main

import (
	"expect/check"
	"expect/testmain"
)

func testCounts() {
	items := []string{"a", "b"}
	check.Equal(len(items), 2)
}

func testTotal() {
	total := 3
	check.EqualMsg(total, 4, "sum of parts")
}

func main() {
	testmain.Main("Failing", testCounts, testTotal)
}
