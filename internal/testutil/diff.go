// Package testutil provides small helpers shared by tests.
package testutil

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a readable character diff between want and got, for test
// failure messages on multi-line printer output.
func Diff(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	return dmp.DiffPrettyText(diffs)
}
