package bantam_test

import (
	"testing"

	"github.com/sandrolain/gopratt/pkg/bantam"
	"github.com/sandrolain/gopratt/pkg/types"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`a = b + c * d ^ e - f / g`,
		`a ? b : c ? d : e`,
		`~!-+a!!`,
		`a(b, c)(d)`,
		`((a))`,
		``,
		`(`,
		`a(`,
		`a ? b`,
		`1 = 2`,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		node, err := bantam.Parse(input)
		if err != nil {
			if types.CodeOf(err) == "" {
				t.Fatalf("error without code for %q: %v", input, err)
			}
			return
		}
		// The printed form is fully parenthesized and must parse to the same tree.
		again, err := bantam.Parse(node.String())
		if types.CodeOf(err) == types.ErrMaxDepth {
			// Printing adds a group per operator, so long chains nest deeper.
			return
		}
		if err != nil {
			t.Fatalf("reparse of %q (%s) failed: %v", input, node, err)
		}
		if again.String() != node.String() {
			t.Fatalf("reparse of %q changed %s to %s", input, node, again)
		}
	})
}
