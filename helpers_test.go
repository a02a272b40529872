package majka

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coregx/majka/internal/dicttest"
)

// step is one letter of a hand-built linear chain, giving tests control
// over which step is final independent of its position.
type step struct {
	letter byte
	final  bool
}

func linear(steps ...step) *dicttest.Node {
	var head, tail *dicttest.Node
	for _, s := range steps {
		n := &dicttest.Node{Letter: s.letter, Final: s.final}
		if head == nil {
			head = n
		} else {
			tail.Children = []*dicttest.Node{n}
		}
		tail = n
	}
	return head
}

// writeDictFile builds a dictionary file from roots and returns its path,
// for exercising Open/OpenWithConfig without a real .fsa fixture on disk.
func writeDictFile(t *testing.T, opts dicttest.Options, roots []*dicttest.Node) string {
	t.Helper()
	buf := dicttest.Build(opts, roots)
	path := filepath.Join(t.TempDir(), "test.fsa")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// entryDict builds a single-entry type-2 dictionary: input letters
// followed by ':' + "A" (zero-length prefix strip) + suffix + NUL, so
// Find(input, 0) reconstructs exactly input+suffix.
func entryDict(t *testing.T, input, suffix string) string {
	t.Helper()
	steps := make([]step, 0, len(input)+2+len(suffix)+1)
	for _, c := range []byte(input) {
		steps = append(steps, step{c, false})
	}
	steps = append(steps, step{':', false}, step{'A', false})
	for _, c := range []byte(suffix) {
		steps = append(steps, step{c, false})
	}
	steps = append(steps, step{0, true})
	root := linear(steps...)
	return writeDictFile(t, dicttest.Options{Type: 2, GotoLength: 4}, []*dicttest.Node{root})
}
