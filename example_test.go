package majka_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coregx/majka"
	"github.com/coregx/majka/internal/dicttest"
)

// buildExampleDict writes a tiny type-2 dictionary mapping "byt" to the
// lemma form "bytovi" and returns its path, so the examples below have a
// real file to open without shipping one alongside the package.
func buildExampleDict() string {
	root := &dicttest.Node{Letter: 'b', Children: []*dicttest.Node{
		{Letter: 'y', Children: []*dicttest.Node{
			{Letter: 't', Children: []*dicttest.Node{
				{Letter: ':', Children: []*dicttest.Node{
					{Letter: 'A', Children: []*dicttest.Node{
						{Letter: 'o', Children: []*dicttest.Node{
							{Letter: 'v', Children: []*dicttest.Node{
								{Letter: 'i', Children: []*dicttest.Node{
									{Letter: 0, Final: true},
								}},
							}},
						}},
					}},
				}},
			}},
		}},
	}}
	buf := dicttest.Build(dicttest.Options{Type: 2, GotoLength: 4}, []*dicttest.Node{root})
	path := filepath.Join(os.TempDir(), "majka-example.fsa")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		panic(err)
	}
	return path
}

// ExampleOpen demonstrates loading a dictionary and looking up a word.
func ExampleOpen() {
	path := buildExampleDict()
	defer os.Remove(path)

	engine, err := majka.Open(path)
	if err != nil {
		panic(err)
	}
	defer engine.Close()

	results, err := engine.Find([]byte("byt"), 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(results[0]))
	// Output: bytovi
}

// ExampleMustOpen demonstrates panic-on-error loading for dictionaries
// known to exist at startup.
func ExampleMustOpen() {
	path := buildExampleDict()
	defer os.Remove(path)

	engine := majka.MustOpen(path)
	defer engine.Close()

	results, _ := engine.Find([]byte("byt"), 0)
	fmt.Println(len(results))
	// Output: 1
}

// ExampleOpenWithConfig demonstrates overriding the default configuration.
func ExampleOpenWithConfig() {
	path := buildExampleDict()
	defer os.Remove(path)

	config := majka.DefaultConfig()
	config.EnableSIMD = false

	engine, err := majka.OpenWithConfig(path, config)
	if err != nil {
		panic(err)
	}
	defer engine.Close()

	results, _ := engine.Find([]byte("byt"), 0)
	fmt.Println(string(results[0]))
	// Output: bytovi
}

// ExampleEngine_FindAll demonstrates looking up several words at once,
// with unmatched words echoed back unchanged.
func ExampleEngine_FindAll() {
	path := buildExampleDict()
	defer os.Remove(path)

	engine := majka.MustOpen(path)
	defer engine.Close()

	out, err := engine.FindAll([][]byte{[]byte("byt"), []byte("nonsense")}, 0)
	if err != nil {
		panic(err)
	}
	for _, w := range out {
		fmt.Println(string(w))
	}
	// Output:
	// bytovi
	// nonsense
}
