package flattrie

import (
	"fmt"
	"testing"

	"github.com/forestrie/go-flattrie/texttrie"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentReaders shares one compiled arena between many goroutines.
// Run with -race: queries must not write to any shared state.
func TestConcurrentReaders(t *testing.T) {
	trie := texttrie.New()
	for i := 0; i < 500; i++ {
		trie.Insert(fmt.Sprintf("svc.%03d.", i))
	}

	for _, enc := range encodings {
		ft, err := Compile(trie.Root(), enc)
		require.NoError(t, err)

		var g errgroup.Group
		for w := 0; w < 8; w++ {
			g.Go(func() error {
				for i := 0; i < 1000; i++ {
					candidate := fmt.Sprintf("svc.%03d.request", (i*7+w)%600)
					if got, want := ft.StartsWith(candidate), trie.StartsWith(candidate); got != want {
						return fmt.Errorf("%s: StartsWith(%q)=%v, want %v", enc, candidate, got, want)
					}
				}
				return nil
			})
		}
		require.NoError(t, g.Wait())
	}
}
