package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type rec struct {
	Title string `json:"titulo"`
}

func TestLoad_CreatesMissingCollection(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	var out []rec
	require.NoError(t, s.Load("livros.json", &out))
	require.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(dir, "livros.json"))
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	in := []rec{{Title: "Dune"}, {Title: "Dune"}}
	require.NoError(t, s.Save("livros.json", in))

	var out []rec
	require.NoError(t, s.Load("livros.json", &out))
	require.Equal(t, in, out)
}

func TestSave_FullyOverwrites(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save("livros.json", []rec{{Title: "a"}, {Title: "b"}}))
	require.NoError(t, s.Save("livros.json", []rec{{Title: "c"}}))

	var out []rec
	require.NoError(t, s.Load("livros.json", &out))
	require.Equal(t, []rec{{Title: "c"}}, out)
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "livros.json"), []byte("{not json"), 0o644))

	var out []rec
	require.Error(t, s.Load("livros.json", &out))
}

func TestLock_SerializesReadModifyWrite(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	const writers = 4
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				unlock := s.Lock("emprestimos.json")
				var items []rec
				if err := s.Load("emprestimos.json", &items); err != nil {
					t.Error(err)
					unlock()
					return
				}
				items = append(items, rec{Title: "x"})
				if err := s.Save("emprestimos.json", items); err != nil {
					t.Error(err)
				}
				unlock()
			}
		}()
	}
	wg.Wait()

	var out []rec
	require.NoError(t, s.Load("emprestimos.json", &out))
	require.Len(t, out, writers*perWriter)
}
