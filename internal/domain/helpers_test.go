package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func loadSnippets(t *testing.T) map[string]string {
	t.Helper()

	archive, err := txtar.ParseFile("testdata/snippets.txtar")
	require.NoError(t, err)

	snippets := make(map[string]string, len(archive.Files))
	for _, f := range archive.Files {
		snippets[f.Name] = string(f.Data)
	}

	return snippets
}
