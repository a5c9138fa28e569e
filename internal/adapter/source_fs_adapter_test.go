package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.py"), "x = 1\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.py"), "y = 2\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.py")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "main.py")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.py")
		writeTestFile(t, child, "y = 2\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(t.TempDir()), true, func(string, os.FileInfo, error) error {
			t.Fatalf("callback must not run after cancellation")
			return nil
		})
		if err != context.Canceled {
			t.Fatalf("Walk() error = %v, want context.Canceled", err)
		}
	})
}

func TestLocalSourceFSAdapter_ReadWriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "out", "nested", "q.json")
	content := "[]\n"

	if err := adapter.WriteFile(ctx, m.Path(path), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := adapter.ReadFile(ctx, m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}

	info, err := adapter.FileInfo(ctx, m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}
}

func TestLocalSourceFSAdapter_ListSamples(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := t.TempDir()

	for _, dir := range []string{"bubble_sort", "binary_search", ".cache"} {
		mustMkdir(t, filepath.Join(root, dir))
	}

	writeTestFile(t, filepath.Join(root, "bubble_sort", "bubble_sort.py"), "")
	writeTestFile(t, filepath.Join(root, "bubble_sort", "bubble_sort.CPP"), "")
	writeTestFile(t, filepath.Join(root, "bubble_sort", "bubble_sort_questions.csv"), "")
	writeTestFile(t, filepath.Join(root, "binary_search", "BinarySearch.java"), "")
	writeTestFile(t, filepath.Join(root, ".cache", "stale.py"), "")

	samples, err := adapter.ListSamples(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("ListSamples() error = %v", err)
	}

	want := []m.Sample{
		{Path: m.Path(filepath.Join(root, "binary_search", "BinarySearch.java")), Algorithm: "binary_search", Language: m.LanguageJava},
		{Path: m.Path(filepath.Join(root, "bubble_sort", "bubble_sort.CPP")), Algorithm: "bubble_sort", Language: m.LanguageCPP},
		{Path: m.Path(filepath.Join(root, "bubble_sort", "bubble_sort.py")), Algorithm: "bubble_sort", Language: m.LanguagePython},
	}

	if len(samples) != len(want) {
		t.Fatalf("ListSamples() = %v, want %v", samples, want)
	}

	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("ListSamples()[%d] = %+v, want %+v", i, samples[i], want[i])
		}
	}

	algorithms, err := adapter.ListAlgorithms(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("ListAlgorithms() error = %v", err)
	}

	if len(algorithms) != 2 || algorithms[0] != "binary_search" || algorithms[1] != "bubble_sort" {
		t.Fatalf("ListAlgorithms() = %v", algorithms)
	}

	if _, err := adapter.ListAlgorithms(context.Background(), m.Path(filepath.Join(root, "missing"))); err == nil {
		t.Fatalf("ListAlgorithms() expected error for missing directory")
	}
}

func TestLocalSourceFSAdapter_DetectTestCases(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	source := filepath.Join(root, "calc.py")
	cases := filepath.Join(root, "calc"+TestCasesSuffix)
	writeTestFile(t, source, "def add(a, b):\n    return a + b\n")
	writeTestFile(t, cases, "[]\n")

	got, err := adapter.DetectTestCases(context.Background(), m.Path(source))
	if err != nil {
		t.Fatalf("DetectTestCases() error = %v", err)
	}

	if got != m.Path(cases) {
		t.Fatalf("DetectTestCases() = %s, want %s", got, cases)
	}

	t.Run("returns empty path when cases missing", func(t *testing.T) {
		other := filepath.Join(root, "other.py")
		writeTestFile(t, other, "x = 1\n")

		got, err := adapter.DetectTestCases(context.Background(), m.Path(other))
		if err != nil {
			t.Fatalf("DetectTestCases() error = %v", err)
		}

		if got != "" {
			t.Fatalf("DetectTestCases() = %s, want empty path", got)
		}
	})
}

func TestLocalSourceFSAdapter_CreateTempDirAndRemoveAll(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	tmp, err := adapter.CreateTempDir(ctx, "codeqg-test-*")
	if err != nil {
		t.Fatalf("CreateTempDir() error = %v", err)
	}

	if fi, err := os.Stat(string(tmp)); err != nil || !fi.IsDir() {
		t.Fatalf("CreateTempDir() did not create directory, stat err=%v", err)
	}

	writeTestFile(t, filepath.Join(string(tmp), "subject.py"), "x = 1\n")

	if err := adapter.RemoveAll(ctx, tmp); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	if _, err := os.Stat(string(tmp)); !os.IsNotExist(err) {
		t.Fatalf("RemoveAll() did not remove directory, stat err=%v", err)
	}
}

func TestLocalSourceFSAdapter_JoinPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	joined := adapter.JoinPath(context.Background(), "/tmp", "samples", "bfs", "bfs.py")
	if string(joined) != filepath.Join("/tmp", "samples", "bfs", "bfs.py") {
		t.Fatalf("JoinPath() = %s", joined)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
