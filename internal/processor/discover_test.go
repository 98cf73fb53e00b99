package processor

import (
	"reflect"
	"testing"

	"github.com/flarebyte/seshat-papyri/internal/testutil"
)

func TestDiscoverSortedRegularFiles(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		"b.txt":        "b",
		"a.txt":        "a",
		"sub/deep.txt": "deep",
	})
	p := New(root)
	got, err := p.Discover(false)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []string{"a.txt", "b.txt", "sub/deep.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected locators: %v", got)
	}
}

func TestDiscoverHonorsGitignore(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		".gitignore":     "*.log\nbuild/\n",
		"keep.txt":       "keep",
		"noise.log":      "noise",
		"build/out.txt":  "out",
		"sub/.gitignore": "secret.txt\n",
		"sub/secret.txt": "secret",
		"sub/plain.txt":  "plain",
	})
	p := New(root)
	got, err := p.Discover(false)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []string{"keep.txt", "sub/plain.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected locators: %v", got)
	}
}

func TestDiscoverNoGitignoreOverride(t *testing.T) {
	root := t.TempDir()
	testutil.WriteTree(t, root, map[string]string{
		".gitignore": "*.log\n",
		"keep.txt":   "keep",
		"noise.log":  "noise",
	})
	p := New(root)
	got, err := p.Discover(true)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	// .gitignore files themselves stay excluded even when patterns are off.
	want := []string{"keep.txt", "noise.log"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected locators: %v", got)
	}
}

func TestDiscoverMissingRootFails(t *testing.T) {
	p := New("/no/such/root/anywhere")
	if _, err := p.Discover(false); err == nil {
		t.Fatalf("expected error")
	}
}
