package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ValidManifest is a production manifest with one entry that links a stylesheet
const ValidManifest = `{
  "Main.js": {
    "file": "assets/Main-4483b920.js",
    "src": "Main.js",
    "isEntry": true,
    "css": [
      "assets/Main-973bb662.css"
    ]
  },
  "Main.css": {
    "file": "assets/Main-973bb662.css",
    "src": "Main.css"
  }
}
`

// MultipleEntriesManifest has two chunks flagged as entries
const MultipleEntriesManifest = `{
  "Main.js": {
    "file": "assets/Main-4483b920.js",
    "src": "Main.js",
    "isEntry": true
  },
  "Admin.js": {
    "file": "assets/Admin-1f0e9c2d.js",
    "src": "Admin.js",
    "isEntry": true
  }
}
`

// NoEntriesManifest has chunks but none flagged as entry
const NoEntriesManifest = `{
  "Shared.js": {
    "file": "assets/Shared-aa11bb22.js",
    "src": "Shared.js"
  }
}
`

// InvalidManifest is not valid JSON
const InvalidManifest = `{"Main.js": {"file": "assets/Main-4483b920.js",`

// MainStyleSheet is the content of the stylesheet linked by ValidManifest
const MainStyleSheet = ".test {color: #000;}\n"

// Build describes a build output directory written by WriteBuild
type Build struct {
	// Dir is the build output directory (absolute)
	Dir string
	// Manifest is the absolute path of the manifest file
	Manifest string
}

// WriteBuild writes ValidManifest and the stylesheet it references into a
// fresh "dist" directory below a temporary root and returns the root and the
// build.
func WriteBuild(t *testing.T) (string, Build) {
	t.Helper()

	root := TempDir(t)
	dir := filepath.Join(root, "dist")
	manifestPath := WriteFile(t, dir, "manifest.json", ValidManifest)
	WriteFile(t, dir, "assets/Main-973bb662.css", MainStyleSheet)
	WriteFile(t, dir, "assets/Main-4483b920.js", "console.log('main');\n")

	return root, Build{Dir: dir, Manifest: manifestPath}
}

// WriteManifest writes content as manifest.json in dir and returns its path
func WriteManifest(t *testing.T, dir, content string) string {
	t.Helper()
	return WriteFile(t, dir, "manifest.json", content)
}

// WriteFile writes content to dir/name, creating parent directories
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
