// Package manifest provides the typed model of a Vite build manifest and the
// lookups performed on it. A manifest maps chunk identifiers to the files the
// bundler emitted for them.
//
// # Manifest Format
//
// The manifest is a JSON object keyed by chunk identifier:
//
//	{
//	  "Main.js": {
//	    "file": "assets/Main-4483b920.js",
//	    "src": "Main.js",
//	    "isEntry": true,
//	    "css": ["assets/Main-973bb662.css"]
//	  }
//	}
//
// Only "file" is required. "isEntry" and "isDynamicEntry" default to false and
// the list fields ("assets", "css", "imports", "dynamicImports") default to
// empty. Unknown fields are ignored.
//
// # Usage
//
//	m, err := manifest.Parse(data, "/var/www/dist/.vite/manifest.json")
//	if err != nil {
//	    return err
//	}
//
//	entry, err := manifest.FindSoleEntry(m)
//	resolved, err := manifest.ResolveEntry(m, entry)
//
// # Error Handling
//
// Parse returns *domain.FormatError. ResolveEntry returns
// *domain.InvalidEntryError, FindSoleEntry *domain.AmbiguousEntryError and
// AssetPath *domain.InvalidAssetError. All of them match the corresponding
// domain sentinel through errors.Is.
package manifest
