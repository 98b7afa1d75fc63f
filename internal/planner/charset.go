package planner

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const charsetPrefix = `@charset "`

// DetectCharset returns the label of a leading @charset rule, lower-cased,
// or "" when the stylesheet has none
func DetectCharset(css []byte) string {
	if !bytes.HasPrefix(css, []byte(charsetPrefix)) {
		return ""
	}
	rest := css[len(charsetPrefix):]
	end := bytes.Index(rest, []byte(`";`))
	if end <= 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(string(rest[:end])))
}

// StyleSheetToUTF8 prepares stylesheet bytes for embedding into a UTF-8
// page. A byte order mark is consumed (UTF-16 input is transcoded) and a
// stylesheet declaring another charset is decoded and re-declared as UTF-8.
// Unknown labels leave the content untouched.
func StyleSheetToUTF8(css []byte) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), css)
	if err != nil {
		return nil, err
	}

	label := DetectCharset(out)
	if label == "" || label == "utf-8" || label == "utf8" {
		return out, nil
	}

	e, err := htmlindex.Get(label)
	if err != nil {
		return out, nil
	}
	if name, _ := htmlindex.Name(e); name == "utf-8" {
		return out, nil
	}

	decoded, _, err := transform.Bytes(e.NewDecoder(), out)
	if err != nil {
		return nil, err
	}

	// The declaration is ASCII in every supported charset, so it survives
	// decoding unchanged and can be rewritten in place.
	if end := bytes.Index(decoded, []byte(`";`)); end > 0 && bytes.HasPrefix(decoded, []byte(charsetPrefix)) {
		decoded = append([]byte(`@charset "UTF-8`), decoded[end:]...)
	}
	return decoded, nil
}
