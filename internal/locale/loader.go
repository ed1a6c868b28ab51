package locale

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for catalog loading.
var (
	// ErrUnsupportedFormat indicates the catalog file extension is not recognized.
	ErrUnsupportedFormat = errors.New("locale: unsupported catalog format")

	// ErrMalformedCatalog indicates the catalog document failed to parse.
	ErrMalformedCatalog = errors.New("locale: malformed catalog document")
)

// Catalog is one loaded translation catalog, reduced to its key set.
// Leaf values are dropped at load time.
type Catalog struct {
	// Locale is the identifier derived from the file name stem,
	// e.g. "zh-CN" for locales/zh-CN.yml.
	Locale string

	// Tag is the parsed BCP 47 tag, or language.Und when the file name
	// stem is not a recognizable tag.
	Tag language.Tag

	// Path is the file the catalog was loaded from.
	Path string

	// Keys is the flattened key set.
	Keys KeySet
}

// Load reads and parses one catalog file and flattens its key set.
// The format is chosen by file extension: .yml/.yaml, .json or .toml.
// A parse failure is fatal for the guard run and is reported wrapped
// around ErrMalformedCatalog; partial recovery is never attempted.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var root any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &root)
	case ".json":
		err = json.Unmarshal(data, &root)
	case ".toml":
		err = toml.Unmarshal(data, &root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w: %v", path, ErrMalformedCatalog, err)
	}

	id := LocaleID(path)
	tag, err := language.Parse(id)
	if err != nil {
		slog.Warn("catalog file name is not a BCP 47 tag", "path", path, "locale", id)
		tag = language.Und
	}

	return &Catalog{
		Locale: id,
		Tag:    tag,
		Path:   path,
		Keys:   Flatten(root),
	}, nil
}

// LocaleID derives the locale identifier from a catalog file path by
// stripping the directory and extension, e.g. "locales/zh-CN.yml" → "zh-CN".
func LocaleID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
