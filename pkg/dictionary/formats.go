package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/gzip"
)

// FileFormat represents different word list file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // Plain text, one word per line
	FormatGzip               // Gzip-compressed plain text
)

// FormatInfo contains metadata about a word list format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".lst", ".dic", ""},
	},
	FormatGzip: {
		Format:      FormatGzip,
		Description: "Gzip Compressed Word List",
		Extensions:  []string{".gz"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFormat picks the format of a word list from its extension.
func DetectFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, validExt := range info.Extensions {
			if ext == validExt {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s (extension %q)", filename, ext)
}

// Open opens a word list and returns a reader over its decoded text.
// Closing the returned ReadCloser releases every underlying handle.
// All failures wrap ErrSourceUnavailable.
func Open(filename string) (io.ReadCloser, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		log.Debugf("Falling back to plain text for %s: %v", filename, err)
		format = FormatText
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	switch format {
	case FormatGzip:
		zr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("%w: failed to read gzip header of %s: %w", ErrSourceUnavailable, filename, err)
		}
		log.Debugf("Opened %s as %s", filename, format)
		return &gzipSource{zr: zr, file: file}, nil
	default:
		log.Debugf("Opened %s as %s", filename, format)
		return file, nil
	}
}

type gzipSource struct {
	zr   *gzip.Reader
	file *os.File
}

func (g *gzipSource) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipSource) Close() error {
	return errors.Join(g.zr.Close(), g.file.Close())
}
