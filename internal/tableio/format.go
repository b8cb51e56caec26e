package tableio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a supported table encoding.
type Format string

const (
	FormatJSONLines Format = "jsonl"
	FormatJSON      Format = "json"
	FormatMsgpack   Format = "msgpack"
)

// DetectFormat picks the table encoding from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jsonl", ".ndjson":
		return FormatJSONLines, nil
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	}
	return "", fmt.Errorf("unsupported table format %q (want .jsonl, .ndjson, .json, .msgpack or .mp)", ext)
}
