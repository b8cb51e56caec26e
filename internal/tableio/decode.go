package tableio

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// row is a decoded table row keyed by column name.
type row = map[string]any

// decodeRows reads every row of r in the given format. It checks ctx between
// rows so that a failing sibling table stops a long read early.
func decodeRows(ctx context.Context, r io.Reader, format Format) ([]row, error) {
	br := bufio.NewReader(r)
	switch format {
	case FormatJSONLines:
		return decodeJSONLines(ctx, br)
	case FormatJSON:
		var rows []row
		if err := json.NewDecoder(br).Decode(&rows); err != nil {
			return nil, fmt.Errorf("decoding JSON array: %w", err)
		}
		return rows, nil
	case FormatMsgpack:
		return decodeMsgpack(ctx, br)
	}
	return nil, fmt.Errorf("unsupported table format %q", format)
}

func decodeJSONLines(ctx context.Context, r io.Reader) ([]row, error) {
	dec := json.NewDecoder(r)
	var rows []row
	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var rw row
		err := dec.Decode(&rw)
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decoding JSON row %d: %w", line, err)
		}
		if rw == nil {
			return nil, fmt.Errorf("decoding JSON row %d: row is null", line)
		}
		rows = append(rows, rw)
	}
}

func decodeMsgpack(ctx context.Context, r io.Reader) ([]row, error) {
	dec := msgpack.NewDecoder(r)

	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("decoding MessagePack array header: %w", err)
	}
	if n < 0 {
		return nil, nil
	}

	rows := make([]row, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var rw row
		if err := dec.Decode(&rw); err != nil {
			return nil, fmt.Errorf("decoding MessagePack row %d: %w", i+1, err)
		}
		rows = append(rows, rw)
	}
	return rows, nil
}
