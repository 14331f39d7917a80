package osmingest

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
)

// primitiveScanner is the common surface of osmxml.Scanner and
// osmpbf.Scanner this package relies on.
type primitiveScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
	Close() error
}

// sniff inspects the leading bytes of buf to distinguish a PBF blob
// stream from XML text, for Format == Unknown.
func sniff(buf []byte) Format {
	trimmed := bytes.TrimLeft(buf, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return XML
	}

	return PBF
}

// openScanner decodes raw into a primitiveScanner according to format,
// transparently unwrapping gzip/bzip2 for the compressed XML variants.
func openScanner(ctx context.Context, format Format, raw []byte) (primitiveScanner, error) {
	switch format {
	case Unknown:
		return openScanner(ctx, sniff(raw), raw)

	case XML:
		return osmxml.New(ctx, bytes.NewReader(raw)), nil

	case XMLGz:
		gz, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("osmingest: gzip: %w", err)
		}
		return osmxml.New(ctx, gz), nil

	case XMLBz2:
		return osmxml.New(ctx, bzip2.NewReader(bytes.NewReader(raw))), nil

	case PBF:
		sc := osmpbf.New(ctx, bytes.NewReader(raw), 1)
		return sc, nil

	default:
		return nil, fmt.Errorf("osmingest: unknown format %d", format)
	}
}

// readAll buffers r fully so it can be scanned twice (once for node
// coordinates, once for ways and relations).
func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}
