package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// documentEncoder writes one document per value.
type documentEncoder interface {
	Encode(v any) error
	Close() error
}

type jsonEncoder struct {
	*json.Encoder
}

func (jsonEncoder) Close() error { return nil }

// yamlEncoder separates documents with "---" and only terminates a stream
// that was started.
type yamlEncoder struct {
	enc     *yaml.Encoder
	written bool
}

func (y *yamlEncoder) Encode(v any) error {
	y.written = true
	return y.enc.Encode(v)
}

func (y *yamlEncoder) Close() error {
	if !y.written {
		return nil
	}
	return y.enc.Close()
}

func newDocumentEncoder(w io.Writer, format string) (documentEncoder, error) {
	switch format {
	case OutputJSON, "":
		return jsonEncoder{json.NewEncoder(w)}, nil
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlEncoder{enc: enc}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (expected %s or %s)", format, OutputJSON, OutputYAML)
	}
}
