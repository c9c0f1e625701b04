package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlWriter buffers records and emits one YAML document on Flush. A
// single record is emitted bare, multiple records as a sequence.
type yamlWriter struct {
	w    *bufio.Writer
	recs []any
}

func newYAMLWriter(w io.Writer) *yamlWriter {
	return &yamlWriter{w: bufio.NewWriter(w)}
}

func (y *yamlWriter) Write(rec any) error {
	y.recs = append(y.recs, rec)
	return nil
}

func (y *yamlWriter) WriteAll(recs []any) error {
	y.recs = append(y.recs, recs...)
	return nil
}

func (y *yamlWriter) Flush() error {
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)

	var doc any = y.recs
	if len(y.recs) == 1 {
		doc = y.recs[0]
	}

	if err := enc.Encode(doc); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return y.w.Flush()
}

func (y *yamlWriter) Close() error {
	return y.Flush()
}
