package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// jsonWriter buffers records and emits one JSON document on Flush. A
// single record is emitted bare, multiple records as an array.
type jsonWriter struct {
	w      *bufio.Writer
	pretty bool
	indent string
	recs   []any
}

func newJSONWriter(w io.Writer, pretty bool, indent string) *jsonWriter {
	return &jsonWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
	}
}

func (j *jsonWriter) Write(rec any) error {
	j.recs = append(j.recs, rec)
	return nil
}

func (j *jsonWriter) WriteAll(recs []any) error {
	j.recs = append(j.recs, recs...)
	return nil
}

func (j *jsonWriter) Flush() error {
	var doc any = j.recs
	if len(j.recs) == 1 {
		doc = j.recs[0]
	}

	var (
		out []byte
		err error
	)
	if j.pretty {
		out, err = json.MarshalIndent(doc, "", j.indent)
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}

	if _, err := j.w.Write(out); err != nil {
		return err
	}
	if err := j.w.WriteByte('\n'); err != nil {
		return err
	}
	return j.w.Flush()
}

func (j *jsonWriter) Close() error {
	return j.Flush()
}

// jsonlWriter emits each record as its own JSON line as soon as it is
// written.
type jsonlWriter struct {
	w *bufio.Writer
}

func newJSONLWriter(w io.Writer) *jsonlWriter {
	return &jsonlWriter{w: bufio.NewWriter(w)}
}

func (j *jsonlWriter) Write(rec any) error {
	out, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if _, err := j.w.Write(out); err != nil {
		return err
	}
	if err := j.w.WriteByte('\n'); err != nil {
		return err
	}
	return j.w.Flush()
}

func (j *jsonlWriter) WriteAll(recs []any) error {
	for _, rec := range recs {
		if err := j.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func (j *jsonlWriter) Flush() error {
	return j.w.Flush()
}

func (j *jsonlWriter) Close() error {
	return j.Flush()
}
