package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/IvanShishkin/filelist/pkg/models"
)

// jsonRecord keeps the field order of a record when marshaled
type jsonRecord struct {
	record *models.Record
}

func (r jsonRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.record.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalPlain(e.Field.String())
		if err != nil {
			return nil, err
		}
		value, err := marshalPlain(plainValue(e.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// plainValue converts a record value to what the text formats print
func plainValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return models.FormatTimestamp(t)
	}
	return v
}

// marshalPlain encodes v without HTML escaping
func marshalPlain(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// renderJSON renders an array of field-ordered objects indented by 4 spaces
func renderJSON(records models.RecordList) ([]byte, error) {
	out := make([]jsonRecord, len(records))
	for i, r := range records {
		out[i] = jsonRecord{record: r}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeJSON reads a file list written by the json type back into records,
// preserving field order
func DecodeJSON(r io.Reader) (models.RecordList, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	records := make(models.RecordList, 0)
	for dec.More() {
		record, err := decodeRecord(dec)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeRecord(dec *json.Decoder) (*models.Record, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	record := &models.Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		field := models.ParseField(key)
		value, err := decodeValue(field, raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		record.Add(field, value)
		if field == models.FieldName && record.Path == "" {
			record.Path = value.(string)
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return record, nil
}

func decodeValue(field models.Field, raw any) (any, error) {
	switch field {
	case models.FieldName:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case models.FieldSize:
		if n, ok := raw.(json.Number); ok {
			return n.Int64()
		}
	case models.FieldCreationTime, models.FieldLastModifiedTime:
		if s, ok := raw.(string); ok {
			return models.ParseTimestamp(s)
		}
	default:
		return nil, fmt.Errorf("unrecognized field")
	}
	return nil, fmt.Errorf("unexpected value %v", raw)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
