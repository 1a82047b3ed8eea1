package report

import (
	"bufio"
	"bytes"
	"strconv"

	"github.com/IvanShishkin/filelist/pkg/models"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 4

// renderYAML renders the same content as renderJSON as a YAML sequence of
// mappings, keeping field order. Every nesting level is indented by four
// spaces, including the keys of each sequence entry.
func renderYAML(records models.RecordList) ([]byte, error) {
	if len(records) == 0 {
		return []byte("[]\n"), nil
	}

	var buf bytes.Buffer
	for _, r := range records {
		doc, err := encodeYAMLRecord(r)
		if err != nil {
			return nil, err
		}
		writeYAMLEntry(&buf, doc)
	}
	return buf.Bytes(), nil
}

// encodeYAMLRecord encodes one record as a root mapping
func encodeYAMLRecord(r *models.Record) ([]byte, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range r.Entries {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Field.String()},
			yamlValue(e.Value))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeYAMLEntry shifts an encoded mapping right by one indent level and
// marks its first line as a sequence entry
func writeYAMLEntry(buf *bytes.Buffer, doc []byte) {
	pad := bytes.Repeat([]byte{' '}, yamlIndent)
	marker := append([]byte{'-'}, pad[1:]...)

	sc := bufio.NewScanner(bytes.NewReader(doc))
	sc.Buffer(make([]byte, 0, 64*1024), len(doc)+1)
	first := true
	for sc.Scan() {
		line := sc.Bytes()
		switch {
		case first:
			buf.Write(marker)
			first = false
		case len(line) > 0:
			buf.Write(pad)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
}

func yamlValue(v any) *yaml.Node {
	switch val := v.(type) {
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(val, 10)}
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: val}
	default:
		// timestamps stay strings so readers do not retype them
		s, _ := plainValue(v).(string)
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
	}
}
