package report

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/IvanShishkin/filelist/pkg/models"
)

const (
	xmlRootElement = "files"
	xmlFileElement = "file"
)

// renderXML renders <files> with one <file> element per record and one child
// element per field, indented by 4 spaces
func renderXML(records models.RecordList) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "    ")

	root := xml.StartElement{Name: xml.Name{Local: xmlRootElement}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}

	for _, r := range records {
		file := xml.StartElement{Name: xml.Name{Local: xmlFileElement}}
		if err := enc.EncodeToken(file); err != nil {
			return nil, err
		}
		for _, e := range r.Entries {
			el := xml.StartElement{Name: xml.Name{Local: e.Field.String()}}
			if err := enc.EncodeElement(fmt.Sprint(plainValue(e.Value)), el); err != nil {
				return nil, err
			}
		}
		if err := enc.EncodeToken(file.End()); err != nil {
			return nil, err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
