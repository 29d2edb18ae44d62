package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/rufty/pkg/core"
)

// Serializer defines how to read and write a note sequence in a specific file format.
type Serializer interface {
	// Parse reads a whole sequence from r.
	Parse(r io.Reader) ([]core.Note, error)
	// Serialize converts the sequence to bytes.
	Serialize(notes []core.Note) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers, keyed by extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
		".csv":  NewCSVSerializer(),
	}
}

// record is the wire shape of a note. Field names are part of the export format.
type record struct {
	Title       string `json:"Title" yaml:"Title"`
	Body        string `json:"Body" yaml:"Body"`
	IsCompleted bool   `json:"IsCompleted" yaml:"IsCompleted"`
}

func toRecords(notes []core.Note) []record {
	out := make([]record, 0, len(notes))
	for _, n := range notes {
		out = append(out, record{Title: n.Title, Body: n.Body, IsCompleted: n.Completed})
	}
	return out
}

func fromRecords(records []record) []core.Note {
	out := make([]core.Note, 0, len(records))
	for _, r := range records {
		out = append(out, core.Note{Title: r.Title, Body: r.Body, Completed: r.IsCompleted})
	}
	return out
}

var utf8BOM = []byte("\xef\xbb\xbf")

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}

// --- JSON Serializer ---

// JSONSerializer reads and writes a JSON array of {Title, Body, IsCompleted}.
type JSONSerializer struct {
	// Indent is used for each nesting level. Empty means two spaces.
	Indent string
}

// NewJSONSerializer creates a new JSON serializer with pretty-printed output.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{Indent: "  "}
}

func (s *JSONSerializer) Parse(r io.Reader) ([]core.Note, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return fromRecords(records), nil
}

func (s *JSONSerializer) Serialize(notes []core.Note) ([]byte, error) {
	indent := s.Indent
	if indent == "" {
		indent = "  "
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(toRecords(notes)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// --- YAML Serializer ---

// YAMLSerializer reads and writes a YAML sequence using the JSON field names.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

func (s *YAMLSerializer) Parse(r io.Reader) ([]core.Note, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return fromRecords(records), nil
}

func (s *YAMLSerializer) Serialize(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(toRecords(notes)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- CSV Serializer ---

var csvHeader = []string{"Title", "Body", "IsCompleted"}

// CSVSerializer reads and writes one note per row under a
// Title,Body,IsCompleted header. Header names match case-insensitively and may
// come in any order; missing columns take their zero value.
type CSVSerializer struct{}

// NewCSVSerializer creates a new CSV serializer.
func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{}
}

func (s *CSVSerializer) Parse(r io.Reader) ([]core.Note, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := map[string]int{}
	for i, h := range headers {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := columns["title"]; !ok {
		return nil, errors.New("csv header has no Title column")
	}

	var records []record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		rec := record{Title: cell(row, columns, "title"), Body: cell(row, columns, "body")}
		if v := strings.TrimSpace(cell(row, columns, "iscompleted")); v != "" {
			done, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("csv row %d: invalid IsCompleted %q", len(records)+1, v)
			}
			rec.IsCompleted = done
		}
		records = append(records, rec)
	}
	return fromRecords(records), nil
}

func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (s *CSVSerializer) Serialize(notes []core.Note) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range toRecords(notes) {
		if err := w.Write([]string{r.Title, r.Body, strconv.FormatBool(r.IsCompleted)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
