package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("NewFormatter(json) should return a JSONFormatter")
	}
	if _, ok := NewFormatter(FormatTable).(*TableFormatter); !ok {
		t.Error("NewFormatter(table) should return a TableFormatter")
	}
	if _, ok := NewFormatter("bogus").(*TableFormatter); !ok {
		t.Error("NewFormatter with unknown format should fall back to table")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}

	data := map[string]string{"room_id": "!ops:example.org", "display_name": "Ops"}
	if err := f.Format(&buf, data); err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["display_name"] != "Ops" {
		t.Errorf("display_name = %q, want Ops", decoded["display_name"])
	}
}

func TestTable_Render(t *testing.T) {
	var buf bytes.Buffer
	table := &Table{Headers: []string{"FIELD", "VALUE"}}
	table.AddRow("identity", "@alice:example.org")
	table.AddRow("next_batch", "s100_200")

	if err := table.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "FIELD") {
		t.Errorf("first line should start with headers, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "@alice:example.org") {
		t.Errorf("row missing value, got %q", lines[1])
	}
}

func TestTableFormatter_FallbackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, map[string]int{"count": 2}); err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("fallback output is not valid JSON: %v", err)
	}
	if decoded["count"] != 2 {
		t.Errorf("count = %d, want 2", decoded["count"])
	}
}
