package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunClassify(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if code := run([]string{"classify", "fun", "x1", "while"}, &out); code != 0 {
		t.Fatalf("exit code %d", code)
	}

	expected := "fun\tfun\nx1\tident\nwhile\twhile\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRunClassifyJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if code := run([]string{"classify", "--json", "else"}, &out); code != 0 {
		t.Fatalf("exit code %d", code)
	}

	var got []map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	expected := []map[string]any{
		{"word": "else", "keyword": true, "kind": "else", "text": "else"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRunRender(t *testing.T) {
	t.Parallel()

	jsonFile := writeFixture(t, "paren.json", `["(", {"kind": "ident", "text": "x"}, ")"]`)
	yamlFile := writeFixture(t, "loop.yaml", `
- "while"
- " "
- "("
- kind: bool_lit
  text: "true"
- ")"
- " "
- "break"
- ";"
`)

	var out bytes.Buffer
	if code := run([]string{"render", jsonFile, yamlFile}, &out); code != 0 {
		t.Fatalf("exit code %d", code)
	}

	expected := "(x)\nwhile (true) break;\n"
	if diff := cmp.Diff(expected, out.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRunRenderJSON(t *testing.T) {
	t.Parallel()

	file := writeFixture(t, "eq.yml", "- kind: ident\n  text: a\n- \"==\"\n- kind: int_lit\n  text: \"1\"\n")

	var out bytes.Buffer
	if code := run([]string{"render", "--json", file}, &out); code != 0 {
		t.Fatalf("exit code %d", code)
	}

	var got []map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	expected := []map[string]any{
		{"kind": "ident", "text": "a"},
		{"kind": "eq"},
		{"kind": "int_lit", "text": "1"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRunKeywords(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if code := run([]string{"keywords"}, &out); code != 0 {
		t.Fatalf("exit code %d", code)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 12 || lines[0] != "fun" {
		t.Errorf("unexpected keywords: %q", lines)
	}
}

func TestRunFailures(t *testing.T) {
	t.Parallel()

	broken := writeFixture(t, "broken.json", `["nope"]`)
	unknownExt := writeFixture(t, "tokens.txt", `[]`)

	for _, args := range [][]string{
		{},
		{"classify"},
		{"render"},
		{"render", broken},
		{"render", unknownExt},
		{"render", filepath.Join(t.TempDir(), "missing.json")},
		{"serve"},
		{"parse"},
	} {
		var out bytes.Buffer
		if code := run(args, &out); code != 1 {
			t.Errorf("%q: expect to exit 1 but got %d", args, code)
		}
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if code := run([]string{"--help"}, &out); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out.String(), "classify") {
		t.Errorf("help does not mention classify: %q", out.String())
	}
}

func TestRenderDebugDumpsInArgumentOrder(t *testing.T) {
	t.Parallel()

	var files []string
	for _, name := range []string{"a", "b", "c", "d"} {
		files = append(files, writeFixture(t, name+".json", `["(", {"kind": "ident", "text": "`+name+`"}, ")"]`))
	}

	var out, debugOut bytes.Buffer
	cmd := &renderCommand{Debug: true, out: &out, debugOut: &debugOut}
	if err := cmd.Execute(files); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff("(a)\n(b)\n(c)\n(d)\n", out.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	dump := debugOut.String()
	last := -1
	for i, file := range files {
		header := strings.Index(dump, "== "+file+"\n")
		if header <= last {
			t.Fatalf("dump of %s is out of order:\n%s", file, dump)
		}
		section := dump[header:]
		if i+1 < len(files) {
			section = section[:strings.Index(section, "== "+files[i+1])]
		}
		if rendered := "(" + string(rune('a'+i)) + ")\n"; !strings.HasSuffix(section, rendered) {
			t.Errorf("dump of %s does not end with %q:\n%s", file, rendered, section)
		}
		last = header
	}
}
