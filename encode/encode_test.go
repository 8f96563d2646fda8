package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/scenekit/gd-format/parse"
)

const sceneDoc = `[gd_scene load_steps=2 format=3]

[node name="Player" type="CharacterBody2D"]
position = Vector2(1, 2.5)
meta = {"group": "actors", "layers": [1, 2]}
visible = true
`

func TestEncodeJSON(t *testing.T) {
	f, err := parse.Parse([]byte(sceneDoc))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeJSON(f, &buf); err != nil {
		t.Fatal(err)
	}
	var tags []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &tags); err != nil {
		t.Fatal(err)
	}
	if len(tags) != 2 {
		t.Fatalf("got %d tags", len(tags))
	}
	if tags[0]["tag"] != "gd_scene" || tags[1]["tag"] != "node" {
		t.Errorf("tags: %v %v", tags[0]["tag"], tags[1]["tag"])
	}
	fields := tags[0]["fields"].([]any)
	if len(fields) != 2 {
		t.Fatalf("got %d fields", len(fields))
	}
	first := fields[0].(map[string]any)
	if first["name"] != "load_steps" || first["value"] != 2.0 {
		t.Errorf("first field: %v", first)
	}
	assigns := tags[1]["assignments"].([]any)
	if len(assigns) != 3 {
		t.Fatalf("got %d assignments", len(assigns))
	}
	pos := assigns[0].(map[string]any)["value"].(map[string]any)
	if pos["construct"] != "Vector2" {
		t.Errorf("construct: %v", pos)
	}
	args := pos["args"].([]any)
	if len(args) != 2 || args[0] != 1.0 || args[1] != 2.5 {
		t.Errorf("args: %v", args)
	}
}

func TestMarshalJSONCompact(t *testing.T) {
	f, err := parse.Parse([]byte(`[node]`))
	if err != nil {
		t.Fatal(err)
	}
	d, err := MarshalJSON(f)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.ContainsAny(d, "\n") {
		t.Errorf("not compact: %q", d)
	}
	want := `[{"assignments":[],"fields":[],"tag":"node"}]`
	if string(d) != want {
		t.Errorf("got %s", d)
	}
}

func TestEncodeYAML(t *testing.T) {
	f, err := parse.Parse([]byte(sceneDoc))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeYAML(f, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"tag: gd_scene",
		"tag: node",
		"name: position",
		"construct: Vector2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestTree(t *testing.T) {
	f, err := parse.Parse([]byte(sceneDoc))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Tree(f, &buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"[gd_scene]",
		"  field load_steps = Number 2",
		"[node]",
		`  field name = String "Player"`,
		"  assign position = Vector2 (2 args)",
		"  assign visible = Bool true",
	} {
		if !strings.Contains(buf.String(), want+"\n") {
			t.Errorf("missing line %q in:\n%s", want, buf.String())
		}
	}
	// dict entries come out sorted by key
	gi := strings.Index(buf.String(), `"group"`)
	li := strings.Index(buf.String(), `"layers"`)
	if gi < 0 || li < 0 || gi > li {
		t.Errorf("dict keys unsorted in:\n%s", buf.String())
	}
}
