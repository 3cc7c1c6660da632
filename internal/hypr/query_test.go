package hypr

import (
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBatchRequest(t *testing.T) {
	got := batchRequest([]string{"monitors", "workspaces"})
	want := "[[BATCH]] j/monitors ; j/workspaces"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSplitDocuments_SingleDocument(t *testing.T) {
	docs, err := splitDocuments([]byte(`[{"id":1}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if string(docs[0]) != `[{"id":1}]` {
		t.Errorf("unexpected document: %s", docs[0])
	}
}

func TestSplitDocuments_ConcatenatedBoundaries(t *testing.T) {
	// Hyprland concatenates batch responses with no separator; all
	// three boundary shapes (][ }[ ]{) must split cleanly.
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			"array_array",
			`[{"id":1}][{"id":2}]`,
			[]string{`[{"id":1}]`, `[{"id":2}]`},
		},
		{
			"object_array",
			`{"id":1}[{"id":2}]`,
			[]string{`{"id":1}`, `[{"id":2}]`},
		},
		{
			"array_object",
			`[{"id":1}]{"id":2}`,
			[]string{`[{"id":1}]`, `{"id":2}`},
		},
		{
			"three_documents",
			`[{"id":1}][{"id":2}][{"id":3}]`,
			[]string{`[{"id":1}]`, `[{"id":2}]`, `[{"id":3}]`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := splitDocuments([]byte(tt.response))
			if err != nil {
				t.Fatal(err)
			}
			if len(docs) != len(tt.want) {
				t.Fatalf("expected %d documents, got %d", len(tt.want), len(docs))
			}
			for i, want := range tt.want {
				if string(docs[i]) != want {
					t.Errorf("document %d: got %s, want %s", i, docs[i], want)
				}
			}
		})
	}
}

func TestSplitDocuments_BoundaryBigramInsideString(t *testing.T) {
	// A literal "][" inside a string value must not split the document.
	docs, err := splitDocuments([]byte(`[{"title":"a][b"}]{"ok":true}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	var first []map[string]any
	if err := json.Unmarshal(docs[0], &first); err != nil {
		t.Fatal(err)
	}
	if first[0]["title"] != "a][b" {
		t.Errorf("string with bigram mangled: %v", first[0]["title"])
	}
}

func TestSplitDocuments_WhitespaceBetweenDocuments(t *testing.T) {
	docs, err := splitDocuments([]byte("[1,2]\n{\"a\":3}"))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
}

func TestSplitDocuments_InvalidJSON(t *testing.T) {
	_, err := splitDocuments([]byte(`[{"id":1}]garbage`))
	var perr *ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}

// setInstanceEnv points socket resolution at a temp runtime dir and
// returns the instance socket directory.
func setInstanceEnv(t *testing.T) string {
	t.Helper()
	runtime := t.TempDir()
	if err := os.MkdirAll(filepath.Join(runtime, "hypr", "TESTSIG"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_RUNTIME_DIR", runtime)
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "TESTSIG")
	return filepath.Join(runtime, "hypr", "TESTSIG")
}

func TestQuery_EndToEnd(t *testing.T) {
	dir := setInstanceEnv(t)

	listener, err := net.Listen("unix", filepath.Join(dir, ".socket.sock"))
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()

	requests := make(chan string, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		buf := make([]byte, 1024)
		n, _ := conn.Read(buf)
		requests <- string(buf[:n])
		conn.Write([]byte(`[{"id":1}][{"id":0,"name":"DP-1"}]`))
	}()

	docs, err := Query("workspaces", "monitors")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if got := <-requests; got != "[[BATCH]] j/workspaces ; j/monitors" {
		t.Errorf("unexpected request line: %q", got)
	}
	if !strings.Contains(string(docs[1]), "DP-1") {
		t.Errorf("documents out of order: %s", docs[1])
	}
}

func TestQuery_MissingInstanceSignature(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	_, err := Query("monitors")
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestQuery_ConnectFailure(t *testing.T) {
	setInstanceEnv(t)

	_, err := Query("monitors")
	var cerr *ConnError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConnError, got %v", err)
	}
}
