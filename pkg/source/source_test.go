package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestHTTPSourceList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/list-tccs":
			w.Write([]byte(`{"tccFiles": ["tcc1.json", "tcc2.json"]}`))
		case "/data/tcc1.json":
			w.Write([]byte(`{"Título": "Primeiro"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)
	ctx := context.Background()

	names, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"tcc1.json", "tcc2.json"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List() = %v, want %v", names, want)
	}

	body, err := src.Get(ctx, "tcc1.json")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(body) != `{"Título": "Primeiro"}` {
		t.Errorf("Get() body = %s", body)
	}

	if _, err := src.Get(ctx, "missing.json"); err == nil {
		t.Error("Get() on missing document should fail")
	}
}

func TestHTTPSourceListErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "in-band error field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"error": "Falha ao listar arquivos TCC no servidor."}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			src := NewHTTPSource(srv.URL)
			_, err := src.List(context.Background())
			if err == nil {
				t.Fatal("List() should fail")
			}
			if !errors.Is(err, ErrEnumeration) {
				t.Errorf("List() error = %v, want ErrEnumeration", err)
			}
		})
	}
}

func TestHTTPSourceListTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	src := NewHTTPSource(srv.URL)
	_, err := src.List(context.Background())
	if !errors.Is(err, ErrEnumeration) {
		t.Errorf("List() error = %v, want ErrEnumeration", err)
	}
}

func TestIndexSourceList(t *testing.T) {
	index := `<html><body><h1>Index of /data</h1>
	<a href="../">../</a>
	<a href="tcc1.json">tcc1.json</a>
	<a href="./tcc2.json">tcc2.json</a>
	<a href="notas.txt">notas.txt</a>
	<a href="sub/dir.json">sub/dir.json</a>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Write([]byte(index))
		case "/tcc1.json":
			w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewIndexSource(srv.URL)
	names, err := src.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"tcc1.json", "tcc2.json"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List() = %v, want %v", names, want)
	}

	if _, err := src.Get(context.Background(), "tcc1.json"); err != nil {
		t.Errorf("Get() error: %v", err)
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	writeFile("b.json", `{"Título": "B"}`)
	writeFile("a.json", `{"Título": "A"}`)
	writeFile("readme.txt", "ignore me")

	src := NewDirSource(dir)
	ctx := context.Background()

	names, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"a.json", "b.json"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List() = %v, want %v", names, want)
	}

	body, err := src.Get(ctx, "a.json")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(body) != `{"Título": "A"}` {
		t.Errorf("Get() body = %s", body)
	}
}

func TestDirSourceMissingDir(t *testing.T) {
	src := NewDirSource(filepath.Join(t.TempDir(), "nope"))
	_, err := src.List(context.Background())
	if !errors.Is(err, ErrEnumeration) {
		t.Errorf("List() error = %v, want ErrEnumeration", err)
	}
}

func TestDetect(t *testing.T) {
	if _, ok := Detect("https://example.com/tccs").(*HTTPSource); !ok {
		t.Error("expected HTTPSource for https URL")
	}
	if _, ok := Detect("https://example.com/data/").(*IndexSource); !ok {
		t.Error("expected IndexSource for URL with trailing slash")
	}
	if _, ok := Detect("/var/data/tccs").(*DirSource); !ok {
		t.Error("expected DirSource for local path")
	}
}
