package operations_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/appdraft/appdraft/catalog"
	"github.com/appdraft/appdraft/cloud"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/hamlet"
	"github.com/appdraft/appdraft/operations"
	"github.com/appdraft/appdraft/project"
)

func demoDocument(t *testing.T) *document.Document {
	t.Helper()
	reg := catalog.Builtin()
	root, err := reg.DefaultInstance("Scaffold")
	if err != nil {
		t.Fatal(err)
	}
	return document.FromProject(project.New("demo", "demo_app", "com.example.demo", root))
}

func testClient(t *testing.T, handler http.Handler) cloud.Client {
	t.Helper()
	common.ForceHome(t.TempDir())
	t.Cleanup(func() { common.ForceHome("") })
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := cloud.New(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestCreateProjectPostsDocumentAndParsesRecord(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		must.Equal("POST", r.Method)
		must.Equal("/api/projects", r.URL.Path)
		must.Equal("application/json", r.Header.Get("Content-Type"))
		blob, err := io.ReadAll(r.Body)
		must.Nil(err)
		payload := map[string]interface{}{}
		must.Nil(json.Unmarshal(blob, &payload))
		must.Equal("demo", payload["name"])
		doc := payload["document"].(map[string]interface{})
		must.Equal("demo_app", doc["app_name"])
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"p-42","name":"demo","description":"example"}`)
	}))

	record, err := operations.CreateProject(client, "demo", "example", demoDocument(t))
	must.Nil(err)
	must.Equal("p-42", record.ID)
}

func TestCreateProjectSurfacesBackendRefusal(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "route collision", http.StatusConflict)
	}))

	record, err := operations.CreateProject(client, "demo", "", demoDocument(t))
	wont.Nil(err)
	must.Nil(record)
	must.Match("409", err)
}

func TestListAndGetProject(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/projects":
			io.WriteString(w, `[{"id":"p-1","name":"one"},{"id":"p-2","name":"two"}]`)
		case "/api/projects/p-1":
			io.WriteString(w, `{"id":"p-1","name":"one","document":{"app_name":"demo_app","package_name":"com.example.demo","screens":[]}}`)
		default:
			http.NotFound(w, r)
		}
	}))

	records, err := operations.ListProjects(client)
	must.Nil(err)
	must.Equal(2, len(records))
	must.Equal("p-2", records[1].ID)

	record, doc, err := operations.GetProject(client, "p-1")
	must.Nil(err)
	must.Equal("one", record.Name)
	must.Equal("demo_app", doc.AppName)
}

func TestGetProjectRejectsRecordWithoutDocument(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"p-9","name":"hollow"}`)
	}))

	record, doc, err := operations.GetProject(client, "p-9")
	wont.Nil(err)
	must.Nil(record)
	must.Nil(doc)
	must.Match("no document", err)
}

func TestTriggerGenerationReturnsJobHandle(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		must.Equal("POST", r.Method)
		must.Equal("/api/projects/p-1/generate", r.URL.Path)
		io.WriteString(w, `{"job_id":"job-7"}`)
	}))

	job, err := operations.TriggerGeneration(client, "p-1")
	must.Nil(err)
	must.Equal("job-7", job)
}

func TestGenerationLogsComeBackAsText(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "building screens\ndone\n")
	}))

	logs, err := operations.GenerationLogs(client, "p-1")
	must.Nil(err)
	must.Match("building screens", logs)
}

func TestQuickGenerateStreamsArchiveToFile(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		must.Equal("/api/generate", r.URL.Path)
		blob, err := io.ReadAll(r.Body)
		must.Nil(err)
		parsed, err := document.Decode(blob)
		must.Nil(err)
		must.Equal("demo_app", parsed.AppName)
		w.Write([]byte("PK\x03\x04fake-zip"))
	}))

	filename := filepath.Join(t.TempDir(), "demo.zip")
	must.Nil(operations.QuickGenerate(client, demoDocument(t), filename))
	blob, err := os.ReadFile(filename)
	must.Nil(err)
	must.Equal("PK\x03\x04fake-zip", string(blob))
}

func TestDownloadArchiveFailureKeepsError(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no archive yet", http.StatusNotFound)
	}))

	err := operations.DownloadArchive(client, "p-1", filepath.Join(t.TempDir(), "out.zip"))
	wont.Nil(err)
	must.Match("404", err)
}
