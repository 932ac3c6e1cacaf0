// Package operations drives the generation service: project persistence,
// generation jobs, logs, and archive downloads. Every operation is one
// request with no retry; in-memory editor state is never rolled forward or
// back on failure.
package operations

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/appdraft/appdraft/cloud"
	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/fail"
	"github.com/appdraft/appdraft/pathlib"
)

// ProjectRecord is the backend's view of a stored project.
type ProjectRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type projectPayload struct {
	ProjectRecord
	Document *document.Document `json:"document,omitempty"`
}

func jsonBody(value interface{}) (*bytes.Reader, error) {
	blob, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(blob), nil
}

func reject(context string, response *cloud.Response) error {
	if response.Err != nil {
		return fmt.Errorf("%s failed: %w", context, response.Err)
	}
	return fmt.Errorf("%s failed: backend answered %d: %s", context, response.Status, string(response.Body))
}

// CreateProject stores a new project at the backend and returns its
// record, including the identifier later operations need.
func CreateProject(client cloud.Client, name, description string, doc *document.Document) (record *ProjectRecord, err error) {
	defer fail.Around(&err)

	body, failure := jsonBody(projectPayload{
		ProjectRecord: ProjectRecord{Name: name, Description: description},
		Document:      doc,
	})
	fail.Fast(failure)
	request := client.NewRequest("/api/projects")
	request.Headers["Content-Type"] = "application/json"
	request.Body = body
	response := client.Post(request)
	fail.On(!response.Ok(), "%v", reject("project create", response))

	record = &ProjectRecord{}
	fail.Fast(json.Unmarshal(response.Body, record))
	common.Debug("Created remote project %q as %q.", name, record.ID)
	return record, nil
}

// ListProjects fetches every project record the backend holds.
func ListProjects(client cloud.Client) ([]ProjectRecord, error) {
	request := client.NewRequest("/api/projects")
	response := client.Get(request)
	if !response.Ok() {
		return nil, reject("project list", response)
	}
	records := []ProjectRecord{}
	if err := json.Unmarshal(response.Body, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetProject fetches one record together with its document.
func GetProject(client cloud.Client, id string) (*ProjectRecord, *document.Document, error) {
	request := client.NewRequest("/api/projects/" + id)
	response := client.Get(request)
	if !response.Ok() {
		return nil, nil, reject("project fetch", response)
	}
	payload := projectPayload{}
	if err := json.Unmarshal(response.Body, &payload); err != nil {
		return nil, nil, err
	}
	if payload.Document == nil {
		return nil, nil, fmt.Errorf("project fetch failed: record %q carries no document", id)
	}
	return &payload.ProjectRecord, payload.Document, nil
}

// UpdateFields is a partial remote update; nil members stay untouched.
type UpdateFields struct {
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	Document    *document.Document `json:"document,omitempty"`
}

func UpdateProject(client cloud.Client, id string, fields UpdateFields) (err error) {
	defer fail.Around(&err)

	body, failure := jsonBody(fields)
	fail.Fast(failure)
	request := client.NewRequest("/api/projects/" + id)
	request.Headers["Content-Type"] = "application/json"
	request.Body = body
	response := client.Put(request)
	fail.On(!response.Ok(), "%v", reject("project update", response))
	return nil
}

func DeleteProject(client cloud.Client, id string) error {
	request := client.NewRequest("/api/projects/" + id)
	response := client.Delete(request)
	if !response.Ok() {
		return reject("project delete", response)
	}
	return nil
}

// TriggerGeneration queues a generation job for a stored project and
// returns the job handle.
func TriggerGeneration(client cloud.Client, id string) (string, error) {
	request := client.NewRequest("/api/projects/" + id + "/generate")
	response := client.Post(request)
	if !response.Ok() {
		return "", reject("generation trigger", response)
	}
	handle := struct {
		JobID string `json:"job_id"`
	}{}
	if err := json.Unmarshal(response.Body, &handle); err != nil {
		return "", err
	}
	return handle.JobID, nil
}

// GenerationLogs fetches the plain-text log of the latest generation run.
func GenerationLogs(client cloud.Client, id string) (string, error) {
	request := client.NewRequest("/api/projects/" + id + "/logs")
	response := client.Get(request)
	if !response.Ok() {
		return "", reject("log fetch", response)
	}
	return string(response.Body), nil
}

// DownloadArchive streams the generated application archive to a file.
func DownloadArchive(client cloud.Client, id, filename string) (err error) {
	defer fail.Around(&err)

	out, failure := pathlib.Create(filename)
	fail.Fast(failure)
	defer out.Close()

	request := client.NewRequest("/api/projects/" + id + "/download")
	request.Headers["Accept"] = "application/octet-stream"
	request.Stream = out
	response := client.Get(request)
	fail.On(!response.Ok(), "%v", reject("archive download", response))
	fail.Fast(out.Sync())
	common.Log("Wrote %q.", filename)
	return nil
}

// QuickGenerate trades a document for a generated archive without storing
// a project at the backend.
func QuickGenerate(client cloud.Client, doc *document.Document, filename string) (err error) {
	defer fail.Around(&err)

	blob, failure := document.Encode(doc)
	fail.Fast(failure)
	out, failure := pathlib.Create(filename)
	fail.Fast(failure)
	defer out.Close()

	request := client.NewRequest("/api/generate")
	request.Headers["Content-Type"] = "application/json"
	request.Headers["Accept"] = "application/octet-stream"
	request.Body = bytes.NewReader(blob)
	request.Stream = out
	response := client.Post(request)
	fail.On(!response.Ok(), "%v", reject("quick generate", response))
	fail.Fast(out.Sync())
	common.Log("Wrote %q.", filename)
	return nil
}
