package cloud_test

import (
	"testing"

	"github.com/appdraft/appdraft/cloud"
	"github.com/appdraft/appdraft/hamlet"
)

func TestEnsureHttps(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	nice, err := cloud.EnsureHttps("https://forge.example.com/")
	must.Nil(err)
	must.Equal("https://forge.example.com", nice)

	nice, err = cloud.EnsureHttps("  https://forge.example.com//  ")
	must.Nil(err)
	must.Equal("https://forge.example.com", nice)

	// Loopback may stay plain http for local development backends.
	nice, err = cloud.EnsureHttps("http://127.0.0.1:8080")
	must.Nil(err)
	must.Equal("http://127.0.0.1:8080", nice)

	nice, err = cloud.EnsureHttps("http://localhost:8080")
	must.Nil(err)
	must.Equal("http://localhost:8080", nice)

	_, err = cloud.EnsureHttps("http://forge.example.com")
	wont.Nil(err)
}

func TestNewClientKeepsEndpoint(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	client, err := cloud.New("https://forge.example.com")
	must.Nil(err)
	must.Equal("https://forge.example.com", client.Endpoint())

	request := client.NewRequest("/api/projects")
	must.Equal("/api/projects", request.Url)
	must.Equal(0, len(request.Headers))
}
