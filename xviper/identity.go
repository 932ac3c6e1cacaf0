package xviper

import (
	"crypto/sha256"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/appdraft/appdraft/common"
)

const (
	installationIdentityKey = `installation.identity`
)

var (
	guidSteps = []int{4, 2, 2, 2, 6}
)

func envEndpoint() string {
	return strings.TrimSpace(os.Getenv(common.AppdraftEndpointVariable))
}

func AsGuid(content []byte) string {
	result := make([]string, 0, len(guidSteps))
	for _, step := range guidSteps {
		result = append(result, fmt.Sprintf("%02x", content[:step]))
		content = content[step:]
	}
	return strings.Join(result, "-")
}

func generateRandomIdentity() string {
	now := time.Now()
	digester := sha256.New()
	content := fmt.Sprintf("ID: %v/%v/%v", now.Format(time.RFC3339Nano), rand.Uint64(), rand.Uint64())
	digester.Write([]byte(content))
	return AsGuid(digester.Sum(nil))
}

// InstallationIdentity is a stable random GUID for this installation, sent
// with requests so the backend can correlate a session's generation jobs.
func InstallationIdentity() string {
	identity := GetString(installationIdentityKey)
	if len(identity) == 0 {
		identity = generateRandomIdentity()
		Set(installationIdentityKey, identity)
	}
	return identity
}
