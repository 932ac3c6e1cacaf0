package cloud

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/pathlib"
	"github.com/appdraft/appdraft/pretty"
)

// progressWriter feeds a progress indicator while streaming a body to
// disk.
type progressWriter struct {
	writer      io.Writer
	progressBar pretty.ProgressIndicator
	written     int64
}

func (pw *progressWriter) Write(p []byte) (n int, err error) {
	n, err = pw.writer.Write(p)
	pw.written += int64(n)
	if pw.progressBar != nil {
		pw.progressBar.Update(pw.written, "")
	}
	return n, err
}

// Download fetches a plain URL into a file, with a progress bar when the
// terminal is interactive. Used for archives served from direct links.
func Download(url, filename string) error {
	common.Timeline("start %s download", filename)
	defer common.Timeline("done %s download", filename)

	if pathlib.Exists(filename) {
		err := os.Remove(filename)
		if err != nil {
			return err
		}
	}

	client := &http.Client{}
	request, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	request.Header.Add("Accept", "application/octet-stream")
	request.Header.Add("User-Agent", common.UserAgent())
	response, err := client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("downloading %q failed, reason: %q", url, response.Status)
	}

	out, err := pathlib.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()

	var progressBar pretty.ProgressIndicator
	if response.ContentLength > 0 && pretty.Interactive {
		progressBar = pretty.NewProgressBar(fmt.Sprintf("Downloading %s", filename), response.ContentLength)
		progressBar.Start()
	}

	pw := &progressWriter{writer: out, progressBar: progressBar}
	bytecount, err := io.Copy(pw, response.Body)
	if err != nil {
		if progressBar != nil {
			progressBar.Stop(false)
		}
		return err
	}
	if progressBar != nil {
		progressBar.Stop(true)
	}

	common.Timeline("downloaded %d bytes to %s", bytecount, filename)
	return out.Sync()
}
