package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// DownloadImage retrieves the image behind the url into a temporary file and
// returns the open file handle. Removing the file is up to the caller.
func DownloadImage(url string) (*os.File, error) {
	res, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("unable to download image file from URI: %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download image file from URI: %s, status %v", url, res.Status)
	}

	tmpfile, err := os.CreateTemp("", "image")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %w", err)
	}

	if _, err := io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("unable to copy the source URI into the destination file: %w", err)
	}
	return tmpfile, nil
}
