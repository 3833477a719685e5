package utils

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// DownloadFont downloads a font file from the internet and saves it into a temporary file.
func DownloadFont(uri string) (*os.File, error) {
	res, err := http.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("unable to download the font file from URI: %s: %w", uri, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download the font file from URI: %s, status %v", uri, res.Status)
	}

	tmpfile, err := os.CreateTemp("", "font")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %w", err)
	}

	// Copy the font binary data into the temporary file.
	if _, err := io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("unable to copy the source URI into the destination file: %w", err)
	}

	ctype, err := DetectContentType(tmpfile.Name())
	if err != nil {
		tmpfile.Close()
		return nil, err
	}

	// http.DetectContentType sniffs sfnt containers as font/ttf, font/otf
	// or font/collection; anything else is not usable as a font source.
	if !strings.Contains(ctype.(string), "font") {
		tmpfile.Close()
		return nil, fmt.Errorf("the downloaded file is not a valid font type")
	}

	return tmpfile, nil
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	_, err := url.ParseRequestURI(uri)
	if err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

// DetectContentType detects the file type by reading MIME type information of the file content.
func DetectContentType(fname string) (any, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}()

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil {
		return nil, err
	}

	// Reset the read pointer if necessary.
	if _, err := file.Seek(0, 0); err != nil {
		return nil, err
	}

	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	contentType := http.DetectContentType(buffer)

	return string(contentType), nil
}
