package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"civic-reporter-be/config"

	"github.com/gin-gonic/gin"
)

// getCollection resolves a named collection. It is a variable so
// handler tests can point it at a mock deployment.
var getCollection = config.GetCollection

// locationInput is the location part of a submission. Latitude and
// longitude are pointers so a missing coordinate can be told apart from
// an explicit zero.
type locationInput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

// parseLocation decodes a location form value. Clients send either a
// JSON-encoded string or nothing at all; an empty value yields nil so
// the missing-field check reports it.
func parseLocation(raw string) (*locationInput, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var loc locationInput
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// missingFields maps each required submission field to whether it is
// absent. Location counts as missing when either coordinate is.
func missingFields(title, description string, loc *locationInput, issueType, department string) map[string]bool {
	return map[string]bool{
		"title":       title == "",
		"description": description == "",
		"location":    loc == nil || loc.Latitude == nil || loc.Longitude == nil,
		"issueType":   issueType == "",
		"department":  department == "",
	}
}

func anyMissing(missing map[string]bool) bool {
	for _, m := range missing {
		if m {
			return true
		}
	}
	return false
}

// safeExt returns the lowercased extension of name, truncated to at
// most 8 runes. Truncating on rune boundaries keeps a crafted
// multi-byte filename from producing an invalid UTF-8 suffix.
func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if r := []rune(ext); len(r) > 8 {
		ext = string(r[:8])
	}
	return ext
}

// saveUpload stores an uploaded file under uploadDir and returns its
// public locator ("/uploads/<name>").
func saveUpload(c *gin.Context, uploadDir string, fh *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("media_%d_%s%s", time.Now().UnixNano(), randString(6), safeExt(fh.Filename))
	dst := filepath.Join(uploadDir, name)
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// randString returns a short random hex string of length n.
func randString(n int) string {
	if n <= 0 {
		n = 6
	}
	b := make([]byte, (n+1)/2)
	_, _ = rand.Read(b)
	s := hex.EncodeToString(b)
	if len(s) > n {
		return s[:n]
	}
	return s
}

// getenv returns env var value or default.
func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
