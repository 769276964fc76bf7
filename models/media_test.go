package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFileType(t *testing.T) {
	tests := []struct {
		mimeType string
		want     MediaFileType
	}{
		{"video/mp4", VideoFile},
		{"video/webm", VideoFile},
		{"image/png", ImageFile},
		{"image/jpeg", ImageFile},
		{"application/octet-stream", ImageFile},
		{"", ImageFile},
	}
	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFileType(tt.mimeType))
		})
	}
}
