package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaFileType enum
type MediaFileType string

const (
	ImageFile MediaFileType = "image"
	VideoFile MediaFileType = "video"
)

// Media is a file attached to an issue.
type Media struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IssueID   primitive.ObjectID `bson:"issueID" json:"issueID"`
	FileType  MediaFileType      `bson:"fileType" json:"fileType"`
	URL       string             `bson:"url" json:"url"`
	Filename  string             `bson:"filename" json:"filename"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ClassifyFileType maps an upload's MIME type to the stored file type:
// anything under video/* is a video, everything else an image.
func ClassifyFileType(mimeType string) MediaFileType {
	if strings.HasPrefix(mimeType, "video") {
		return VideoFile
	}
	return ImageFile
}
