package domain

import (
	"net/url"
	"path"
	"strings"
)

// AttachmentKind tags the variant held in a draft's attachment slot
type AttachmentKind int

const (
	// NoAttachment means the draft carries no file
	NoAttachment AttachmentKind = iota
	// ExistingRemoteFile is a file already stored by the remote service
	ExistingRemoteFile
	// NewUpload is a file picked in the form that has not been sent yet
	NewUpload
)

func (k AttachmentKind) String() string {
	switch k {
	case ExistingRemoteFile:
		return "existing"
	case NewUpload:
		return "upload"
	default:
		return "none"
	}
}

// Attachment is the tagged attachment slot of a draft.
// Path is set only for ExistingRemoteFile; Name, Data and ContentType only for NewUpload.
type Attachment struct {
	Kind        AttachmentKind
	Path        string
	Name        string
	ContentType string
	Data        []byte
}

// None returns an empty attachment slot
func None() Attachment {
	return Attachment{Kind: NoAttachment}
}

// RemoteFile wraps the path of a file the remote service already holds
func RemoteFile(p string) Attachment {
	if p == "" {
		return None()
	}
	return Attachment{Kind: ExistingRemoteFile, Path: p}
}

// Upload wraps a newly selected file
func Upload(name string, data []byte, contentType string) Attachment {
	return Attachment{Kind: NewUpload, Name: name, Data: data, ContentType: contentType}
}

// IsNone reports whether the slot is empty
func (a Attachment) IsNone() bool {
	return a.Kind == NoAttachment
}

// DisplayName is the file name shown next to the attachment slot
func (a Attachment) DisplayName() string {
	switch a.Kind {
	case ExistingRemoteFile:
		return path.Base(a.Path)
	case NewUpload:
		return a.Name
	}
	return ""
}

var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

// IsImagePath reports whether a stored file should be rendered inline
func IsImagePath(filePath string) bool {
	i := strings.LastIndex(filePath, ".")
	if i < 0 {
		return false
	}
	return imageExtensions[strings.ToLower(filePath[i+1:])]
}

// StoredFileName returns the user-facing name of a stored file.
// Stored names look like /uploads/<uuid>_<original>; the part before the first "_" is dropped.
func StoredFileName(filePath string) string {
	cleaned := strings.Replace(filePath, "/uploads/", "", 1)
	name := cleaned
	if i := strings.LastIndex(cleaned, "/"); i >= 0 {
		name = cleaned[i+1:]
	}
	if i := strings.Index(name, "_"); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}
	return name
}

// lastSegment returns the text after the final "/"
func lastSegment(filePath string) string {
	if i := strings.LastIndex(filePath, "/"); i >= 0 {
		return filePath[i+1:]
	}
	return filePath
}

// AttachmentView describes how the detail view renders a post's file
type AttachmentView struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	IsImage  bool   `json:"is_image"`
	Download bool   `json:"download"`
}

// NewAttachmentView builds the view of a stored file, or nil when there is none.
// Images are served inline by their stored name, other files by their display name.
func NewAttachmentView(filePath string) *AttachmentView {
	if filePath == "" {
		return nil
	}
	if IsImagePath(filePath) {
		return &AttachmentView{
			Name:    lastSegment(filePath),
			URL:     "/community/images/" + url.PathEscape(lastSegment(filePath)),
			IsImage: true,
		}
	}
	name := StoredFileName(filePath)
	return &AttachmentView{
		Name:     name,
		URL:      "/community/files/" + url.PathEscape(name),
		Download: true,
	}
}

// FileStream is a file body proxied from the remote service
type FileStream struct {
	ContentType   string
	ContentLength int64
	Disposition   string
}
