package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/damoang/angple-community/internal/common"
	"github.com/damoang/angple-community/internal/domain"
)

// FileKind selects which remote file endpoint serves a name
type FileKind int

const (
	// FileImage is an inline image
	FileImage FileKind = iota
	// FileDownload is a generic attachment served as a download
	FileDownload
)

// FileRepository attachment access interface
type FileRepository interface {
	// RemoveFile detaches the existing attachment of a post
	RemoveFile(ctx context.Context, session *domain.Session, postID int64) error
	// OpenFile streams a stored file. The caller closes the reader.
	OpenFile(ctx context.Context, kind FileKind, name string) (io.ReadCloser, *domain.FileStream, error)
}

func (r *communityRepository) RemoveFile(ctx context.Context, session *domain.Session, postID int64) error {
	path := "/api/community/removeFile/" + strconv.FormatInt(postID, 10)
	if _, err := r.send(ctx, "remove_file", http.MethodPut, path, nil, "", session); err != nil {
		return fmt.Errorf("%w: remove file of post %d: %w", common.ErrRemoteWriteFailed, postID, err)
	}
	return nil
}

func (r *communityRepository) OpenFile(ctx context.Context, kind FileKind, name string) (io.ReadCloser, *domain.FileStream, error) {
	prefix := "/api/community/images/"
	op := "image"
	if kind == FileDownload {
		prefix = "/api/community/downloadFile/"
		op = "download"
	}

	req, err := r.newRequest(ctx, http.MethodGet, prefix+url.PathEscape(name), nil, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := r.do(op, req)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", common.ErrFileNotFound, name)
		}
		return nil, nil, fmt.Errorf("%w: open %s: %w", common.ErrRemoteFetchFailed, name, err)
	}

	stream := &domain.FileStream{
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
		Disposition:   resp.Header.Get("Content-Disposition"),
	}
	if stream.ContentType == "" {
		stream.ContentType = "application/octet-stream"
	}
	return resp.Body, stream, nil
}
