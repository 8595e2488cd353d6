package pachca

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
)

const uploadsPath = "uploads"

// UploadFile runs the two-phase upload for a local file: it negotiates
// storage parameters with the API, then streams the file's contents to
// the returned direct URL. The local file is only opened once
// negotiation has succeeded. On success the file's Attachment carries
// the resolved storage key and can be sent with a message.
func (c *Client) UploadFile(ctx context.Context, f *File) error {
	if !f.Negotiated() {
		if err := c.negotiateUpload(ctx, f); err != nil {
			return err
		}
	}

	handle, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("opening %q for upload: %w", f.Path, err)
	}
	defer closeBodySafely(handle, c.logger, "upload of "+f.Path)

	return c.transferUpload(ctx, f, handle)
}

// UploadFileFrom is UploadFile with the content supplied by the caller.
// The reader is consumed exactly once, during the transfer phase; if
// negotiation fails the reader is untouched.
func (c *Client) UploadFileFrom(ctx context.Context, f *File, content io.Reader) error {
	if !f.Negotiated() {
		if err := c.negotiateUpload(ctx, f); err != nil {
			return err
		}
	}
	return c.transferUpload(ctx, f, content)
}

// negotiateUpload asks the API for upload parameters and applies them to
// the file. The uploads endpoint answers with a flat field map rather
// than the usual data envelope.
func (c *Client) negotiateUpload(ctx context.Context, f *File) error {
	body, err := c.send(ctx, http.MethodPost, uploadsPath, nil)
	if err != nil {
		return err
	}

	var params map[string]string
	if err := json.Unmarshal(body, &params); err != nil {
		return fmt.Errorf("%w: decoding upload negotiation: %w", ErrDecodingFailed, err)
	}
	if err := f.applyUploadParams(params); err != nil {
		return err
	}

	c.logger.Debugf("negotiated upload for %s, key %s", f.Name, f.key)
	return nil
}

// transferUpload posts the negotiated form fields plus the file contents
// as multipart form data to the direct upload URL. The storage backend
// requires the file part to come after the policy fields.
func (c *Client) transferUpload(ctx context.Context, f *File, content io.Reader) error {
	if !f.Negotiated() {
		return fmt.Errorf("%w: %s", ErrFileNotNegotiated, f.Name)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for field, value := range f.params {
		if err := writer.WriteField(field, value); err != nil {
			return fmt.Errorf("writing upload field %q: %w", field, err)
		}
	}

	part, err := writer.CreateFormFile("file", f.Name)
	if err != nil {
		return fmt.Errorf("creating upload file part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("reading upload content for %s: %w", f.Name, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing upload form: %w", err)
	}

	if _, err := c.apiCall(ctx, http.MethodPost, f.url, writer.FormDataContentType(), &buf); err != nil {
		return fmt.Errorf("transferring %s: %w", f.Name, err)
	}
	return nil
}

// uploadAll uploads every not-yet-negotiated file in files, in order.
// Already uploaded files are left alone so a message can reuse them.
func (c *Client) uploadAll(ctx context.Context, files []*File) error {
	for _, f := range files {
		if f.Negotiated() {
			continue
		}
		if err := c.UploadFile(ctx, f); err != nil {
			return err
		}
	}
	return nil
}
