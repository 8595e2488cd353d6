package pachca

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileType distinguishes how Pachca renders an attachment.
type FileType string

const (
	FileTypeFile  FileType = "file"
	FileTypeImage FileType = "image"
)

// filenamePlaceholder is the token the upload negotiation embeds in the
// key template; it is substituted with the file's display name.
const filenamePlaceholder = "${filename}"

// File describes a local file pending upload. Path, type, name and size
// are fixed at construction; the storage key, direct upload URL and the
// remaining negotiated form fields are set exactly once by the upload
// negotiation and are read-only afterward. A File must not be reused for
// a second upload without re-negotiating: the negotiated fields are
// single-use.
type File struct {
	Path string
	Type FileType
	Name string
	Size int64

	key    string
	url    string
	params map[string]string
}

// NewFile creates a plain-file descriptor for the file at path. The
// display name defaults to the path's base name and the size is read
// from the filesystem.
func NewFile(path string) (*File, error) {
	return newFile(path, FileTypeFile, "")
}

// NewImage creates an image descriptor for the file at path.
func NewImage(path string) (*File, error) {
	return newFile(path, FileTypeImage, "")
}

// NewNamedFile creates a descriptor with an explicit display name and
// type. The name is what the key template's placeholder resolves to and
// what recipients see.
func NewNamedFile(path, name string, fileType FileType) (*File, error) {
	return newFile(path, fileType, name)
}

func newFile(path string, fileType FileType, name string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", path, err)
	}
	if name == "" {
		name = filepath.Base(path)
	}
	return &File{
		Path: path,
		Type: fileType,
		Name: name,
		Size: info.Size(),
	}, nil
}

// applyUploadParams stores the negotiated upload fields on the file. The
// direct URL is consumed out of the field map; the key template's
// placeholder is resolved against the display name.
func (f *File) applyUploadParams(params map[string]string) error {
	directURL, ok := params["direct_url"]
	if !ok || directURL == "" {
		return fmt.Errorf("%w: upload negotiation missing direct_url", ErrDecodingFailed)
	}
	keyTemplate, ok := params["key"]
	if !ok {
		return fmt.Errorf("%w: upload negotiation missing key template", ErrDecodingFailed)
	}
	delete(params, "direct_url")

	f.url = directURL
	f.params = params
	f.key = strings.ReplaceAll(keyTemplate, filenamePlaceholder, f.Name)
	return nil
}

// Key reports the negotiated storage key. The second return is false
// before the upload negotiation has run.
func (f *File) Key() (string, bool) {
	return f.key, f.key != ""
}

// Negotiated reports whether upload parameters have been applied.
func (f *File) Negotiated() bool {
	return f.url != ""
}

// Attachment returns the file summary sent with a message. It is stable
// across calls: before negotiation the key is empty, afterward it is the
// resolved storage key.
func (f *File) Attachment() Attachment {
	return Attachment{
		Key:      f.key,
		Name:     f.Name,
		FileType: f.Type,
		Size:     f.Size,
	}
}
