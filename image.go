package sketch

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	// Decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/gg"
	"github.com/h2non/filetype"
)

// sniffLen is the header size filetype needs to recognise every format.
const sniffLen = 261

// Image is a decoded, immutable image resource that Image shapes draw.
// Only handles returned by LoadImage, DecodeImage or ImageFromImage are
// loaded; the zero Image and nil are not.
type Image struct {
	buf    *gg.ImageBuf
	name   string
	format string
}

// LoadImage reads and decodes the image file at path.
func LoadImage(path string) (*Image, error) {
	// #nosec G304 -- image path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sketch: open image: %w", err)
	}
	defer f.Close()
	return DecodeImage(f, filepath.Base(path))
}

// DecodeImage decodes an image from r. name is kept for diagnostics.
//
// The header is sniffed first, so non-image input fails with
// ErrInvalidArgument before any decoder runs. PNG, JPEG, GIF, BMP, TIFF
// and WebP are supported.
func DecodeImage(r io.Reader, name string) (*Image, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("sketch: read image %s: %w", name, err)
	}
	if !filetype.IsImage(head) {
		return nil, invalidArg("DecodeImage", name+" is not an image")
	}

	img, format, err := image.Decode(br)
	if err != nil {
		return nil, &decodeError{name: name, err: err}
	}
	Logger().Debug("sketch: image decoded", "name", name, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return &Image{
		buf:    gg.ImageBufFromImage(img),
		name:   name,
		format: format,
	}, nil
}

// ImageFromImage wraps an in-memory image.
func ImageFromImage(img image.Image, name string) *Image {
	if img == nil {
		return nil
	}
	return &Image{buf: gg.ImageBufFromImage(img), name: name, format: "memory"}
}

// Loaded reports whether i holds decoded pixels.
func (i *Image) Loaded() bool {
	return i != nil && i.buf != nil && i.buf.Width() > 0 && i.buf.Height() > 0
}

// Width returns the pixel width, or 0 if i is not loaded.
func (i *Image) Width() int {
	if !i.Loaded() {
		return 0
	}
	return i.buf.Width()
}

// Height returns the pixel height, or 0 if i is not loaded.
func (i *Image) Height() int {
	if !i.Loaded() {
		return 0
	}
	return i.buf.Height()
}

// Name returns the name given at load time.
func (i *Image) Name() string {
	if i == nil {
		return ""
	}
	return i.name
}

// Format returns the decoder name ("png", "jpeg", ...) or "memory".
func (i *Image) Format() string {
	if i == nil {
		return ""
	}
	return i.format
}

// Buf returns the gg image buffer backing i.
func (i *Image) Buf() *gg.ImageBuf {
	if i == nil {
		return nil
	}
	return i.buf
}

// decodeError reports a recognised image that failed to decode.
// It counts as an invalid argument.
type decodeError struct {
	name string
	err  error
}

func (e *decodeError) Error() string {
	return "sketch: decode image " + e.name + ": " + e.err.Error()
}

func (e *decodeError) Unwrap() []error {
	return []error{ErrInvalidArgument, e.err}
}
