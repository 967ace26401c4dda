// Package pag implements a streaming decoder for the PAG (Portable
// Animated Graphics) binary container format: a little-endian,
// tag-framed byte stream describing an animation's composition,
// layer, and asset structure as a typed tree, stopping short of
// rendering, animation evaluation, embedded-media decompression, or
// serialization.
package pag

import (
	"github.com/pagkit/pagparse/internal/compress"
	"github.com/pagkit/pagparse/internal/cursor"
	"github.com/pagkit/pagparse/internal/ctx"
	"github.com/pagkit/pagparse/internal/errs"
	"github.com/pagkit/pagparse/internal/options"
	"github.com/pagkit/pagparse/tag"
)

// magic is the file header's fixed 3-byte sentinel.
var magic = []byte("PAG")

// supportedVersion is the only file-format version this module
// understands; spec.md §1's Non-goal excludes later format versions.
const supportedVersion uint8 = 1

// FileHeader is a PAG file's fixed 9-byte preamble: the version, the
// length of the tag stream that follows (pre-decompression), and the
// whole-file compression method applied to it.
type FileHeader struct {
	Version  uint8
	Length   uint32
	Compress uint8
}

// CompressMethod returns the header's compression method as a typed
// internal/compress.Method, for driver use.
func (h FileHeader) CompressMethod() compress.Method {
	return compress.Method(h.Compress)
}

func parseFileHeader(c *cursor.Cursor) (FileHeader, error) {
	if err := c.Expect(magic); err != nil {
		return FileHeader{}, errs.WrapBadFrame("file header magic mismatch", err)
	}
	version, err := c.NextU8()
	if err != nil {
		return FileHeader{}, errs.ErrTruncatedHeader
	}
	if version != supportedVersion {
		return FileHeader{}, errs.NewUnsupportedVersion(version)
	}
	length, err := c.NextU32()
	if err != nil {
		return FileHeader{}, errs.ErrTruncatedHeader
	}
	compressByte, err := c.NextI8()
	if err != nil {
		return FileHeader{}, errs.ErrTruncatedHeader
	}
	return FileHeader{Version: version, Length: length, Compress: uint8(compressByte)}, nil
}

// settings holds a Parser's configurable policy, built from Option
// values applied in order.
type settings struct {
	strictEnums       bool
	maxRecursionDepth int
}

func defaultSettings() settings {
	return settings{maxRecursionDepth: tag.DefaultMaxRecursionDepth}
}

// Option configures a Parser, following the generalized
// functional-options builder pattern.
type Option = options.Option[*settings]

// WithStrictEnums makes an unknown enum discriminant a decode error
// instead of the default behavior of producing an Unknown(byte) value.
func WithStrictEnums() Option {
	return options.NoError[*settings](func(s *settings) {
		s.strictEnums = true
	})
}

// WithMaxRecursionDepth overrides the default composition nesting
// limit.
func WithMaxRecursionDepth(n int) Option {
	return options.NoError[*settings](func(s *settings) {
		s.maxRecursionDepth = n
	})
}

// Parser streams tags out of a PAG byte stream one at a time. It holds
// no file handle or goroutine; Parser is not safe for concurrent use
// from multiple goroutines.
type Parser struct {
	header   FileHeader
	cursor   *cursor.Cursor
	context  ctx.Context
	settings settings
	done     bool
}

// New validates a PAG file's header, inflates its body if the header
// declares whole-file compression, and returns a Parser positioned at
// the first tag.
func New(input []byte, opts ...Option) (*Parser, error) {
	headerCursor := cursor.New(input)
	header, err := parseFileHeader(headerCursor)
	if err != nil {
		return nil, err
	}

	rest := headerCursor.Peek(headerCursor.Remaining())
	body, err := compress.Decompress(header.CompressMethod(), rest)
	if err != nil {
		return nil, err
	}

	s := defaultSettings()
	if err := options.Apply(&s, opts...); err != nil {
		return nil, err
	}

	root := ctx.Root().WithStrictEnums(s.strictEnums)

	return &Parser{
		header:   header,
		cursor:   cursor.New(body),
		context:  root,
		settings: s,
	}, nil
}

// Header returns the parsed file header.
func (p *Parser) Header() FileHeader {
	return p.header
}

// NextTag reads and returns the next tag in the stream. ok is false
// with a nil error once the block's End tag has been consumed; err is
// non-nil on any decode failure, at which point the caller must stop
// iterating.
func (p *Parser) NextTag() (tag.Tag, bool, error) {
	if p.done {
		return tag.Tag{}, false, nil
	}
	if p.cursor.Remaining() == 0 {
		p.done = true
		return tag.Tag{}, false, errs.ErrMissingEndTag
	}
	t, err := tag.ParseTag(p.cursor, p.context, 0, p.settings.maxRecursionDepth)
	if err != nil {
		p.done = true
		return tag.Tag{}, false, err
	}
	if _, isEnd := t.Body.(tag.End); isEnd {
		p.done = true
		return tag.Tag{}, false, nil
	}
	return t, true, nil
}

// Pag is a fully decoded file: its header plus every top-level tag.
type Pag struct {
	Header FileHeader
	Tags   []tag.Tag
}

// ParseAll decodes an entire PAG byte stream in one call, returning
// every top-level tag in order.
func ParseAll(input []byte, opts ...Option) (*Pag, error) {
	p, err := New(input, opts...)
	if err != nil {
		return nil, err
	}
	var tags []tag.Tag
	for {
		t, ok, err := p.NextTag()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tags = append(tags, t)
	}
	return &Pag{Header: p.header, Tags: tags}, nil
}
