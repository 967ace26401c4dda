// Package compress inflates a PAG file's post-header byte stream when
// its file header declares a whole-file compression method. This is
// distinct from the format's embedded-media payloads (image bytes,
// video frames), which the tag decoders always surface verbatim.
//
// Decompression only: this module never writes PAG files, so no
// Compressor side is needed or exposed.
package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/pagkit/pagparse/internal/errs"
)

// Method identifies the whole-file compression method carried in a PAG
// file header.
type Method uint8

const (
	MethodNone Method = 0
	MethodLZ4  Method = 1
	MethodS2   Method = 2
	MethodZstd Method = 3
)

// Decompress inflates data according to method. MethodNone returns data
// unchanged without copying.
func Decompress(method Method, data []byte) ([]byte, error) {
	switch method {
	case MethodNone:
		return data, nil
	case MethodLZ4:
		return decompressLZ4(data)
	case MethodS2:
		out, err := s2.Decode(nil, data)
		if err != nil {
			return nil, errs.WrapBadFrame("s2 decompression failed", err)
		}
		return out, nil
	case MethodZstd:
		return decompressZstd(data)
	default:
		return nil, errs.WrapBadFrame(fmt.Sprintf("unknown compression method %d", method), errs.ErrUnknownCompression)
	}
}

// decompressLZ4 uses an adaptive buffer sizing strategy since the LZ4
// block format carries no decompressed-size header we can trust blindly.
func decompressLZ4(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 256 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if err == lz4.ErrInvalidSourceShortBuffer && bufSize < maxSize {
			bufSize *= 2
			continue
		}
		return nil, errs.WrapBadFrame("lz4 decompression failed", err)
	}
	return nil, errs.WrapBadFrame("lz4 decompressed size exceeds safety limit", lz4.ErrInvalidSourceShortBuffer)
}

func decompressZstd(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errs.WrapBadFrame("zstd decoder init failed", err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, errs.WrapBadFrame("zstd decompression failed", err)
	}
	return out, nil
}
