package format

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	Red, Green, Blue uint8
}

// Point is a 2D single-precision coordinate.
type Point struct {
	X, Y float32
}

// Ratio is a rational number stored as a signed numerator over an
// unsigned denominator.
type Ratio struct {
	Numerator   int32
	Denominator uint32
}

// RatioOne is the default stretch ratio, 1/1.
var RatioOne = Ratio{Numerator: 1, Denominator: 1}

// ByteData is a length-prefixed opaque byte payload, used for embedded
// media (image bytes, video frame bytes, video parameter sets).
// Fingerprint is a non-wire-format content hash attached by the tag
// decoders for downstream deduplication; see internal/assethash.
type ByteData struct {
	Data        []byte
	Fingerprint uint64
}

// Time is semantically an encoded u64: a duration or timestamp measured
// in the file's native time base.
type Time uint64
