package tag

import (
	"github.com/pagkit/pagparse/format"
	"github.com/pagkit/pagparse/internal/assethash"
	"github.com/pagkit/pagparse/internal/cursor"
)

func fingerprintOf(data []byte) uint64 {
	return assethash.Sum(data)
}

func parseColor(c *cursor.Cursor) (format.Color, error) {
	r, err := c.NextU8()
	if err != nil {
		return format.Color{}, err
	}
	g, err := c.NextU8()
	if err != nil {
		return format.Color{}, err
	}
	b, err := c.NextU8()
	if err != nil {
		return format.Color{}, err
	}
	return format.Color{Red: r, Green: g, Blue: b}, nil
}

func parsePoint(c *cursor.Cursor) (format.Point, error) {
	x, err := c.NextF32()
	if err != nil {
		return format.Point{}, err
	}
	y, err := c.NextF32()
	if err != nil {
		return format.Point{}, err
	}
	return format.Point{X: x, Y: y}, nil
}

func parseRatio(c *cursor.Cursor) (format.Ratio, error) {
	num, err := c.NextI32()
	if err != nil {
		return format.Ratio{}, err
	}
	den, err := c.NextU32()
	if err != nil {
		return format.Ratio{}, err
	}
	return format.Ratio{Numerator: num, Denominator: den}, nil
}

func parseByteData(c *cursor.Cursor) (format.ByteData, error) {
	data, err := c.NextByteData()
	if err != nil {
		return format.ByteData{}, err
	}
	return format.ByteData{Data: data, Fingerprint: fingerprintOf(data)}, nil
}

func parseTime(c *cursor.Cursor) (format.Time, error) {
	v, err := c.NextVarU64()
	if err != nil {
		return 0, err
	}
	return format.Time(v), nil
}
