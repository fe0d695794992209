package tools

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

func Thumbnail(r io.Reader, ratio float64, format imaging.Format) (io.Reader, error) {
	if ratio <= 0 || ratio > 1 {
		return nil, fmt.Errorf("thumbnail ratio %v out of (0, 1]", ratio)
	}
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	width := max(int(float64(b.Dx())*ratio), 1)
	height := max(int(float64(b.Dy())*ratio), 1)
	thumbnail := imaging.Thumbnail(img, width, height, imaging.Lanczos)
	if thumbnail == nil {
		return nil, io.ErrUnexpectedEOF
	}
	var buf bytes.Buffer
	err = imaging.Encode(&buf, thumbnail, format)
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
