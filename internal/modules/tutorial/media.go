package tutorial

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/reusedev/tutor-voice/tools"
)

var (
	ErrTutorialNotFound = errors.New("tutorial not found")
	ErrStepNotFound     = errors.New("step not found")
	ErrNoImage          = errors.New("step has no image")
)

// StepThumbnail renders the image of step number as a JPEG scaled by ratio.
func (c *Catalog) StepThumbnail(id string, number int, ratio float64) ([]byte, error) {
	t, ok := c.Get(id)
	if !ok {
		return nil, ErrTutorialNotFound
	}
	step, ok := t.StepByNumber(number)
	if !ok {
		return nil, ErrStepNotFound
	}
	if step.Image == "" {
		return nil, ErrNoImage
	}
	var src io.Reader
	ref := c.MediaPath(step.Image)
	if IsRemote(ref) {
		data, _, err := tools.GetOnlineFile(ref)
		if err != nil {
			return nil, err
		}
		src = bytes.NewReader(data)
	} else {
		f, err := os.Open(ref)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}
	thumb, err := tools.Thumbnail(src, ratio, imaging.JPEG)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(thumb)
}
