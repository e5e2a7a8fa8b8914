package io

import (
	"github.com/cps-atlas/strem/datastream/frame"
	"github.com/cps-atlas/strem/geometry"
	"github.com/cps-atlas/strem/internal/errs"
	"github.com/cps-atlas/strem/internal/util"
	"github.com/cps-atlas/strem/internal/version"
)

// Importer translates a deserialized DataStream into the Frame sequence the
// matcher runs against, applying the configured skip count and channel
// allowlist along the way.
type Importer struct {
	Skip     int           // frames to drop before the first one is kept; 0 disables
	Channels util.StringSet // when non-empty, only these channels are kept

	count int
}

// Import converts every frame in data, in order. A version mismatch against
// the running binary is fatal: the wire format's meaning is not guaranteed
// stable across versions.
func (imp *Importer) Import(data DataStream) ([]frame.Frame, error) {
	if data.Version != version.Current {
		return nil, version.Mismatch(data.Version)
	}

	frames := make([]frame.Frame, 0, len(data.Frames))

	for _, f := range data.Frames {
		if imp.Skip > 0 && imp.count < imp.Skip {
			imp.count++
			continue
		}

		out := frame.NewFrame(f.Index)

		for _, s := range f.Samples {
			if s.Type != SampleObjectDetection {
				continue
			}
			if len(imp.Channels) > 0 && !imp.Channels.Has(s.Channel) {
				continue
			}

			record := frame.NewDetectionRecord(s.Channel, &frame.Image{
				Source: frame.ImageSource{Path: s.Image.Path},
				Width:  s.Image.Dimensions.Width,
				Height: s.Image.Dimensions.Height,
			})

			for _, a := range s.Annotations {
				bbox, err := importBBox(a.BBox)
				if err != nil {
					return nil, errs.Wrap(errs.Import, "", err, "importer: stremf: frame %d channel %s", f.Index, s.Channel)
				}
				record.Add(frame.Annotation{Label: a.Class, Score: a.Score, BBox: bbox})
			}

			out.Samples = append(out.Samples, record)
		}

		frames = append(frames, out)
	}

	return frames, nil
}

func importBBox(b BoundingBox) (geometry.BoundingBox, error) {
	switch b.Type {
	case BBoxAxisAligned:
		r := b.AxisAligned
		aa := geometry.NewAxisAligned(geometry.NewPoint(r.Center.X, r.Center.Y), r.Dimensions.W, r.Dimensions.H)
		return geometry.BoundingBox{AA: &aa}, nil
	case BBoxOriented:
		r := b.Oriented
		ob := geometry.NewOriented(geometry.NewPoint(r.Center.X, r.Center.Y), r.Dimensions.W, r.Dimensions.H, r.Rotation)
		return geometry.BoundingBox{Oriented: &ob}, nil
	default:
		return geometry.BoundingBox{}, errs.New(errs.Import, "unrecognized bounding box type %q", b.Type)
	}
}
