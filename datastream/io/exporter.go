package io

import (
	"github.com/cps-atlas/strem/datastream/frame"
	"github.com/cps-atlas/strem/geometry"
	"github.com/cps-atlas/strem/internal/version"
)

// Exporter converts a Frame sequence back into the @stremf wire format, for
// the --export flag's JSON output.
type Exporter struct{}

// Export builds a DataStream tagged with the running binary's version.
func (Exporter) Export(frames []frame.Frame) DataStream {
	ds := DataStream{Version: version.Current, Frames: make([]Frame, 0, len(frames))}

	for _, f := range frames {
		out := Frame{Index: f.Index, Samples: make([]Sample, 0, len(f.Samples))}

		for _, rec := range f.Samples {
			var img Image
			if rec.Image != nil {
				img = Image{
					Path:       rec.Image.Source.Path,
					Dimensions: ImageDimensions{Width: rec.Image.Width, Height: rec.Image.Height},
				}
			}

			sample := Sample{Type: SampleObjectDetection, Channel: rec.Channel, Image: img}
			for _, annotations := range rec.Annotations {
				for _, a := range annotations {
					sample.Annotations = append(sample.Annotations, Annotation{
						Class: a.Label,
						Score: a.Score,
						BBox:  exportBBox(a.BBox),
					})
				}
			}

			out.Samples = append(out.Samples, sample)
		}

		ds.Frames = append(ds.Frames, out)
	}

	return ds
}

func exportBBox(b geometry.BoundingBox) BoundingBox {
	center := b.Center()

	if b.Oriented != nil {
		return BoundingBox{
			Type: BBoxOriented,
			Oriented: &OrientedRegion{
				Center:     RegionCenter{X: center.X, Y: center.Y},
				Dimensions: RegionDimensions{W: b.Oriented.Width(), H: b.Oriented.Height()},
				Rotation:   b.Oriented.Rotation(),
			},
		}
	}

	return BoundingBox{
		Type: BBoxAxisAligned,
		AxisAligned: &AxisAlignedRegion{
			Center:     RegionCenter{X: center.X, Y: center.Y},
			Dimensions: RegionDimensions{W: b.AA.Width(), H: b.AA.Height()},
		},
	}
}
