// Package frame holds the matcher's internal, already-imported view of one
// temporal slice of perception data: a Frame carries one DetectionRecord per
// channel, each holding the annotations detected on that channel.
package frame

import "github.com/cps-atlas/strem/geometry"

// Annotation is a single labeled detection: a class label, a confidence
// score, and the bounding box it was detected in.
type Annotation struct {
	Label string
	Score float64
	BBox  geometry.BoundingBox
}

// ImageSource identifies where an Image's pixel data came from.
type ImageSource struct {
	Path string
}

// Image is the optional image metadata accompanying a DetectionRecord.
type Image struct {
	Source ImageSource
	Width  uint32
	Height uint32
}

// DetectionRecord is one channel's contribution to a Frame: its image
// metadata (if any) and the annotations detected on it, grouped by label.
type DetectionRecord struct {
	Channel     string
	Image       *Image
	Annotations map[string][]Annotation
}

// NewDetectionRecord builds an empty DetectionRecord for the given channel.
func NewDetectionRecord(channel string, image *Image) DetectionRecord {
	return DetectionRecord{Channel: channel, Image: image, Annotations: make(map[string][]Annotation)}
}

// Add appends an annotation under its own label.
func (r *DetectionRecord) Add(a Annotation) {
	r.Annotations[a.Label] = append(r.Annotations[a.Label], a)
}

// Frame is one temporal slice of perception data: a monotonic frame index
// and the per-channel detection records observed at that index. Frames are
// built and mutated only during import; the matcher treats them as
// immutable afterward.
type Frame struct {
	Index   int
	Samples []DetectionRecord
}

// NewFrame builds an empty Frame at the given index.
func NewFrame(index int) Frame {
	return Frame{Index: index}
}

// Detections merges every sample's per-label annotations into the single
// flat label -> annotations view the spatial monitor evaluates against.
// Channel information has already done its work by import time (unwanted
// channels are dropped before a Frame is built), so no channel-awareness
// survives here.
func (f Frame) Detections() map[string][]Annotation {
	merged := make(map[string][]Annotation)
	for _, sample := range f.Samples {
		for label, annotations := range sample.Annotations {
			merged[label] = append(merged[label], annotations...)
		}
	}
	return merged
}
