// Package io defines the @stremf/* wire schema exchanged with outside
// tools, and the Importer/Exporter that translate it to and from the
// matcher's internal frame representation.
package io

import "encoding/json"

// DataStream is the root of a @stremf document: a version tag the importer
// checks against the running binary, and the frames it carries.
type DataStream struct {
	Version string  `json:"version"`
	Frames  []Frame `json:"frames"`
}

// Frame is one temporal slice in the wire format.
type Frame struct {
	Index   int      `json:"index"`
	Samples []Sample `json:"samples"`
}

// Sample is a tagged union over the kinds of data a channel can contribute
// to a frame. Only @stremf/sample/detection exists today.
type Sample struct {
	Type        string       `json:"type"`
	Channel     string       `json:"channel"`
	Image       Image        `json:"image"`
	Annotations []Annotation `json:"annotations"`
}

const SampleObjectDetection = "@stremf/sample/detection"

// Image is a sample's accompanying frame image metadata.
type Image struct {
	Path       string          `json:"path"`
	Dimensions ImageDimensions `json:"dimensions"`
}

type ImageDimensions struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// Annotation is a single detection on a channel.
type Annotation struct {
	Class string      `json:"class"`
	Score float64     `json:"score"`
	BBox  BoundingBox `json:"bbox"`
}

// BoundingBox is a tagged union between an axis-aligned and an oriented
// region. Exactly one of AxisAligned/Oriented is populated, selected by
// Type.
type BoundingBox struct {
	Type        string
	AxisAligned *AxisAlignedRegion
	Oriented    *OrientedRegion
}

const (
	BBoxAxisAligned = "@stremf/bbox/aabb"
	BBoxOriented    = "@stremf/bbox/obb"
)

// MarshalJSON re-homes whichever region is set under the "region" key,
// since exactly one of AxisAligned/Oriented applies depending on Type.
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	switch b.Type {
	case BBoxOriented:
		return json.Marshal(struct {
			Type   string         `json:"type"`
			Region OrientedRegion `json:"region"`
		}{b.Type, *b.Oriented})
	default:
		return json.Marshal(struct {
			Type   string           `json:"type"`
			Region AxisAlignedRegion `json:"region"`
		}{b.Type, *b.AxisAligned})
	}
}

func (b *BoundingBox) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	b.Type = tag.Type

	switch tag.Type {
	case BBoxOriented:
		var body struct {
			Region OrientedRegion `json:"region"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return err
		}
		b.Oriented = &body.Region
	default:
		var body struct {
			Region AxisAlignedRegion `json:"region"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return err
		}
		b.AxisAligned = &body.Region
	}
	return nil
}

type AxisAlignedRegion struct {
	Center     RegionCenter     `json:"center"`
	Dimensions RegionDimensions `json:"dimensions"`
}

type OrientedRegion struct {
	Center     RegionCenter     `json:"center"`
	Dimensions RegionDimensions `json:"dimensions"`
	Rotation   float64          `json:"rotation"`
}

type RegionCenter struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RegionDimensions struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}
