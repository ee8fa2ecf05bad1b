package models

import (
	"fmt"
	"strings"
)

// MaxImagesPerItem caps the number of image references an item may carry.
const MaxImagesPerItem = 10

// ImageListDelimiter separates references in the stored image field. The
// schema has no escaping, so references must never contain it themselves.
const ImageListDelimiter = ","

// ImageList is the ordered sequence of image references behind an item's
// delimited image field. Encode(ParseImageList(s)) is lossless for any list
// whose elements are comma-free, which Append enforces.
type ImageList []string

// ParseImageList splits the stored field into its ordered references,
// discarding blank entries.
func ParseImageList(encoded string) ImageList {
	if strings.TrimSpace(encoded) == "" {
		return ImageList{}
	}

	list := ImageList{}
	for _, part := range strings.Split(encoded, ImageListDelimiter) {
		part = strings.TrimSpace(part)
		if part != "" {
			list = append(list, part)
		}
	}
	return list
}

// Encode joins the references back into the stored single-field form.
func (l ImageList) Encode() string {
	return strings.Join(l, ImageListDelimiter)
}

// Append adds references to the end of the list, in the given order.
// It fails if the cap would be exceeded or a reference contains the delimiter.
func (l *ImageList) Append(refs ...string) error {
	if len(*l)+len(refs) > MaxImagesPerItem {
		return fmt.Errorf("image limit exceeded: an item may hold at most %d images", MaxImagesPerItem)
	}
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return fmt.Errorf("image reference must not be blank")
		}
		if strings.Contains(ref, ImageListDelimiter) {
			return fmt.Errorf("image reference %q must not contain %q", ref, ImageListDelimiter)
		}
		*l = append(*l, ref)
	}
	return nil
}

// Remove drops the reference at index. Out-of-range indices are a no-op.
func (l *ImageList) Remove(index int) {
	if index < 0 || index >= len(*l) {
		return
	}
	*l = append((*l)[:index], (*l)[index+1:]...)
}

// Move removes the reference at from and reinserts it at to. If either index
// is out of bounds the list is left unchanged.
func (l *ImageList) Move(from, to int) {
	n := len(*l)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}

	ref := (*l)[from]
	rest := append(ImageList{}, (*l)[:from]...)
	rest = append(rest, (*l)[from+1:]...)

	out := append(ImageList{}, rest[:to]...)
	out = append(out, ref)
	out = append(out, rest[to:]...)
	*l = out
}
