// Package slides turns a metaobject query result into the ordered slide
// sequence rendered by the home page carousel.
package slides

import (
	"fmt"

	"github.com/Kronotime-SAS/Festina/internal/domain/entities/metaobject"
)

const (
	SliderKey       = "imagenes_slider"
	BannerDeskKey   = "banner_desk"
	BannerMobileKey = "banner_mobile"
)

var defaultRegistry = NewRegistry()

// ExtractSlides extracts slides with the default registry. An unrecognised
// top-level key yields an empty sequence and a nil error; structurally
// incomplete input yields a *MalformedContentError.
func ExtractSlides(result *metaobject.QueryResult) ([]metaobject.Slide, error) {
	return defaultRegistry.Extract(result)
}

// FieldByKey returns the first field with the given key and its index.
func FieldByKey(fields []metaobject.Field, key string) (metaobject.Field, int, error) {
	for i, field := range fields {
		if field.Key == key {
			return field, i, nil
		}
	}
	return metaobject.Field{}, -1, fmt.Errorf("%w: %q", ErrFieldNotFound, key)
}

// SliderExtractor reads one slide per edge, in edge order. A null node
// (unpublished or inaccessible reference) still yields an empty slide.
func SliderExtractor(field metaobject.Field, path string) ([]metaobject.Slide, error) {
	if field.References == nil {
		return nil, malformed(path + ".references")
	}

	out := make([]metaobject.Slide, 0, len(field.References.Edges))
	for _, edge := range field.References.Edges {
		var fields []metaobject.Field
		if edge.Node != nil {
			fields = edge.Node.Fields
		}
		out = append(out, metaobject.Slide{
			BannerDesk:   imageURL(fields, BannerDeskKey),
			BannerMobile: imageURL(fields, BannerMobileKey),
		})
	}
	return out, nil
}

// imageURL is "" when the field is absent or carries no image.
func imageURL(fields []metaobject.Field, key string) string {
	field, _, err := FieldByKey(fields, key)
	if err != nil {
		return ""
	}
	return field.ImageURL()
}
