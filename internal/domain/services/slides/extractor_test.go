package slides

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kronotime-SAS/Festina/internal/domain/entities/metaobject"
)

func imageField(key, url string) metaobject.Field {
	return metaobject.Field{
		Key:       key,
		Type:      "file_reference",
		Reference: &metaobject.Reference{Image: &metaobject.Image{URL: url}},
	}
}

func sliderResult(key string, nodes ...*metaobject.Node) *metaobject.QueryResult {
	edges := make([]metaobject.Edge, 0, len(nodes))
	for _, n := range nodes {
		edges = append(edges, metaobject.Edge{Node: n})
	}
	return &metaobject.QueryResult{
		Metaobject: &metaobject.Metaobject{
			Fields: []metaobject.Field{{
				Key:        key,
				Type:       "list.metaobject_reference",
				References: &metaobject.Connection{Edges: edges},
			}},
		},
	}
}

func bannerNode(desk, mobile string) *metaobject.Node {
	return &metaobject.Node{Fields: []metaobject.Field{
		imageField(BannerDeskKey, desk),
		imageField(BannerMobileKey, mobile),
	}}
}

func TestExtractSlides_SingleSlide(t *testing.T) {
	t.Parallel()

	got, err := ExtractSlides(sliderResult(SliderKey, bannerNode("d1.jpg", "m1.jpg")))

	require.NoError(t, err)
	assert.Equal(t, []metaobject.Slide{{BannerDesk: "d1.jpg", BannerMobile: "m1.jpg"}}, got)
}

func TestExtractSlides_UnrecognisedKeyIsEmpty(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"other", "", "Imagenes_Slider", "banner_desk"} {
		got, err := ExtractSlides(sliderResult(key, bannerNode("d1.jpg", "m1.jpg")))

		require.NoError(t, err, key)
		assert.NotNil(t, got, key)
		assert.Empty(t, got, key)
	}
}

func TestExtractSlides_PreservesEdgeOrder(t *testing.T) {
	t.Parallel()

	result := sliderResult(SliderKey,
		bannerNode("d1.jpg", "m1.jpg"),
		bannerNode("d2.jpg", "m2.jpg"),
		bannerNode("d3.jpg", "m3.jpg"),
	)

	got, err := ExtractSlides(result)

	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, slide := range got {
		n := string(rune('1' + i))
		assert.Equal(t, "d"+n+".jpg", slide.BannerDesk)
		assert.Equal(t, "m"+n+".jpg", slide.BannerMobile)
		assert.Empty(t, slide.URL)
		assert.Zero(t, slide.Order)
	}
}

func TestExtractSlides_MissingBannersAreEmptyStrings(t *testing.T) {
	t.Parallel()

	deskOnly := &metaobject.Node{Fields: []metaobject.Field{imageField(BannerDeskKey, "d1.jpg")}}
	noImage := &metaobject.Node{Fields: []metaobject.Field{
		{Key: BannerDeskKey, Reference: &metaobject.Reference{URL: "file.pdf"}},
		{Key: BannerMobileKey},
	}}
	empty := &metaobject.Node{}

	got, err := ExtractSlides(sliderResult(SliderKey, deskOnly, noImage, empty))

	require.NoError(t, err)
	assert.Equal(t, []metaobject.Slide{
		{BannerDesk: "d1.jpg"},
		{},
		{},
	}, got)
}

func TestExtractSlides_EmptyEdges(t *testing.T) {
	t.Parallel()

	got, err := ExtractSlides(sliderResult(SliderKey))

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractSlides_SearchesPastOtherFields(t *testing.T) {
	t.Parallel()

	result := sliderResult(SliderKey, bannerNode("d1.jpg", "m1.jpg"))
	result.Metaobject.Fields = append([]metaobject.Field{{Key: "titulo", Type: "single_line_text_field"}}, result.Metaobject.Fields...)

	got, err := ExtractSlides(result)

	require.NoError(t, err)
	assert.Equal(t, []metaobject.Slide{{BannerDesk: "d1.jpg", BannerMobile: "m1.jpg"}}, got)
}

func TestExtractSlides_Idempotent(t *testing.T) {
	t.Parallel()

	result := sliderResult(SliderKey, bannerNode("d1.jpg", "m1.jpg"), bannerNode("d2.jpg", ""))

	first, err := ExtractSlides(result)
	require.NoError(t, err)
	second, err := ExtractSlides(result)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "d1.jpg", result.Metaobject.Fields[0].References.Edges[0].Node.Fields[0].ImageURL())
}

func TestExtractSlides_Malformed(t *testing.T) {
	t.Parallel()

	noRefs := sliderResult(SliderKey)
	noRefs.Metaobject.Fields[0].References = nil

	tests := []struct {
		name   string
		result *metaobject.QueryResult
		path   string
	}{
		{"nil result", nil, "metaobject"},
		{"nil metaobject", &metaobject.QueryResult{}, "metaobject"},
		{"no fields", &metaobject.QueryResult{Metaobject: &metaobject.Metaobject{}}, "metaobject.fields"},
		{"no references", noRefs, "metaobject.fields[0].references"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractSlides(tt.result)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, IsMalformed(err))

			var mce *MalformedContentError
			require.ErrorAs(t, err, &mce)
			assert.Equal(t, tt.path, mce.Path)
		})
	}
}

func TestExtractSlides_NullNodeKeepsPosition(t *testing.T) {
	t.Parallel()

	payload := `{"metaobject":{"fields":[{"key":"imagenes_slider","references":{"edges":[
	  {"node":{"fields":[
	    {"key":"banner_desk","reference":{"image":{"url":"d1.jpg"}}},
	    {"key":"banner_mobile","reference":{"image":{"url":"m1.jpg"}}}
	  ]}},
	  {"node":null},
	  {"node":{"fields":[{"key":"banner_desk","reference":{"image":{"url":"d3.jpg"}}}]}}
	]}}]}}`

	var result metaobject.QueryResult
	require.NoError(t, json.Unmarshal([]byte(payload), &result))

	got, err := ExtractSlides(&result)

	require.NoError(t, err)
	assert.Equal(t, []metaobject.Slide{
		{BannerDesk: "d1.jpg", BannerMobile: "m1.jpg"},
		{},
		{BannerDesk: "d3.jpg"},
	}, got)
}

func TestExtractSlides_DecodedResponse(t *testing.T) {
	t.Parallel()

	payload := `{
	  "metaobject": {
	    "type": "slider",
	    "handle": "home",
	    "fields": [{
	      "key": "imagenes_slider",
	      "type": "list.metaobject_reference",
	      "reference": null,
	      "references": {"edges": [
	        {"node": {"fields": [
	          {"key": "banner_desk", "reference": {"alt": "", "image": {"url": "d1.jpg"}}, "references": null},
	          {"key": "banner_mobile", "reference": {"alt": "", "image": {"url": "m1.jpg"}}, "references": null}
	        ]}},
	        {"node": {"fields": [
	          {"key": "banner_desk", "reference": {"image": {"url": "d2.jpg"}}}
	        ]}}
	      ]}
	    }]
	  }
	}`

	var result metaobject.QueryResult
	require.NoError(t, json.Unmarshal([]byte(payload), &result))

	got, err := ExtractSlides(&result)

	require.NoError(t, err)
	assert.Equal(t, []metaobject.Slide{
		{BannerDesk: "d1.jpg", BannerMobile: "m1.jpg"},
		{BannerDesk: "d2.jpg"},
	}, got)
}

func TestFieldByKey(t *testing.T) {
	t.Parallel()

	fields := []metaobject.Field{{Key: "a"}, {Key: "b"}, {Key: "b", Type: "second"}}

	field, idx, err := FieldByKey(fields, "b")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Empty(t, field.Type)

	_, idx, err = FieldByKey(fields, "missing")
	assert.ErrorIs(t, err, ErrFieldNotFound)
	assert.Contains(t, err.Error(), `"missing"`)
	assert.Equal(t, -1, idx)
}
