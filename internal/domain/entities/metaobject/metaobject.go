// Package metaobject defines the content object shapes returned by the
// platform's metaobject query and the slide records derived from them.
package metaobject

// QueryResult is the data payload of the metaobject query.
type QueryResult struct {
	Metaobject *Metaobject `json:"metaobject"`
}

type Metaobject struct {
	ID     string  `json:"id,omitempty"`
	Type   string  `json:"type,omitempty"`
	Handle string  `json:"handle,omitempty"`
	Fields []Field `json:"fields"`
}

// Field is a single typed key/value entry of a metaobject. Reference and
// References are only present for reference-typed fields.
type Field struct {
	Key        string      `json:"key"`
	Type       string      `json:"type,omitempty"`
	Value      *string     `json:"value,omitempty"`
	Reference  *Reference  `json:"reference,omitempty"`
	References *Connection `json:"references,omitempty"`
}

// Reference flattens the MetafieldReference union. MediaImage fills Image,
// GenericFile fills URL and a nested Metaobject fills Fields.
type Reference struct {
	ID     string  `json:"id,omitempty"`
	Alt    string  `json:"alt,omitempty"`
	URL    string  `json:"url,omitempty"`
	Image  *Image  `json:"image,omitempty"`
	Fields []Field `json:"fields,omitempty"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// Connection is a GraphQL connection; edge order is significant.
type Connection struct {
	Edges []Edge `json:"edges"`
}

type Edge struct {
	Node *Node `json:"node"`
}

type Node struct {
	ID     string  `json:"id,omitempty"`
	Type   string  `json:"type,omitempty"`
	Handle string  `json:"handle,omitempty"`
	Fields []Field `json:"fields"`
}

// Slide is one carousel entry. URL and Order are reserved for link and sort
// data; the slider extraction leaves them at their zero values.
type Slide struct {
	BannerDesk   string `json:"banner_desk"`
	BannerMobile string `json:"banner_mobile"`
	URL          string `json:"url"`
	Order        int    `json:"order"`
}

// ImageURL returns reference.image.url, or "" when any link of the chain is missing.
func (f Field) ImageURL() string {
	if f.Reference == nil || f.Reference.Image == nil {
		return ""
	}
	return f.Reference.Image.URL
}
