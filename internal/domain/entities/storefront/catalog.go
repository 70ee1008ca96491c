// Package storefront defines the catalogue shapes the home page renders.
package storefront

import "github.com/Kronotime-SAS/Festina/internal/domain/entities/metaobject"

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type Collection struct {
	ID     string            `json:"id"`
	Title  string            `json:"title"`
	Handle string            `json:"handle"`
	Image  *metaobject.Image `json:"image,omitempty"`
}

type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
}

type ImageList struct {
	Nodes []metaobject.Image `json:"nodes"`
}

type Product struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Handle     string     `json:"handle"`
	PriceRange PriceRange `json:"priceRange"`
	Images     ImageList  `json:"images"`
}

// FeaturedImage returns the first product image, if any.
func (p Product) FeaturedImage() *metaobject.Image {
	if len(p.Images.Nodes) == 0 {
		return nil
	}
	return &p.Images.Nodes[0]
}

// Path is the storefront route for the collection.
func (c Collection) Path() string {
	return "/collections/" + c.Handle
}

// Path is the storefront route for the product.
func (p Product) Path() string {
	return "/products/" + p.Handle
}

// HomePage is everything the home route renders.
type HomePage struct {
	Slides              []metaobject.Slide `json:"slides"`
	FeaturedCollection  *Collection        `json:"featuredCollection,omitempty"`
	RecommendedProducts []Product          `json:"recommendedProducts"`
}

// ProductSummary is a product as listed by the Admin API.
type ProductSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
