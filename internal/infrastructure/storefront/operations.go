package storefront

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Kronotime-SAS/Festina/internal/domain/entities/metaobject"
	"github.com/Kronotime-SAS/Festina/internal/domain/entities/storefront"
)

// Metaobject fetches a content object by global ID.
func (c *Client) Metaobject(ctx context.Context, id string) (*metaobject.QueryResult, error) {
	if id == "" {
		return nil, fmt.Errorf("metaobject ID cannot be empty")
	}

	var result metaobject.QueryResult
	err := c.Query(ctx, "MetaObject", metaobjectQuery, map[string]any{"id": id}, CacheLong, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FeaturedCollection returns the most recently updated collection, or nil.
func (c *Client) FeaturedCollection(ctx context.Context) (*storefront.Collection, error) {
	var result struct {
		Collections struct {
			Nodes []storefront.Collection `json:"nodes"`
		} `json:"collections"`
	}
	if err := c.Query(ctx, "FeaturedCollection", featuredCollectionQuery, nil, CacheLong, &result); err != nil {
		return nil, err
	}
	if len(result.Collections.Nodes) == 0 {
		return nil, nil
	}
	return &result.Collections.Nodes[0], nil
}

// RecommendedProducts returns the four most recently updated products.
func (c *Client) RecommendedProducts(ctx context.Context) ([]storefront.Product, error) {
	var result struct {
		Products struct {
			Nodes []storefront.Product `json:"nodes"`
		} `json:"products"`
	}
	if err := c.Query(ctx, "RecommendedProducts", recommendedProductsQuery, nil, CacheShort, &result); err != nil {
		return nil, err
	}
	if result.Products.Nodes == nil {
		return []storefront.Product{}, nil
	}
	return result.Products.Nodes, nil
}

// AdminProductsLimit is the page size of AdminProducts.
const AdminProductsLimit = 20

// AdminProducts lists product IDs and titles. Needs a client built with
// NewAdminClient.
func (c *Client) AdminProducts(ctx context.Context) ([]storefront.ProductSummary, error) {
	var result struct {
		Products struct {
			Edges []struct {
				Node storefront.ProductSummary `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	err := c.Query(ctx, "AdminProducts", adminProductsQuery, map[string]any{"first": AdminProductsLimit}, CacheLong, &result)
	if err != nil {
		return nil, err
	}

	products := make([]storefront.ProductSummary, 0, len(result.Products.Edges))
	for _, edge := range result.Products.Edges {
		products = append(products, edge.Node)
	}
	return products, nil
}

// CustomerUserError is a validation error reported by customerCreate.
type CustomerUserError struct {
	Code    string   `json:"code"`
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// SubscriptionError carries the platform's reasons for refusing a sign-up.
type SubscriptionError struct {
	Errors []CustomerUserError
}

func (e *SubscriptionError) Error() string {
	if len(e.Errors) == 0 {
		return "newsletter subscription refused"
	}
	return "newsletter subscription refused: " + e.Errors[0].Message
}

// AlreadySubscribed reports whether the only complaint is a taken email.
func (e *SubscriptionError) AlreadySubscribed() bool {
	if len(e.Errors) == 0 {
		return false
	}
	for _, ue := range e.Errors {
		if ue.Code != "TAKEN" && ue.Code != "CUSTOMER_DISABLED" {
			return false
		}
	}
	return true
}

// SubscribeNewsletter creates a marketing-consenting customer for email.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) (string, error) {
	password, err := randomPassword()
	if err != nil {
		return "", err
	}

	var result struct {
		CustomerCreate struct {
			Customer *struct {
				ID string `json:"id"`
			} `json:"customer"`
			CustomerUserErrors []CustomerUserError `json:"customerUserErrors"`
		} `json:"customerCreate"`
	}

	variables := map[string]any{
		"input": map[string]any{
			"email":            email,
			"password":         password,
			"acceptsMarketing": true,
		},
	}
	if err := c.Mutate(ctx, "NewsletterSubscribe", newsletterSubscribeMutation, variables, &result); err != nil {
		return "", err
	}

	if len(result.CustomerCreate.CustomerUserErrors) > 0 {
		return "", &SubscriptionError{Errors: result.CustomerCreate.CustomerUserErrors}
	}
	if result.CustomerCreate.Customer == nil {
		return "", &SubscriptionError{}
	}
	return result.CustomerCreate.Customer.ID, nil
}

// randomPassword satisfies customerCreate, which requires one; the shopper
// sets a real password through the account recovery flow.
func randomPassword() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
