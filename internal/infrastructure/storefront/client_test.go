package storefront

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlatform struct {
	server *httptest.Server
	calls  atomic.Int32
	last   atomic.Value // graphQLRequest
	header atomic.Value // http.Header
}

func newStubPlatform(t *testing.T, reply func(req graphQLRequest) (int, string)) *stubPlatform {
	t.Helper()
	stub := &stubPlatform{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.calls.Add(1)
		stub.header.Store(r.Header.Clone())

		body, _ := io.ReadAll(r.Body)
		var req graphQLRequest
		_ = json.Unmarshal(body, &req)
		stub.last.Store(req)

		status, payload := reply(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func testConfig(baseURL string) Config {
	return Config{
		Domain:     "festina.myshopify.com",
		Token:      "tok",
		APIVersion: "2024-07",
		Timeout:    2 * time.Second,
		CacheSize:  8,
		BaseURL:    baseURL,
	}
}

const sliderPayload = `{"data":{"metaobject":{"type":"slider","fields":[{"key":"imagenes_slider","references":{"edges":[{"node":{"fields":[{"key":"banner_desk","reference":{"image":{"url":"d1.jpg"}}},{"key":"banner_mobile","reference":{"image":{"url":"m1.jpg"}}}]}}]}}]}}}`

func TestNewClient_Endpoints(t *testing.T) {
	t.Parallel()

	sf, err := NewStorefrontClient(testConfig(""), nil)
	require.NoError(t, err)
	assert.Equal(t, "https://festina.myshopify.com/api/2024-07/graphql.json", sf.Endpoint())

	admin, err := NewAdminClient(testConfig(""), nil)
	require.NoError(t, err)
	assert.Equal(t, "https://festina.myshopify.com/admin/api/2024-07/graphql.json", admin.Endpoint())
}

func TestNewClient_RejectsIncompleteConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig("")
	cfg.Token = ""
	_, err := NewStorefrontClient(cfg, nil)
	assert.Error(t, err)

	cfg = testConfig("")
	cfg.Domain = "not a host"
	_, err = NewStorefrontClient(cfg, nil)
	assert.Error(t, err)
}

func TestMetaobject_DecodesAndCaches(t *testing.T) {
	t.Parallel()

	stub := newStubPlatform(t, func(graphQLRequest) (int, string) { return http.StatusOK, sliderPayload })
	client, err := NewStorefrontClient(testConfig(stub.server.URL), nil)
	require.NoError(t, err)

	result, err := client.Metaobject(context.Background(), "gid://shopify/Metaobject/1")
	require.NoError(t, err)
	require.NotNil(t, result.Metaobject)
	assert.Equal(t, "imagenes_slider", result.Metaobject.Fields[0].Key)
	assert.Equal(t, "d1.jpg", result.Metaobject.Fields[0].References.Edges[0].Node.Fields[0].ImageURL())

	_, err = client.Metaobject(context.Background(), "gid://shopify/Metaobject/1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, stub.calls.Load(), "second call served from cache")

	_, err = client.Metaobject(context.Background(), "gid://shopify/Metaobject/2")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stub.calls.Load(), "different variables miss the cache")

	req := stub.last.Load().(graphQLRequest)
	assert.Equal(t, "gid://shopify/Metaobject/2", req.Variables["id"])
	header := stub.header.Load().(http.Header)
	assert.Equal(t, "tok", header.Get(storefrontTokenHeader))
	assert.Equal(t, "application/json", header.Get("Content-Type"))
}

func TestQuery_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	fail.Store(true)
	stub := newStubPlatform(t, func(graphQLRequest) (int, string) {
		if fail.Load() {
			return http.StatusOK, `{"data":null,"errors":[{"message":"Throttled","extensions":{"code":"THROTTLED"}}]}`
		}
		return http.StatusOK, sliderPayload
	})
	client, err := NewStorefrontClient(testConfig(stub.server.URL), nil)
	require.NoError(t, err)

	_, err = client.Metaobject(context.Background(), "gid://1")
	var gqlErr *GraphQLError
	require.ErrorAs(t, err, &gqlErr)
	assert.Equal(t, "MetaObject", gqlErr.Operation)
	assert.Contains(t, err.Error(), "Throttled")

	fail.Store(false)
	result, err := client.Metaobject(context.Background(), "gid://1")
	require.NoError(t, err)
	assert.NotNil(t, result.Metaobject)
	assert.EqualValues(t, 2, stub.calls.Load())
}

func TestQuery_HTTPStatusError(t *testing.T) {
	t.Parallel()

	stub := newStubPlatform(t, func(graphQLRequest) (int, string) { return http.StatusUnauthorized, `{"errors":"bad token"}` })
	client, err := NewStorefrontClient(testConfig(stub.server.URL), nil)
	require.NoError(t, err)

	_, err = client.FeaturedCollection(context.Background())

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "bad token")
}

func TestQuery_NullData(t *testing.T) {
	t.Parallel()

	stub := newStubPlatform(t, func(graphQLRequest) (int, string) { return http.StatusOK, `{"data":null}` })
	client, err := NewStorefrontClient(testConfig(stub.server.URL), nil)
	require.NoError(t, err)

	_, err = client.Metaobject(context.Background(), "gid://1")
	assert.ErrorContains(t, err, "no data")
}

func TestQuery_ContextCancelled(t *testing.T) {
	t.Parallel()

	stub := newStubPlatform(t, func(graphQLRequest) (int, string) { return http.StatusOK, sliderPayload })
	client, err := NewStorefrontClient(testConfig(stub.server.URL), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Metaobject(ctx, "gid://1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFeaturedCollectionAndProducts(t *testing.T) {
	t.Parallel()

	stub := newStubPlatform(t, func(req graphQLRequest) (int, string) {
		if req.Query == featuredCollectionQuery {
			return http.StatusOK, `{"data":{"collections":{"nodes":[{"id":"c1","title":"Relojes","handle":"relojes","image":{"url":"c.jpg"}}]}}}`
		}
		return http.StatusOK, `{"data":{"products":{"nodes":[{"id":"p1","title":"Classic","handle":"classic","priceRange":{"minVariantPrice":{"amount":"450000.0","currencyCode":"COP"}},"images":{"nodes":[{"url":"p1.jpg"}]}}]}}}`
	})
	client, err := NewStorefrontClient(testConfig(stub.server.URL), nil)
	require.NoError(t, err)

	collection, err := client.FeaturedCollection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/collections/relojes", collection.Path())

	products, err := client.RecommendedProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "COP", products[0].PriceRange.MinVariantPrice.CurrencyCode)
	assert.Equal(t, "p1.jpg", products[0].FeaturedImage().URL)
}

func TestSubscribeNewsletter(t *testing.T) {
	t.Parallel()

	stub := newStubPlatform(t, func(req graphQLRequest) (int, string) {
		input := req.Variables["input"].(map[string]any)
		if input["email"] == "taken@example.com" {
			return http.StatusOK, `{"data":{"customerCreate":{"customer":null,"customerUserErrors":[{"code":"TAKEN","field":["input","email"],"message":"Email has already been taken"}]}}}`
		}
		if input["email"] == "bad@example.com" {
			return http.StatusOK, `{"data":{"customerCreate":{"customer":null,"customerUserErrors":[{"code":"INVALID","field":["input","email"],"message":"Email is invalid"}]}}}`
		}
		return http.StatusOK, `{"data":{"customerCreate":{"customer":{"id":"gid://shopify/Customer/7","acceptsMarketing":true},"customerUserErrors":[]}}}`
	})
	client, err := NewStorefrontClient(testConfig(stub.server.URL), nil)
	require.NoError(t, err)

	id, err := client.SubscribeNewsletter(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Customer/7", id)
	input := stub.last.Load().(graphQLRequest).Variables["input"].(map[string]any)
	assert.Equal(t, true, input["acceptsMarketing"])
	assert.NotEmpty(t, input["password"])

	_, err = client.SubscribeNewsletter(context.Background(), "taken@example.com")
	var subErr *SubscriptionError
	require.ErrorAs(t, err, &subErr)
	assert.True(t, subErr.AlreadySubscribed())

	_, err = client.SubscribeNewsletter(context.Background(), "bad@example.com")
	require.ErrorAs(t, err, &subErr)
	assert.False(t, subErr.AlreadySubscribed())
	assert.Contains(t, err.Error(), "Email is invalid")

	// mutations bypass the cache
	_, err = client.SubscribeNewsletter(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 4, stub.calls.Load())
	assert.Zero(t, client.cache.len())
}

func TestPurgeCache(t *testing.T) {
	t.Parallel()

	stub := newStubPlatform(t, func(graphQLRequest) (int, string) { return http.StatusOK, sliderPayload })
	client, err := NewStorefrontClient(testConfig(stub.server.URL), nil)
	require.NoError(t, err)

	_, err = client.Metaobject(context.Background(), "gid://1")
	require.NoError(t, err)
	client.PurgeCache()
	_, err = client.Metaobject(context.Background(), "gid://1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stub.calls.Load())
}

func TestAdminProducts(t *testing.T) {
	t.Parallel()

	stub := newStubPlatform(t, func(graphQLRequest) (int, string) {
		return http.StatusOK, `{"data":{"products":{"edges":[
			{"node":{"id":"gid://shopify/Product/1","title":"Classic"}},
			{"node":{"id":"gid://shopify/Product/2","title":"Chrono"}}
		]}}}`
	})
	cfg := testConfig(stub.server.URL)
	cfg.Token = "admin-tok"
	client, err := NewAdminClient(cfg, nil)
	require.NoError(t, err)

	products, err := client.AdminProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "gid://shopify/Product/1", products[0].ID)
	assert.Equal(t, "Chrono", products[1].Title)

	header := stub.header.Load().(http.Header)
	assert.Equal(t, "admin-tok", header.Get("X-Shopify-Access-Token"))
	assert.Empty(t, header.Get("X-Shopify-Storefront-Access-Token"))
	req := stub.last.Load().(graphQLRequest)
	assert.EqualValues(t, AdminProductsLimit, req.Variables["first"])

	_, err = client.AdminProducts(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stub.calls.Load())
}

func TestAdminProducts_Empty(t *testing.T) {
	t.Parallel()

	stub := newStubPlatform(t, func(graphQLRequest) (int, string) {
		return http.StatusOK, `{"data":{"products":{"edges":[]}}}`
	})
	client, err := NewAdminClient(testConfig(stub.server.URL), nil)
	require.NoError(t, err)

	products, err := client.AdminProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}
