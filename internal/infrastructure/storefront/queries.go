package storefront

// Documents are sent verbatim; their shape is the platform's contract.

const metaobjectQuery = `#graphql
  fragment TypeMediaImage on MediaImage {
    alt
    image {
      url
    }
  }
  fragment TypeFile on GenericFile {
    alt
    url
  }
  fragment MetaObjectField on MetaobjectField {
    key
    type
    reference {
      ...TypeFile
      ...TypeMediaImage
    }
  }
  query MetaObject($id: ID!) {
    metaobject(id: $id) {
      id
      type
      handle
      fields {
        key
        type
        references(first: 20) {
          edges {
            node {
              ... on Metaobject {
                id
                handle
                fields {
                  ...MetaObjectField
                }
              }
            }
          }
        }
      }
    }
  }
`

const featuredCollectionQuery = `#graphql
  query FeaturedCollection($country: CountryCode, $language: LanguageCode)
    @inContext(country: $country, language: $language) {
    collections(first: 1, sortKey: UPDATED_AT, reverse: true) {
      nodes {
        id
        title
        handle
        image {
          url
          altText
          width
          height
        }
      }
    }
  }
`

const recommendedProductsQuery = `#graphql
  query RecommendedProducts($country: CountryCode, $language: LanguageCode)
    @inContext(country: $country, language: $language) {
    products(first: 4, sortKey: UPDATED_AT, reverse: true) {
      nodes {
        id
        title
        handle
        priceRange {
          minVariantPrice {
            amount
            currencyCode
          }
        }
        images(first: 1) {
          nodes {
            url
            altText
            width
            height
          }
        }
      }
    }
  }
`

const newsletterSubscribeMutation = `#graphql
  mutation NewsletterSubscribe($input: CustomerCreateInput!) {
    customerCreate(input: $input) {
      customer {
        id
        acceptsMarketing
      }
      customerUserErrors {
        code
        field
        message
      }
    }
  }
`

const adminProductsQuery = `#graphql:adminAPI
  query AdminProducts($first: Int!) {
    products(first: $first) {
      edges {
        node {
          id
          title
        }
      }
    }
  }
`
