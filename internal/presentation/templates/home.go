package templates

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Kronotime-SAS/Festina/internal/domain/entities/storefront"
)

var homeTmpl = template.Must(template.New("home").Parse(`<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swiper@11/swiper-bundle.min.css">
<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>
</head>
<body>
<div class="w-full">
{{.Slider}}
{{with .Page.FeaturedCollection}}
<a class="featured-collection" href="{{.Path}}">
{{with .Image}}<div class="featured-collection-image"><img src="{{.URL}}" alt="{{.AltText}}" sizes="100vw"></div>{{end}}
<h1>{{.Title}}</h1>
</a>
{{end}}
<div class="recommended-products">
<h2>Productos recomendados</h2>
<div class="recommended-products-grid">
{{range .Page.RecommendedProducts}}
<a class="recommended-product" href="{{.Path}}">
{{with .FeaturedImage}}<img src="{{.URL}}" alt="{{.AltText}}" style="aspect-ratio: 1/1" sizes="(min-width: 45em) 20vw, 50vw">{{end}}
<h4>{{.Title}}</h4>
<small>{{.PriceRange.MinVariantPrice.Amount}} {{.PriceRange.MinVariantPrice.CurrencyCode}}</small>
</a>
{{end}}
</div>
</div>
{{template "newsletterForm" .}}
</div>
<script src="https://cdn.jsdelivr.net/npm/swiper@11/swiper-bundle.min.js" defer></script>
{{template "sliderInit"}}
</body>
</html>
{{define "sliderInit"}}<script>
document.addEventListener("DOMContentLoaded", function () {
  if (typeof Swiper === "undefined") return;
  document.querySelectorAll("[data-slider]").forEach(function (root) {
    var el = root.querySelector(".swiper");
    new Swiper(el, {
      loop: true,
      autoplay: { delay: parseInt(el.dataset.autoplayDelay, 10) || 5000, disableOnInteraction: false },
      pagination: { el: root.querySelector(".swiper-pagination"), clickable: true },
      navigation: { nextEl: root.querySelector("[data-slider-next]"), prevEl: root.querySelector("[data-slider-prev]") }
    });
  });
});
</script>{{end}}
{{define "newsletterForm"}}<form class="space-y-4 max-w-md mx-auto mt-8" method="post" action="/api/v1/newsletter" hx-post="/api/v1/newsletter" hx-target="#newsletter-status" hx-swap="innerHTML">
<input type="email" name="email" required placeholder="Tu correo electrónico" class="p-2 border border-gray-300 rounded w-full">
<button type="submit" class="bg-black text-white px-4 py-2 rounded w-full">Suscribirme</button>
<div id="newsletter-status"></div>
</form>{{end}}`))

type homeData struct {
	Title  string
	Slider template.HTML
	Page   *storefront.HomePage
}

// RenderHomePage renders the complete home document.
func RenderHomePage(page *storefront.HomePage) (string, error) {
	slider, err := RenderSlider(page.Slides)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := homeTmpl.Execute(&buf, homeData{Title: "Inicio", Slider: slider, Page: page}); err != nil {
		return "", fmt.Errorf("failed to render home page: %w", err)
	}
	return buf.String(), nil
}

var newsletterStatusTmpl = template.Must(template.New("newsletterStatus").Parse(
	`{{if .Error}}<p class="text-red-600">{{.Error}}</p>{{else}}<p class="text-green-600">¡Gracias por suscribirte!</p>{{end}}`,
))

// RenderNewsletterStatus renders the htmx swap target after a sign-up.
func RenderNewsletterStatus(errMsg string) string {
	var buf bytes.Buffer
	if err := newsletterStatusTmpl.Execute(&buf, struct{ Error string }{errMsg}); err != nil {
		return `<p class="text-red-600">Error</p>`
	}
	return buf.String()
}
