package templates

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/Kronotime-SAS/Festina/internal/domain/entities/metaobject"
)

// sliderTmpl renders the carousel; each slide carries a desktop and a mobile
// image and slides keep their extraction order.
var sliderTmpl = template.Must(template.New("slider").Funcs(template.FuncMap{"icon": Icon}).Parse(
	`<div class="relative" data-slider>` +
		`<div class="swiper" data-autoplay-delay="{{.AutoplayDelay}}"><div class="swiper-wrapper">` +
		`{{range $i, $s := .Slides}}` +
		`<div class="swiper-slide" data-slide="{{$i}}">` +
		`{{if $s.URL}}<a href="{{$s.URL}}">{{end}}` +
		`<img class="hidden md:block w-full" src="{{$s.BannerDesk}}" alt="" loading="{{if eq $i 0}}eager{{else}}lazy{{end}}">` +
		`<img class="block md:hidden w-full" src="{{$s.BannerMobile}}" alt="" loading="{{if eq $i 0}}eager{{else}}lazy{{end}}">` +
		`{{if $s.URL}}</a>{{end}}` +
		`</div>` +
		`{{end}}` +
		`</div><div class="swiper-pagination"></div></div>` +
		`<button class="w-10 absolute right-0 z-40 top-[50%] hidden md:block" data-slider-next aria-label="Siguiente">{{icon "arrow-right1" 24 "white"}}</button>` +
		`<button class="w-10 absolute left-0 z-40 top-[50%] hidden md:block" data-slider-prev aria-label="Anterior">{{icon "arrow-left1" 24 "white"}}</button>` +
		`</div>`,
))

type sliderData struct {
	Slides        []metaobject.Slide
	AutoplayDelay int
}

// SliderAutoplayDelay is the carousel autoplay interval in milliseconds.
const SliderAutoplayDelay = 5000

// RenderSlider renders the home carousel. An empty sequence renders nothing.
func RenderSlider(slides []metaobject.Slide) (template.HTML, error) {
	if len(slides) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := sliderTmpl.Execute(&buf, sliderData{Slides: slides, AutoplayDelay: SliderAutoplayDelay}); err != nil {
		return "", fmt.Errorf("failed to render slider: %w", err)
	}
	return template.HTML(buf.String()), nil
}
