package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

type WelcomeEmailProps struct {
	StoreName string
	StoreURL  string
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(
	`<p style="margin: 0 0 16px;">¡Gracias por suscribirte!</p>` +
		`<p style="margin: 0 0 16px;">Desde ahora recibirás las novedades y lanzamientos de {{.StoreName}}.</p>` +
		`<a href="{{.StoreURL}}" style="display: inline-block; background: #000000; color: #ffffff; padding: 12px 24px; border-radius: 4px; text-decoration: none;">Ver la tienda</a>`,
))

// GetWelcomeEmailContent renders the body of the newsletter welcome email.
func GetWelcomeEmailContent(props WelcomeEmailProps) (template.HTML, error) {
	var buf bytes.Buffer
	if err := welcomeTemplate.Execute(&buf, props); err != nil {
		return "", fmt.Errorf("failed to render welcome email: %w", err)
	}
	return template.HTML(buf.String()), nil
}
