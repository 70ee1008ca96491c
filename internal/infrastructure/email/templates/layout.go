// Package templates provides the newsletter email markup.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

type EmailLayoutProps struct {
	Preheader  string
	Content    template.HTML
	StoreName  string
	StoreURL   string
	FooterText string
}

var emailLayoutTemplate = template.Must(template.New("emailLayout").Parse(`<!doctype html>
<html lang="es">
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8">
    <title>{{.StoreName}}</title>
  </head>
  <body style="font-family: Helvetica, sans-serif; font-size: 16px; line-height: 1.3; background-color: #f4f5f6; margin: 0; padding: 0;">
    <span class="preheader" style="color: transparent; display: none; height: 0; max-height: 0; overflow: hidden; visibility: hidden;">{{.Preheader}}</span>
    <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%" bgcolor="#f4f5f6">
      <tr>
        <td style="max-width: 600px; padding: 24px; margin: 0 auto;" width="600">
          <table role="presentation" border="0" cellpadding="0" cellspacing="0" width="100%" style="background: #ffffff; border: 1px solid #eaebed; border-radius: 16px;">
            <tr>
              <td style="padding: 24px;">{{.Content}}</td>
            </tr>
          </table>
          <p style="color: #9a9ea6; font-size: 14px; text-align: center;">
            {{.FooterText}}<br><a href="{{.StoreURL}}" style="color: #9a9ea6;">{{.StoreName}}</a>
          </p>
        </td>
      </tr>
    </table>
  </body>
</html>`))

// GetEmailLayout wraps content in the store layout.
func GetEmailLayout(props EmailLayoutProps) (string, error) {
	if props.StoreName == "" {
		props.StoreName = "Festina"
	}
	if props.FooterText == "" {
		props.FooterText = "Recibes este correo porque te suscribiste a nuestro boletín."
	}

	var buf bytes.Buffer
	if err := emailLayoutTemplate.Execute(&buf, props); err != nil {
		return "", fmt.Errorf("failed to render email layout: %w", err)
	}
	return buf.String(), nil
}
