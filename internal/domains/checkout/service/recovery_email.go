package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/internal/infrastructure/email"
)

var recoveryEmailTmpl = template.Must(template.New("recovery").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Hi {{if .Name}}{{.Name}}{{else}}there{{end}}, you left something behind</h2>
  <p>Your cart at {{.StoreName}} is still waiting for you.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    {{range .Items}}
    <tr>
      <td>{{.Name}}{{if .Variant}} ({{.Variant}}){{end}}</td>
      <td>x{{.Quantity}}</td>
      <td>Rs. {{printf "%.2f" .Price}}</td>
    </tr>
    {{end}}
  </table>
  <p><strong>Total: Rs. {{printf "%.2f" .Total}}</strong></p>
  <p><a href="{{.Link}}" style="background:#111;color:#fff;padding:10px 18px;text-decoration:none;">Complete your order</a></p>
</body>
</html>`))

type recoveryEmailData struct {
	Name      string
	StoreName string
	Items     []model.CartItem
	Total     float64
	Link      string
}

// RecoveryLink - <FRONTEND_URL>/checkout/recover/<id>
func RecoveryLink(frontendURL, id string) string {
	return fmt.Sprintf("%s/checkout/recover/%s", strings.TrimRight(frontendURL, "/"), id)
}

func buildRecoveryEmail(doc *model.AbandonedCheckout, frontendURL, storeName string) (email.EmailRequest, error) {
	var body bytes.Buffer
	err := recoveryEmailTmpl.Execute(&body, recoveryEmailData{
		Name:      doc.Name,
		StoreName: storeName,
		Items:     doc.CartItems,
		Total:     doc.TotalAmount,
		Link:      RecoveryLink(frontendURL, doc.ID.Hex()),
	})
	if err != nil {
		return email.EmailRequest{}, fmt.Errorf("render recovery email: %w", err)
	}

	return email.EmailRequest{
		To:      []string{doc.Email},
		Subject: fmt.Sprintf("You left something in your cart at %s", storeName),
		Body:    body.String(),
		IsHTML:  true,
	}, nil
}
