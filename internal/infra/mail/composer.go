package mail

import (
	"bytes"
	"html/template"

	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	verificationSubject = "ShopLoc - Votre code de vérification"
	newOrderLineSubject = "ShopLoc - Nouvelle commande"
)

var verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif;">
  <p>Bonjour {{.Name}},</p>
  <p>Voici votre code de vérification pour vous connecter à ShopLoc :</p>
  <p style="font-size: 24px; font-weight: bold; letter-spacing: 4px;">{{.Code}}</p>
  <p>Si vous n'êtes pas à l'origine de cette demande, ignorez cet e-mail.</p>
</body>
</html>`))

var newOrderLineTemplate = template.Must(template.New("order_line").Parse(`<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif;">
  <p>Bonjour {{.StoreName}},</p>
  <p>Un client vient de commander <strong>{{.Quantity}} x {{.ProductName}}</strong>.</p>
  <p>Connectez-vous à votre espace commerçant pour suivre vos commandes.</p>
</body>
</html>`))

// templateComposer renders the application emails with html/template.
type templateComposer struct{}

// NewComposer creates the MailComposer.
func NewComposer() service.MailComposer {
	return templateComposer{}
}

func (templateComposer) VerificationCode(recipientName, code string) (service.Email, error) {
	html, err := render(verificationTemplate, struct {
		Name string
		Code string
	}{Name: recipientName, Code: code})
	if err != nil {
		return service.Email{}, err
	}

	return service.Email{Subject: verificationSubject, HTML: html}, nil
}

func (templateComposer) NewOrderLine(storeName, productName string, quantity int) (service.Email, error) {
	html, err := render(newOrderLineTemplate, struct {
		StoreName   string
		ProductName string
		Quantity    int
	}{StoreName: storeName, ProductName: productName, Quantity: quantity})
	if err != nil {
		return service.Email{}, err
	}

	return service.Email{Subject: newOrderLineSubject, HTML: html}, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "render %s email", tmpl.Name())
	}

	return buf.String(), nil
}
