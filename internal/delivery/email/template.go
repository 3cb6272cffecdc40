package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
	"github.com/zanaya/ZNY-BookingService/internal/service/pricing"
)

// notificationData данные шаблона письма-уведомления
type notificationData struct {
	Draft    *domain.BookingDraft
	Quote    pricing.Quote
	Currency string
}

const notificationHTML = `<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; }
    .section { margin-bottom: 25px; }
    .section h3 { color: #667eea; border-bottom: 2px solid #667eea; padding-bottom: 5px; }
    .item { padding: 10px; border-left: 3px solid #667eea; margin: 10px 0; background: #f8f9fa; }
    .total { background: #667eea; color: white; padding: 15px; text-align: center; font-size: 18px; font-weight: bold; }
    .contact-info { background: #f8f9fa; padding: 15px; border-radius: 5px; }
  </style>
</head>
<body>
  <div class="header">
    <h1>ZANAYA - Last Rites Service Booking</h1>
    <p>New booking received</p>
  </div>

  <div class="content">
    <div class="section">
      <h3>Personal Details</h3>
      <div class="contact-info">
        <p><strong>Name:</strong> {{.Draft.PersonalInfo.Name}}</p>
        <p><strong>Email:</strong> {{.Draft.PersonalInfo.Email}}</p>
        <p><strong>Phone:</strong> {{.Draft.PersonalInfo.Phone}}</p>
        <p><strong>Address:</strong> {{.Draft.PersonalInfo.Address}}</p>
      </div>
    </div>

    <div class="section">
      <h3>Religion</h3>
      <p><strong>{{.Draft.Religion.Name}}</strong> - {{.Draft.Religion.Description}}</p>
    </div>

    {{if .Draft.SelectedKitItems}}
    <div class="section">
      <h3>Selected Kit Items</h3>
      {{range .Draft.SelectedKitItems}}
      <div class="item">
        <strong>{{.Name}}</strong> - {{$.Currency}}{{.Price}}
        <br><small>{{.Description}}</small>
        {{if .Required}}<span style="color: red; font-size: 12px;">(Required)</span>{{end}}
      </div>
      {{end}}
      <p><strong>Kit Subtotal: {{.Currency}}{{.Quote.KitSubtotal}}</strong></p>
    </div>
    {{end}}

    {{if .Draft.SelectedServices}}
    <div class="section">
      <h3>Additional Services</h3>
      {{range .Draft.SelectedServices}}
      <div class="item">
        <strong>{{.Name}}</strong> - {{$.Currency}}{{.Price}}
        <br><small>{{.Description}}</small>
        {{if .Duration}}<br><small>Duration: {{.Duration}}</small>{{end}}
      </div>
      {{end}}
      <p><strong>Services Subtotal: {{.Currency}}{{.Quote.ServicesSubtotal}}</strong></p>
    </div>
    {{end}}

    <div class="total">
      GRAND TOTAL: {{.Currency}}{{.Quote.GrandTotal}}
    </div>

    <div class="section">
      <p><strong>Next Steps:</strong></p>
      <ul>
        <li>Contact the customer within 30 minutes</li>
        <li>Confirm all details and timing</li>
        <li>Arrange for the selected services</li>
        <li>Coordinate with the appropriate religious authorities</li>
      </ul>
    </div>
  </div>
</body>
</html>
`

var notificationTmpl = template.Must(template.New("notification").Parse(notificationHTML))

// renderNotification рендерит HTML-уведомление по черновику.
// html/template экранирует контактные поля клиента.
func renderNotification(draft *domain.BookingDraft) (string, error) {
	data := notificationData{
		Draft:    draft,
		Quote:    pricing.Calculate(draft),
		Currency: domain.CurrencySymbol,
	}

	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.String(), nil
}
