package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

// SendOrderNotification mails a summary of a freshly placed order to the
// shop inbox so the kitchen sees it without watching the dashboard.
func (s *EmailService) SendOrderNotification(toEmail string, order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Order %s - Shawarma Shop", order.ID.Hex()))

	var rows strings.Builder
	for _, item := range order.Items {
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td style="text-align:center;">%d</td><td style="text-align:right;">%.0f LE</td></tr>`,
			item.Name, item.Quantity, item.Price*float64(item.Quantity)))
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #f97316; text-align: center; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        td, th { padding: 8px; border-bottom: 1px solid #eee; }
        .total { font-size: 18px; font-weight: bold; color: #f97316; text-align: right; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Shawarma Shop</div>
        <h2>New order from %s</h2>
        <p>Phone: %s<br>Address: %s<br>Payment: %s</p>
        <table>
            <tr><th>Item</th><th>Qty</th><th>Total</th></tr>
            %s
        </table>
        <p class="total">Total: %.0f LE</p>
    </div>
</body>
</html>`,
		order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.PaymentMethod, rows.String(), order.TotalAmount)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
