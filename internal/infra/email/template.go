package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// templateParams feeds the notification email template.
type templateParams struct {
	RecipientName string
	CustomContent string
	Year          int
}

var notificationTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html lang="en">
    <head>
        <meta charset="UTF-8">
        <title>Notification - Locaccm</title>
        <style>
            body {
                font-family: Arial, sans-serif;
                background-color: #f7f9fc;
                margin: 0;
                padding: 0;
            }
            .container {
                background-color: #ffffff;
                max-width: 600px;
                margin: 30px auto;
                padding: 30px;
                border-radius: 8px;
                box-shadow: 0 0 10px rgba(0,0,0,0.05);
            }
            h1 {
                color: #333;
            }
            p {
                font-size: 16px;
                color: #555;
            }
            .signature {
                margin-top: 30px;
                font-size: 16px;
                color: #333;
                font-weight: bold;
            }
            .footer {
                margin-top: 40px;
                font-size: 12px;
                color: #999;
                text-align: center;
            }
        </style>
    </head>
    <body>
        <div class="container">
            <h1>Hello {{.RecipientName}},</h1>

            <p>{{.CustomContent}}</p>

            <p class="signature">Sincerely,<br>The Locaccm team</p>

            <div class="footer">
                © {{.Year}} Locaccm. All rights reserved. <br>
                This email was sent to you automatically. Please do not reply.
            </div>
        </div>
    </body>
</html>
`))

// RenderReminderBody produces the HTML body for one reminder email.
func RenderReminderBody(recipientName, customContent string) (string, error) {
	var buf bytes.Buffer
	err := notificationTemplate.Execute(&buf, templateParams{
		RecipientName: recipientName,
		CustomContent: customContent,
		Year:          time.Now().Year(),
	})
	if err != nil {
		return "", fmt.Errorf("error rendering notification template: %w", err)
	}
	return buf.String(), nil
}
