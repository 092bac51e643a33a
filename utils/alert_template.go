package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/johpaz/apiGestion-api/models"
)

var alertEmailTmpl = template.Must(template.New("alertEmail").Parse(`<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; overflow: hidden;">
    <div style="background: {{.HeaderColor}}; color: #ffffff; padding: 16px 24px;">
      <h2 style="margin: 0;">🐝 Alerta: {{.Kind}}</h2>
    </div>
    <div style="padding: 24px;">
      <p>Hola {{.UserName}},</p>
      <p>{{.Message}}</p>
      <table style="width: 100%; font-size: 14px; color: #555555;">
        <tr><td><strong>Título:</strong></td><td>{{.Title}}</td></tr>
        <tr><td><strong>Tipo:</strong></td><td>{{.Kind}}</td></tr>
        <tr><td><strong>Prioridad:</strong></td><td>{{.Priority}}</td></tr>
        <tr><td><strong>Fecha:</strong></td><td>{{.Timestamp}}</td></tr>
      </table>
      <p style="margin-top: 24px;">
        <a href="{{.AlertsURL}}" style="background: #d97706; color: #ffffff; padding: 10px 20px; text-decoration: none; border-radius: 4px;">Ver alertas</a>
        <a href="{{.DashboardURL}}" style="margin-left: 12px; color: #d97706;">Ir al panel</a>
      </p>
    </div>
  </div>
</body>
</html>`))

type alertEmailData struct {
	Title        string
	Message      string
	Kind         string
	Priority     string
	Timestamp    string
	UserName     string
	HeaderColor  string
	DashboardURL string
	AlertsURL    string
}

// RenderAlertEmail builds the HTML body for an alert notification email.
func RenderAlertEmail(alert *models.Alert, userName string) string {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:5173"
	}

	color := "#2563eb"
	switch alert.Priority {
	case models.AlertPriorityCritical:
		color = "#dc2626"
	case models.AlertPriorityHigh:
		color = "#ea580c"
	}

	var buf bytes.Buffer
	err := alertEmailTmpl.Execute(&buf, alertEmailData{
		Title:        alert.Title,
		Message:      alert.Message,
		Kind:         alert.Kind,
		Priority:     alert.Priority,
		Timestamp:    alert.CreatedAt.Format("02/01/2006 15:04"),
		UserName:     userName,
		HeaderColor:  color,
		DashboardURL: fmt.Sprintf("%s/dashboard", frontend),
		AlertsURL:    fmt.Sprintf("%s/alerts", frontend),
	})
	if err != nil {
		// Template is static; execution only fails on writer errors.
		return alert.Message
	}
	return buf.String()
}
