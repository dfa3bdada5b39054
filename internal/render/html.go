// Package render turns a health report into the embeddable HTML fragment
// shown on an administrative status page. The fragment carries its styling
// inline so the host page needs no stylesheet of its own.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/skvare/redis-health/internal/domain"
)

// severityColors maps each severity to its banner/border color.
var severityColors = map[domain.Severity]string{
	domain.SeverityOK:       "#2e7d32",
	domain.SeverityInfo:     "#1565c0",
	domain.SeverityWarning:  "#ef6c00",
	domain.SeverityCritical: "#c62828",
}

func severityColor(s domain.Severity) string {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return severityColors[domain.SeverityInfo]
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"color": severityColor,
}).Parse(reportHTML))

const reportHTML = `<div style="font-family:sans-serif;max-width:760px">
  <div style="padding:10px 14px;border-radius:4px;color:#ffffff;background:{{color .Overall}}">
    <strong>Redis health: {{.Overall}}</strong>
    <span style="float:right;font-size:13px">{{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</span>
  </div>
{{- range .Results}}
  <div style="margin-top:10px;border:1px solid #dddddd;border-left:4px solid {{color .Severity}};border-radius:4px;padding:8px 12px">
    <strong>{{.Title}}</strong>
    <span style="float:right;color:{{color .Severity}};text-transform:uppercase;font-size:12px">{{.Severity}}</span>
    <p style="margin:6px 0">{{.Message}}</p>
{{- if .Details}}
    <table style="border-collapse:collapse;font-size:13px">
{{- range .Details}}
      <tr><td style="padding:2px 16px 2px 0;color:#666666">{{.Label}}</td><td style="padding:2px 0">{{.Value}}</td></tr>
{{- end}}
    </table>
{{- end}}
  </div>
{{- end}}
</div>
`

// HTML renders the report as an HTML fragment.
func HTML(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, report); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}
