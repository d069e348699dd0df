// Package view renders the employee directory page.
package view

import (
	"bytes"
	"embed"
	"html"
	"html/template"

	"employee-directory/internal/entities"
	"employee-directory/internal/mapper"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	pageTitle   = "Employee Directory"
	pageHeading = "Employees"
)

// ErrorLogger is the diagnostic port fetch failures are reported to.
// *zap.SugaredLogger satisfies it.
type ErrorLogger interface {
	Errorw(msg string, keysAndValues ...interface{})
}

// ListResult is the outcome of one fetch from the record source.
type ListResult struct {
	Records []entities.EmployeeRecord
	Err     error
}

// Renderer turns a ListResult into an HTML document. It holds no per-render
// state and is safe for concurrent use.
type Renderer struct {
	log ErrorLogger
}

// NewRenderer builds a Renderer reporting fetch errors to log. A nil log
// disables reporting.
func NewRenderer(log ErrorLogger) *Renderer {
	return &Renderer{log: log}
}

type pageData struct {
	Title        string
	Heading      string
	HasError     bool
	ErrorMessage string
	Rows         []entities.DisplayRow
}

// Render always returns a complete document. A fetch error is shown as an
// error panel inside the page layout; records are shown in the order given.
func (r *Renderer) Render(res ListResult) []byte {
	data := pageData{Title: pageTitle, Heading: pageHeading}

	switch {
	case res.Err != nil:
		data.HasError = true
		data.ErrorMessage = entities.FetchMessage(res.Err)
		r.report(res.Err)
	case len(res.Records) > 0:
		data.Rows = mapper.ToDisplayRows(res.Records)
	}

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "directory", data); err != nil {
		r.safeLog("failed to execute directory template", "error", err)
		return fallbackDocument(data)
	}
	return buf.Bytes()
}

func (r *Renderer) report(err error) {
	r.safeLog("error fetching employees", "error", err)
}

// safeLog never lets the logging port affect rendering.
func (r *Renderer) safeLog(msg string, kv ...interface{}) {
	if r.log == nil {
		return
	}
	defer func() { _ = recover() }()
	r.log.Errorw(msg, kv...)
}

func fallbackDocument(data pageData) []byte {
	var b bytes.Buffer
	b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
	b.WriteString(html.EscapeString(data.Title))
	b.WriteString(`</title></head><body><main><h1>`)
	b.WriteString(html.EscapeString(data.Heading))
	b.WriteString(`</h1>`)

	switch {
	case data.HasError:
		b.WriteString(`<div class="error" role="alert"><strong>Error loading employees</strong><p>`)
		b.WriteString(html.EscapeString(data.ErrorMessage))
		b.WriteString(`</p></div>`)
	case len(data.Rows) == 0:
		b.WriteString(`<p class="empty">No employees found.</p>`)
	default:
		b.WriteString(`<table><thead><tr><th>Employee</th><th>Position</th><th>Department</th><th>Email</th></tr></thead><tbody>`)
		for _, row := range data.Rows {
			b.WriteString(`<tr><td>`)
			b.WriteString(html.EscapeString(row.Initial + " " + row.DisplayName))
			b.WriteString(`</td><td>`)
			b.WriteString(html.EscapeString(row.Position))
			b.WriteString(`</td><td>`)
			b.WriteString(html.EscapeString(row.Department))
			b.WriteString(`</td><td>`)
			if row.Email != nil {
				e := html.EscapeString(*row.Email)
				b.WriteString(`<a href="mailto:` + e + `">` + e + `</a>`)
			} else {
				b.WriteString(entities.MissingPlaceholder)
			}
			b.WriteString(`</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)
	}

	b.WriteString(`</main></body></html>`)
	return b.Bytes()
}
