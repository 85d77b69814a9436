package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/booklist/internal/catalog"
)

// Output formats accepted by -format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const consoleTemplates = `
{{- define "book"}}[{{.ID}}] {{.Title}} by {{.Author}} ({{.Year}}){{end}}
{{- define "list"}}{{range .}}{{template "book" .}}
{{else}}No books.
{{end}}{{end}}
{{- define "added"}}Added {{template "book" .}}
{{end}}`

// ConsoleView renders the book list to a terminal.
type ConsoleView struct {
	out    io.Writer
	errOut io.Writer
	format string
	tmpl   *template.Template
}

func NewConsoleView(out, errOut io.Writer, format string) (*ConsoleView, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unknown format %q (expected text, json or yaml)", format)
	}

	tmpl, err := template.New("console").Parse(consoleTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &ConsoleView{
		out:    out,
		errOut: errOut,
		format: format,
		tmpl:   tmpl,
	}, nil
}

func (v *ConsoleView) Show(books []catalog.Book) {
	if books == nil {
		books = []catalog.Book{}
	}
	v.render("list", books)
}

func (v *ConsoleView) Append(book catalog.Book) {
	v.render("added", book)
}

// ResetForm is a no-op; flags are read once per invocation.
func (v *ConsoleView) ResetForm() {}

func (v *ConsoleView) Alert(message string) {
	fmt.Fprintln(v.errOut, message)
}

func (v *ConsoleView) render(name string, data any) {
	var err error
	switch v.format {
	case FormatJSON:
		enc := json.NewEncoder(v.out)
		enc.SetIndent("", "  ")
		err = enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(v.out)
		enc.SetIndent(2)
		if err = enc.Encode(data); err == nil {
			err = enc.Close()
		}
	default:
		err = v.tmpl.ExecuteTemplate(v.out, name, data)
	}
	if err != nil {
		log.Printf("Failed to render %s: %v", name, err)
	}
}
