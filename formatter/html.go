package formatter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/theoremus-urban-solutions/itinerary-view/itinerary"
)

//go:embed templates/*.html.tmpl
var templatesFS embed.FS

var listTemplate = template.Must(template.ParseFS(templatesFS, "templates/itinerary_list.html.tmpl"))

// BuildHTML renders the list as an HTML section with one card per itinerary
func (rb *ResponseBuilder) BuildHTML(list itinerary.List) ([]byte, error) {
	var b bytes.Buffer
	if err := listTemplate.ExecuteTemplate(&b, "itinerary_list.html.tmpl", list); err != nil {
		return nil, fmt.Errorf("render itinerary list: %w", err)
	}
	return b.Bytes(), nil
}
