package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theoremus-urban-solutions/itinerary-view/itinerary"
)

const (
	colorHeading lipgloss.Color = "#89b4fa"
	colorKey     lipgloss.Color = "#f5c2e7"
	colorBorder  lipgloss.Color = "#585b70"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeading).MarginBottom(1)
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorKey)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// BuildText renders the list for a terminal: the heading followed by one
// bordered box per card, titled with the card key.
func (rb *ResponseBuilder) BuildText(list itinerary.List) string {
	blocks := make([]string, 0, len(list.Cards)+1)
	blocks = append(blocks, headingStyle.Render(list.Heading))
	for _, c := range list.Cards {
		body := lipgloss.JoinVertical(lipgloss.Left, keyStyle.Render("key: "+c.Key), c.Content)
		blocks = append(blocks, cardStyle.Render(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
