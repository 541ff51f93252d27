package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/novabiz/internal/models"
)

// marketNews is a static headline feed shown in the news view. There is no
// backing service; the items ship with the app.
var marketNews = []models.NewsItem{
	{
		Id:       "n1",
		Title:    "Z-Tech raises $50M Series A to expand AI logistics",
		Category: "Funding",
		Summary:  "The round was led by Sequoia with participation from existing investors.",
		URL:      "https://example.com/news/z-tech-series-a",
	},
	{
		Id:       "n2",
		Title:    "Indian SaaS market projected to triple by 2030",
		Category: "India",
		Summary:  "Analysts point to an expanding developer base and global go-to-market playbooks.",
		URL:      "https://example.com/news/india-saas-growth",
	},
	{
		Id:       "n3",
		Title:    "The future of remote work: hybrid is here to stay",
		Category: "Tech",
		Summary:  "A survey of 500 startups shows most are settling on a hybrid office model.",
		URL:      "https://example.com/news/remote-work",
	},
}

// News prints the market headlines, optionally filtered by category.
func (a *App) News(ctx context.Context) error {

	filter, err := GetSimpleText(a.reader, "Category (Funding/Tech/India, empty for all)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	filter = strings.TrimSpace(filter)

	shown := 0
	for _, item := range marketNews {
		if filter != "" && !strings.EqualFold(item.Category, filter) {
			continue
		}
		printlnFn(fmt.Sprintf("[%s] %s", item.Category, item.Title))
		printlnFn("  " + item.Summary)
		printlnFn("  " + item.URL)
		shown++
	}
	if shown == 0 {
		printlnFn("No news in this category")
	}
	return nil
}
