package company

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/linkurl"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

// ExtractAffiliatedPages parses the unified "Affiliated pages" section of
// the about page into showcase pages and affiliated companies. The cards do
// not distinguish the two structurally; the "Showcase page" badge text does.
func ExtractAffiliatedPages(doc *goquery.Document) (showcase, affiliated []types.CompanySummary) {
	list := affiliatedList(doc)
	if list == nil {
		return nil, nil
	}

	list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
		summary, isShowcase, ok := extractPageCard(item)
		if !ok {
			return
		}
		if isShowcase {
			showcase = append(showcase, summary)
		} else {
			affiliated = append(affiliated, summary)
		}
	})
	return showcase, affiliated
}

// affiliatedList locates the card list under the "Affiliated pages"
// heading, climbing from the heading until an ancestor carries one.
func affiliatedList(doc *goquery.Document) *goquery.Selection {
	var list *goquery.Selection
	doc.Find("h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if !strings.Contains(h.Text(), "Affiliated pages") {
			return true
		}
		node := h
		for i := 0; i < 5; i++ {
			node = node.Parent()
			if node.Length() == 0 {
				break
			}
			if ul := node.Find("ul").First(); ul.Length() > 0 {
				list = ul
				return false
			}
		}
		return false
	})
	return list
}

// extractPageCard reads one affiliated-page card. Cards carry two links,
// logo then text; the text link holds name, badge and follower lines.
func extractPageCard(item *goquery.Selection) (types.CompanySummary, bool, bool) {
	links := item.Find("a[href]")
	if links.Length() == 0 {
		return types.CompanySummary{}, false, false
	}
	link := links.First()
	if links.Length() > 1 {
		link = links.Eq(1)
	}

	href, _ := link.Attr("href")
	text := strings.TrimSpace(link.Text())
	if href == "" || text == "" {
		return types.CompanySummary{}, false, false
	}

	lines := strings.Split(text, "\n")
	summary := types.CompanySummary{
		Name:        strings.TrimSpace(lines[0]),
		LinkedInURL: linkurl.Normalize(href),
	}
	if summary.Name == "" {
		return types.CompanySummary{}, false, false
	}

	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), "follower") {
			summary.Followers = strings.TrimSpace(line)
			break
		}
	}

	return summary, strings.Contains(text, "Showcase page"), true
}
