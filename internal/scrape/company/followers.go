package company

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/linkedin-scraper/internal/browser"
	"github.com/jonathan/linkedin-scraper/internal/linkurl"
	"github.com/jonathan/linkedin-scraper/internal/scrape"
	"github.com/jonathan/linkedin-scraper/internal/types"
)

// followersModalSelector matches the in-network followers overlay opened by
// the showInNetworkFollowers query flag.
const followersModalSelector = "[role='dialog']"

// followerItemSelector matches one follower row inside the overlay.
const followerItemSelector = "[role='dialog'] li"

// scrapeFollowers walks the in-network followers modal, bounded by the page
// budget (one page per "Show more results" click). An account whose
// followers are not visible gets no modal, which is zero followers rather
// than an error.
func (s *Scraper) scrapeFollowers(ctx context.Context, c *types.Company, budget int) error {
	followersURL := c.LinkedInURL + "/?showInNetworkFollowers=true"
	if err := s.page.Navigate(ctx, followersURL); err != nil {
		return &browser.NavigationError{URL: followersURL, Cause: err}
	}
	browser.Pause(ctx, settleLong)

	if err := s.page.WaitVisible(ctx, followersModalSelector); err != nil {
		return nil
	}

	result, err := scrape.NewCollector[types.Follower](budget).Run(ctx, &followerSource{page: s.page})
	for _, f := range result.Entries {
		c.AddFollower(f)
	}
	s.logf("company: followers %s after %d pages, %d entries", result.State, result.Pages, len(result.Entries))
	return err
}

// followerSource feeds the collector from the live followers overlay.
type followerSource struct {
	page browser.Page
}

func (s *followerSource) LoadList(ctx context.Context) error {
	return s.page.WaitVisible(ctx, followerItemSelector)
}

func (s *followerSource) Entries(ctx context.Context) ([]scrape.Item[types.Follower], error) {
	html, err := s.page.OuterHTML(ctx, followersModalSelector)
	if err != nil {
		return nil, err
	}
	doc, err := scrape.ParseSectionHTML(html)
	if err != nil {
		return nil, err
	}
	return ExtractFollowers(doc), nil
}

// Advance clicks the overlay's "Show more results" control. The button has
// no stable class; it is found by text.
func (s *followerSource) Advance(ctx context.Context) (bool, error) {
	var clicked bool
	expr := `(() => {
		const dialog = document.querySelector("[role='dialog']");
		if (!dialog) return false;
		const btn = Array.from(dialog.querySelectorAll('button'))
			.find(b => b.innerText && b.innerText.includes('Show more results'));
		if (!btn) return false;
		btn.click();
		return true;
	})()`
	if err := s.page.Evaluate(ctx, expr, &clicked); err != nil || !clicked {
		return false, nil
	}
	browser.Pause(ctx, settleShort)
	return true, nil
}

// ExtractFollowers parses follower rows from the overlay. Rows without a
// profile link or a recoverable name are skipped; the collector dedups by
// canonical profile URL across "Show more" rounds, which re-render earlier
// rows.
func ExtractFollowers(doc *goquery.Document) []scrape.Item[types.Follower] {
	var items []scrape.Item[types.Follower]

	doc.Find("li").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("a[href*='/in/']").First()
		if link.Length() == 0 {
			return
		}
		href, _ := link.Attr("href")
		if href == "" {
			return
		}

		texts := followerTexts(link)
		name := followerName(texts)
		if name == "" {
			return
		}

		url := linkurl.Normalize(href)
		items = append(items, scrape.Item[types.Follower]{
			URL: url,
			Value: types.Follower{
				Name:        name,
				Headline:    followerHeadline(texts, name),
				LinkedInURL: url,
			},
		})
	})
	return items
}

// followerTexts collects the distinct text lines of a follower link. Leaf
// divs are read individually so a wrapping div does not re-contribute its
// children's text as one blob.
func followerTexts(link *goquery.Selection) []string {
	var texts []string
	link.Find("div").Each(func(_ int, div *goquery.Selection) {
		if div.Find("div").Length() > 0 {
			return
		}
		if text := cleanLine(div.Text()); text != "" && !containsText(texts, text) {
			texts = append(texts, text)
		}
	})
	return texts
}

// followerName picks the row's display name: the first short line that is
// not a connection-degree annotation.
func followerName(texts []string) string {
	for _, text := range texts {
		if isDegreeAnnotation(text) {
			continue
		}
		if len(strings.Fields(text)) <= 5 {
			return text
		}
	}
	return ""
}

// followerHeadline picks the row's headline: the last long line that is
// neither the name nor a degree annotation.
func followerHeadline(texts []string, name string) string {
	for i := len(texts) - 1; i >= 0; i-- {
		text := texts[i]
		if text == name || isDegreeAnnotation(text) || len(text) <= 10 {
			continue
		}
		return text
	}
	return ""
}

func isDegreeAnnotation(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "degree connection") ||
		strings.Contains(text, "· 1st") ||
		strings.Contains(text, "· 2nd") ||
		strings.Contains(text, "· 3rd")
}

func containsText(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
