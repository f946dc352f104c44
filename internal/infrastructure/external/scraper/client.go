// Package scraper extracts recipes from web pages for URL import.
// Pages carrying schema.org Recipe markup (JSON-LD) are read directly;
// anything else goes through class-name heuristics that cover the
// common recipe site layouts.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/recipe"
	"github.com/pantrysage/v2/internal/infrastructure/config"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

// Client implements the recipe scraper over HTTP
type Client struct {
	client *http.Client
	logger *zap.Logger
}

// NewClient creates a new recipe page scraper
func NewClient(cfg config.ScraperConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		client: &http.Client{Timeout: timeout},
		logger: logger.Named("recipe-scraper"),
	}
}

// ingredientLine splits "2 cups flour" into amount, unit and item.
// Lines that do not lead with a numeral stay whole in the item field.
var ingredientLine = regexp.MustCompile(`^(\d+(?:/\d+)?(?:\.\d+)?)\s*([a-zA-Z]+)?\s+(.+)$`)

// Scrape fetches the page and extracts a recipe from it.
func (c *Client) Scrape(ctx context.Context, url string) (*outbound.ScrapedRecipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("page fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page fetch returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	scraped := c.fromJSONLD(doc)
	if scraped == nil {
		scraped = c.fromMarkup(doc)
	}
	if scraped == nil || (len(scraped.Ingredients) == 0 && len(scraped.Instructions) == 0) {
		return nil, fmt.Errorf("no recipe found on page")
	}
	if scraped.Title == "" {
		scraped.Title = pageTitle(doc)
	}

	c.logger.Info("recipe scraped",
		zap.String("title", scraped.Title),
		zap.Int("ingredients", len(scraped.Ingredients)),
		zap.Int("instructions", len(scraped.Instructions)),
		zap.Duration("duration", time.Since(start)),
	)
	return scraped, nil
}

// jsonldNode mirrors the subset of schema.org Recipe this importer
// reads. Several fields vary between string, object and array across
// sites, so they stay raw until inspection.
type jsonldNode struct {
	Type         json.RawMessage `json:"@type"`
	Graph        []jsonldNode    `json:"@graph"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Ingredients  []string        `json:"recipeIngredient"`
	Instructions json.RawMessage `json:"recipeInstructions"`
	PrepTime     string          `json:"prepTime"`
	CookTime     string          `json:"cookTime"`
	Yield        json.RawMessage `json:"recipeYield"`
	Cuisine      json.RawMessage `json:"recipeCuisine"`
	Keywords     json.RawMessage `json:"keywords"`
	Image        json.RawMessage `json:"image"`
}

func (c *Client) fromJSONLD(doc *goquery.Document) *outbound.ScrapedRecipe {
	var found *jsonldNode
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if node := recipeNode([]byte(s.Text())); node != nil {
			found = node
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}

	scraped := &outbound.ScrapedRecipe{
		Title:        strings.TrimSpace(found.Name),
		Description:  strings.TrimSpace(found.Description),
		Instructions: instructionsFromRaw(found.Instructions),
		PrepMinutes:  minutesFromDuration(found.PrepTime),
		CookMinutes:  minutesFromDuration(found.CookTime),
		Servings:     leadingInt(stringFromRaw(found.Yield)),
		Cuisine:      stringFromRaw(found.Cuisine),
		Tags:         stringsFromRaw(found.Keywords),
		ImageURL:     imageFromRaw(found.Image),
	}
	for _, line := range found.Ingredients {
		if ing := parseIngredientLine(line); ing.Item != "" {
			scraped.Ingredients = append(scraped.Ingredients, ing)
		}
	}
	return scraped
}

// recipeNode digs a Recipe out of a JSON-LD payload, which may be a
// single node, an array of nodes, or a node wrapping an @graph.
func recipeNode(data []byte) *jsonldNode {
	var single jsonldNode
	if err := json.Unmarshal(data, &single); err == nil {
		if node := matchRecipe(&single); node != nil {
			return node
		}
	}
	var many []jsonldNode
	if err := json.Unmarshal(data, &many); err == nil {
		for i := range many {
			if node := matchRecipe(&many[i]); node != nil {
				return node
			}
		}
	}
	return nil
}

func matchRecipe(node *jsonldNode) *jsonldNode {
	if isRecipeType(node.Type) {
		return node
	}
	for i := range node.Graph {
		if isRecipeType(node.Graph[i].Type) {
			return &node.Graph[i]
		}
	}
	return nil
}

// isRecipeType handles "@type": "Recipe" as well as type arrays.
func isRecipeType(raw json.RawMessage) bool {
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return one == "Recipe"
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		for _, t := range many {
			if t == "Recipe" {
				return true
			}
		}
	}
	return false
}

// markupSelectors cover the ingredient and instruction class names the
// common recipe sites use when no structured data is present.
var (
	ingredientSelectors = []string{
		`li[class*="ingredient"]`,
		`div[class*="ingredient"]`,
		`p[class*="ingredient"]`,
		`span[class*="ingredient"]`,
		`li[data-ingredient]`,
	}
	instructionSelectors = []string{
		`li[class*="instruction"]`,
		`div[class*="instruction"]`,
		`p[class*="instruction"]`,
		`li[class*="direction"]`,
		`div[class*="direction"] li`,
	}
)

func (c *Client) fromMarkup(doc *goquery.Document) *outbound.ScrapedRecipe {
	scraped := &outbound.ScrapedRecipe{Title: pageTitle(doc)}

	for _, selector := range ingredientSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		sel.Each(func(_ int, s *goquery.Selection) {
			if ing := parseIngredientLine(s.Text()); ing.Item != "" {
				scraped.Ingredients = append(scraped.Ingredients, ing)
			}
		})
		break
	}

	for _, selector := range instructionSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		sel.Each(func(_ int, s *goquery.Selection) {
			step := strings.TrimSpace(s.Text())
			// Very short fragments are navigation noise, not steps.
			if len(step) > 10 {
				scraped.Instructions = append(scraped.Instructions, step)
			}
		})
		break
	}

	if img, ok := doc.Find(`meta[property="og:image"]`).Attr("content"); ok {
		scraped.ImageURL = strings.TrimSpace(img)
	}
	return scraped
}

// pageTitle reads the document title, dropping a trailing "- Site"
// suffix the way recipe sites append their name.
func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if idx := strings.LastIndex(title, " - "); idx > 0 {
		title = strings.TrimSpace(title[:idx])
	}
	return title
}

func parseIngredientLine(line string) recipe.Ingredient {
	line = strings.TrimSpace(line)
	if line == "" {
		return recipe.Ingredient{}
	}
	if m := ingredientLine.FindStringSubmatch(line); m != nil {
		return recipe.Ingredient{Amount: m[1], Unit: m[2], Item: strings.TrimSpace(m[3])}
	}
	return recipe.Ingredient{Item: line}
}

func instructionsFromRaw(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	// Either plain strings or HowToStep objects.
	var steps []json.RawMessage
	if err := json.Unmarshal(raw, &steps); err != nil {
		return nil
	}
	out := make([]string, 0, len(steps))
	for _, step := range steps {
		var text string
		if err := json.Unmarshal(step, &text); err != nil {
			var howto struct {
				Text string `json:"text"`
				Name string `json:"name"`
			}
			if err := json.Unmarshal(step, &howto); err != nil {
				continue
			}
			text = howto.Text
			if text == "" {
				text = howto.Name
			}
		}
		if text = strings.TrimSpace(text); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func stringFromRaw(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return strings.TrimSpace(one)
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return strconv.Itoa(int(num))
	}
	if many := stringsFromRaw(raw); len(many) > 0 {
		return many[0]
	}
	return ""
}

func stringsFromRaw(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil && one != "" {
		// Keywords often arrive comma-joined in a single string.
		parts := strings.Split(one, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return nil
}

func imageFromRaw(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return one
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		return many[0]
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.URL
	}
	return ""
}

// minutesFromDuration reads an ISO-8601 duration like "PT1H30M" as
// minutes; a bare number passes through.
func minutesFromDuration(s string) int {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	hours, minutes := 0, 0
	if m := regexp.MustCompile(`(\d+)H`).FindStringSubmatch(s); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	if m := regexp.MustCompile(`(\d+)M`).FindStringSubmatch(s); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}
	return hours*60 + minutes
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}
