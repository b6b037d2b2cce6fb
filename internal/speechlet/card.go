package speechlet

import "strings"

// Card is a visual payload shown in the companion app.
type Card interface {
	cardPayload() map[string]any
}

// SimpleCard is a title plus text content.
type SimpleCard struct {
	Title   string
	Content string
}

func (c SimpleCard) cardPayload() map[string]any {
	return map[string]any{
		"type":    "Simple",
		"title":   c.Title,
		"content": c.Content,
	}
}

// StandardCard is a SimpleCard with an optional image. The platform rejects
// plain http image URLs, so they are upgraded to https.
type StandardCard struct {
	Title         string
	Content       string
	SmallImageURL string
	LargeImageURL string
}

func (c StandardCard) cardPayload() map[string]any {
	card := map[string]any{
		"type":  "Standard",
		"title": c.Title,
		"text":  c.Content,
	}

	image := map[string]any{}
	if c.SmallImageURL != "" {
		image["smallImageUrl"] = upgradeToHTTPS(c.SmallImageURL)
	}

	if c.LargeImageURL != "" {
		image["largeImageUrl"] = upgradeToHTTPS(c.LargeImageURL)
	}

	if len(image) > 0 {
		card["image"] = image
	}

	return card
}

// upgradeToHTTPS rewrites http URLs to https; anything else passes through.
func upgradeToHTTPS(url string) string {
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}

	return url
}
