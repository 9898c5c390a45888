package mikan

import "net/url"

// imageURL rewrites a scraped poster reference to the canonical image origin.
// Pages reference posters relative to whichever mirror served them; the
// assets themselves live on the original host. When an image proxy is
// configured the canonical URL is wrapped in a proxy query instead.
func (c *Client) imageURL(ref string) string {
	if ref == "" {
		return ""
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}

	// resolve relative refs against the page origin first so only the path
	// survives the origin swap
	resolved := c.baseURL.ResolveReference(parsed)

	canonical := *c.imageBaseURL
	canonical.Path = resolved.Path
	canonical.RawQuery = resolved.RawQuery
	link := canonical.String()

	if c.imageProxy == "" {
		return link
	}
	return c.imageProxy + "?url=" + link
}
