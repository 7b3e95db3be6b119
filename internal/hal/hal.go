// Package hal renders HAL+JSON resources with _links and _embedded sections.
package hal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ContentType is the media type of every HAL response.
const ContentType = "application/hal+json;charset=UTF-8"

// Link is a single HAL link object.
type Link struct {
	Href string `json:"href"`
}

// Links maps a relation name to its link.
type Links map[string]Link

// Add sets rel to href and returns l for chaining.
func (l Links) Add(rel, href string) Links {
	l[rel] = Link{Href: href}
	return l
}

// Resource wraps content with links. Object content is flattened so its
// fields sit beside _links; any other JSON value is nested under "content".
type Resource struct {
	Content  interface{}
	Links    Links
	Embedded map[string]interface{}
}

// NewResource returns a resource around content with an empty link set.
func NewResource(content interface{}) *Resource {
	return &Resource{Content: content, Links: Links{}}
}

func (r *Resource) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}

	if r.Content != nil {
		raw, err := json.Marshal(r.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal resource content: %w", err)
		}
		if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
			if err := json.Unmarshal(raw, &fields); err != nil {
				return nil, err
			}
		} else {
			fields["content"] = raw
		}
	}

	if len(r.Embedded) > 0 {
		raw, err := json.Marshal(r.Embedded)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal embedded resources: %w", err)
		}
		fields["_embedded"] = raw
	}

	if len(r.Links) > 0 {
		raw, err := json.Marshal(r.Links)
		if err != nil {
			return nil, err
		}
		fields["_links"] = raw
	}

	return json.Marshal(fields)
}

// PageMetadata describes one page of a paged collection.
type PageMetadata struct {
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
}

// NewPageMetadata computes the page count for total elements split into pages of size.
func NewPageMetadata(size, number int, total int64) PageMetadata {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	return PageMetadata{Size: size, TotalElements: total, TotalPages: pages, Number: number}
}

// PagedResource is a page of embedded resources with navigation links.
type PagedResource struct {
	Embedded map[string]interface{} `json:"_embedded,omitempty"`
	Links    Links                  `json:"_links"`
	Page     PageMetadata           `json:"page"`
}

// BaseURL reconstructs the externally visible scheme://host of r, honoring
// X-Forwarded-Proto and X-Forwarded-Host from a reverse proxy.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := firstHeaderValue(r, "X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	host := r.Host
	if fwd := firstHeaderValue(r, "X-Forwarded-Host"); fwd != "" {
		host = fwd
	}
	return scheme + "://" + host
}

func firstHeaderValue(r *http.Request, name string) string {
	v := r.Header.Get(name)
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
