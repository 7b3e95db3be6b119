// Package docs serves the API guide. The guide content lives in
// resources.yaml; section ids double as the fragments of HAL profile links.
package docs

import (
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var resourcesYAML []byte

//go:embed index.html.tmpl
var indexTemplate string

type Guide struct {
	Title    string    `yaml:"title" json:"title"`
	Sections []Section `yaml:"sections" json:"sections"`
}

type Section struct {
	ID             string   `yaml:"id" json:"id"`
	Title          string   `yaml:"title" json:"title"`
	Method         string   `yaml:"method,omitempty" json:"method,omitempty"`
	Path           string   `yaml:"path,omitempty" json:"path,omitempty"`
	Description    string   `yaml:"description" json:"description"`
	RequestFields  []Field  `yaml:"request_fields,omitempty" json:"requestFields,omitempty"`
	ResponseFields []Field  `yaml:"response_fields,omitempty" json:"responseFields,omitempty"`
	Links          []Link   `yaml:"links,omitempty" json:"links,omitempty"`
	Status         []Status `yaml:"status,omitempty" json:"status,omitempty"`
}

type Field struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
	Optional    bool   `yaml:"optional,omitempty" json:"optional,omitempty"`
}

type Link struct {
	Rel         string `yaml:"rel" json:"rel"`
	Description string `yaml:"description" json:"description"`
}

type Status struct {
	Code        int    `yaml:"code" json:"code"`
	Description string `yaml:"description" json:"description"`
}

// Section returns the section with id, if any.
func (g *Guide) Section(id string) (Section, bool) {
	for _, s := range g.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Load parses the embedded guide.
func Load() (*Guide, error) {
	return parse(resourcesYAML)
}

func parse(data []byte) (*Guide, error) {
	var g Guide
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse api guide: %w", err)
	}

	seen := make(map[string]struct{}, len(g.Sections))
	for _, s := range g.Sections {
		if s.ID == "" {
			return nil, fmt.Errorf("api guide section %q has no id", s.Title)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("duplicate api guide section id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return &g, nil
}

// Handler serves the guide as HTML and as JSON.
type Handler struct {
	guide *Guide
	tmpl  *template.Template
}

func NewHandler(guide *Guide) (*Handler, error) {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse docs template: %w", err)
	}
	return &Handler{guide: guide, tmpl: tmpl}, nil
}

// RegisterRoutes registers the docs routes. They never require authentication.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	r.GET("/docs/index.html", h.IndexHandler)
	r.GET("/docs/resources", h.ResourcesHandler)
}

func (h *Handler) IndexHandler(c *gin.Context) {
	c.Render(http.StatusOK, render.HTML{Template: h.tmpl, Name: "index", Data: h.guide})
}

func (h *Handler) ResourcesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.guide)
}
