// Package content holds the static copy of the roadmap page.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"ai-roadmap/internal/shared/util"
)

//go:embed content.yaml
var embedded []byte

var ErrInvalidContent = errors.New("invalid page content")

type Hero struct {
	Badge      string   `yaml:"badge"`
	Title      string   `yaml:"title"`
	Lede       string   `yaml:"lede"`
	Highlights []string `yaml:"highlights"`
}

// Phase is one step of the three-step roadmap.
type Phase struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Bullets     []string `yaml:"bullets"`
	Deliverable string   `yaml:"deliverable"`
}

type Layer struct {
	Name    string   `yaml:"name"`
	Details string   `yaml:"details"`
	Stack   []string `yaml:"stack"`
}

type Architecture struct {
	Title  string  `yaml:"title"`
	Intro  string  `yaml:"intro"`
	Layers []Layer `yaml:"layers"`
}

// List is a titled list of plain lines (KPIs, team).
type List struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// Planner is the copy around the interactive recommendation form.
type Planner struct {
	Eyebrow string `yaml:"eyebrow"`
	Title   string `yaml:"title"`
	Intro   string `yaml:"intro"`
	Submit  string `yaml:"submit"`
}

type Resource struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
}

type Resources struct {
	Title   string     `yaml:"title"`
	Tagline string     `yaml:"tagline"`
	Items   []Resource `yaml:"items"`
}

type Question struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type FAQ struct {
	Title string     `yaml:"title"`
	Items []Question `yaml:"items"`
}

type Footer struct {
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	CTALabel string `yaml:"ctaLabel"`
	CTALink  string `yaml:"ctaLink"`
}

// Page is every static section of the roadmap page.
type Page struct {
	Hero         Hero         `yaml:"hero"`
	Phases       []Phase      `yaml:"phases"`
	Architecture Architecture `yaml:"architecture"`
	KPIs         List         `yaml:"kpis"`
	Team         List         `yaml:"team"`
	Planner      Planner      `yaml:"planner"`
	Resources    Resources    `yaml:"resources"`
	FAQ          FAQ          `yaml:"faq"`
	Footer       Footer       `yaml:"footer"`
}

// Load parses the embedded page content.
func Load() (Page, error) {
	return Parse(embedded)
}

// Parse decodes and validates page content. Unknown keys are rejected.
func Parse(data []byte) (Page, error) {
	var p Page
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Page{}, fmt.Errorf("decode content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Page{}, err
	}
	return p, nil
}

// Digest is a stable fingerprint of the page copy.
func (p Page) Digest() string {
	out, err := yaml.Marshal(p)
	if err != nil {
		panic(fmt.Sprintf("content: marshal page: %v", err))
	}
	return util.HashKey(string(out))
}

// Validate checks the invariants the page templates rely on.
func (p Page) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Hero.Title) == "" {
		errs = append(errs, errors.New("hero title is empty"))
	}
	if len(p.Phases) == 0 {
		errs = append(errs, errors.New("no phases"))
	}
	for i, ph := range p.Phases {
		if strings.TrimSpace(ph.Title) == "" {
			errs = append(errs, fmt.Errorf("phase %d: empty title", i))
		}
		if len(ph.Bullets) == 0 {
			errs = append(errs, fmt.Errorf("phase %q: no bullets", ph.Title))
		}
	}
	for _, l := range p.Architecture.Layers {
		if strings.TrimSpace(l.Name) == "" {
			errs = append(errs, errors.New("architecture layer with empty name"))
		}
	}
	for _, r := range p.Resources.Items {
		if !absoluteHTTP(r.Link) {
			errs = append(errs, fmt.Errorf("resource %q: link %q is not an absolute http(s) URL", r.Title, r.Link))
		}
	}
	for _, q := range p.FAQ.Items {
		if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.Answer) == "" {
			errs = append(errs, errors.New("faq entry with empty question or answer"))
		}
	}
	if p.Footer.CTALink != "" && !absoluteHTTP(p.Footer.CTALink) {
		errs = append(errs, fmt.Errorf("footer link %q is not an absolute http(s) URL", p.Footer.CTALink))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(errs...))
	}
	return nil
}

// SectionCount is the number of top-level sections with content, reported by the health check.
func (p Page) SectionCount() int {
	n := 0
	if p.Hero.Title != "" {
		n++
	}
	if len(p.Phases) > 0 {
		n++
	}
	if len(p.Architecture.Layers) > 0 {
		n++
	}
	if len(p.KPIs.Items) > 0 {
		n++
	}
	if len(p.Team.Items) > 0 {
		n++
	}
	if p.Planner.Title != "" {
		n++
	}
	if len(p.Resources.Items) > 0 {
		n++
	}
	if len(p.FAQ.Items) > 0 {
		n++
	}
	if p.Footer.Title != "" {
		n++
	}
	return n
}

func absoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
