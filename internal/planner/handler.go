package planner

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"ai-roadmap/internal/content"
	"ai-roadmap/internal/roadmap"
	"ai-roadmap/internal/shared/metrics"
	"ai-roadmap/internal/shared/server/middleware"
	"ai-roadmap/internal/shared/server/respond"
	"ai-roadmap/internal/shared/telemetry"
	"ai-roadmap/internal/shared/util"
	"ai-roadmap/internal/web/components"
)

const (
	channelPage = "page"
	channelAPI  = "api"
)

// Handler serves the roadmap page and the summary API.
type Handler struct {
	Page             content.Page
	Options          roadmap.Options
	SiteTitle        string
	DefaultObjective string

	// version changes whenever the page copy, the labels or the advice tables change.
	version string
}

// NewHandler constructs a Handler. An empty default objective falls back to roadmap.DefaultObjective.
func NewHandler(page content.Page, siteTitle, defaultObjective string) *Handler {
	if defaultObjective == "" {
		defaultObjective = roadmap.DefaultObjective
	}
	opts := roadmap.AllOptions()
	opts.Default = opts.Default.WithObjective(defaultObjective)
	return &Handler{
		Page:             page,
		Options:          opts,
		SiteTitle:        siteTitle,
		DefaultObjective: defaultObjective,
		version:          catalogVersion(page, opts),
	}
}

// catalogVersion digests everything a response can show besides the selection itself.
func catalogVersion(page content.Page, opts roadmap.Options) string {
	parts := []string{page.Digest()}
	for _, field := range roadmap.Fields() {
		for _, o := range opts.For(field) {
			parts = append(parts, o.Value, o.Label)
		}
	}
	parts = append(parts, opts.Default.Objective)
	for _, stage := range roadmap.Stages() {
		for _, data := range roadmap.DataSources() {
			for _, exp := range roadmap.Experiences() {
				for _, budget := range roadmap.Budgets() {
					s := roadmap.Resolve(stage, data, exp, budget)
					parts = append(parts, s.Headline, strconv.Itoa(s.Timeline.SprintCount), s.Timeline.Focus)
					for _, b := range s.Blocks {
						parts = append(parts, b.Title)
						parts = append(parts, b.Items...)
					}
				}
			}
		}
	}
	return util.HashKey(parts...)
}

// RegisterPageRoutes attaches the HTML page.
func (h *Handler) RegisterPageRoutes(r gin.IRoutes) {
	r.GET("/", h.renderPage)
}

// RegisterRoutes attaches the JSON API to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/roadmap/options", h.getOptions)
	rg.GET("/roadmap/summary", h.getSummary)
	rg.POST("/roadmap/summary", h.postSummary)
}

func (h *Handler) defaultSelection() roadmap.Selection {
	return h.Options.Default
}

func (h *Handler) renderPage(c *gin.Context) {
	sel, ok := h.bindQuery(c)
	if !ok {
		return
	}
	c.Set(middleware.SelectionKey, enumKey(sel))

	etag := util.ETag(append([]string{h.version, h.SiteTitle}, selectionKey(sel)...)...)
	if notModified(c, etag) {
		return
	}
	metrics.IncSummaryResolved(string(sel.Stage), channelPage)

	page := components.Layout(
		components.PageConfig{Title: h.SiteTitle, Description: h.Page.Hero.Lede},
		components.Hero(h.Page.Hero),
		components.Phases(h.Page.Phases),
		components.Architecture(h.Page.Architecture, h.Page.KPIs, h.Page.Team),
		components.Planner(components.PlannerView{
			Copy:      h.Page.Planner,
			Options:   h.Options,
			Selection: sel,
			Summary:   sel.Summary(),
		}),
		components.Resources(h.Page.Resources),
		components.FAQ(h.Page.FAQ),
		components.PageFooter(h.Page.Footer),
	)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := page.Render(c.Writer); err != nil {
		telemetry.Error("page.render_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"error":      err.Error(),
		})
		return
	}
	metrics.IncPageRender()
}

func (h *Handler) getOptions(c *gin.Context) {
	respond.Negotiated(c, http.StatusOK, h.Options)
}

func (h *Handler) getSummary(c *gin.Context) {
	sel, ok := h.bindQuery(c)
	if !ok {
		return
	}
	h.writeSummary(c, sel)
}

func (h *Handler) postSummary(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalid(c, err)
		return
	}
	sel, err := req.selection(h.defaultSelection())
	if err != nil {
		h.invalid(c, err)
		return
	}
	h.writeSummary(c, sel)
}

func (h *Handler) writeSummary(c *gin.Context, sel roadmap.Selection) {
	c.Set(middleware.SelectionKey, enumKey(sel))
	etag := util.ETag(append([]string{h.version}, selectionKey(sel)...)...)
	if notModified(c, etag) {
		return
	}
	metrics.IncSummaryResolved(string(sel.Stage), channelAPI)
	respond.Negotiated(c, http.StatusOK, summaryResponse{
		Selection: sel,
		Summary:   sel.Summary(),
	})
}

func (h *Handler) bindQuery(c *gin.Context) (roadmap.Selection, bool) {
	var req SelectionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.invalid(c, err)
		return roadmap.Selection{}, false
	}
	sel, err := req.selection(h.defaultSelection())
	if err != nil {
		h.invalid(c, err)
		return roadmap.Selection{}, false
	}
	return sel, true
}

func (h *Handler) invalid(c *gin.Context, err error) {
	code := "invalid_request"
	var verrs validator.ValidationErrors
	if errors.Is(err, roadmap.ErrInvalidValue) || errors.As(err, &verrs) {
		code = "invalid_selection"
	}
	respond.Error(c, http.StatusBadRequest, code, "invalid selection", gin.H{"reason": err.Error()})
}

func enumKey(sel roadmap.Selection) string {
	return string(sel.Stage) + "/" + string(sel.DataSource) + "/" + string(sel.Experience) + "/" + string(sel.Budget)
}

// selectionKey is the full tuple, objective included, used for cache validation.
func selectionKey(sel roadmap.Selection) []string {
	return []string{string(sel.Stage), string(sel.DataSource), string(sel.Experience), string(sel.Budget), sel.Objective}
}

func notModified(c *gin.Context, etag string) bool {
	c.Header("ETag", etag)
	if !etagMatches(c.GetHeader("If-None-Match"), etag) {
		return false
	}
	c.Status(http.StatusNotModified)
	c.Abort()
	return true
}

// etagMatches applies the weak comparison If-None-Match calls for.
func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
