// Package http serves the rule table
package http

import (
	"net/http"

	"bbcenglish/internal/core/rulepack"
	"bbcenglish/internal/modkit/httpkit"
	perr "bbcenglish/internal/platform/errors"

	"bbcenglish/internal/services/api/rules/domain"
)

type handlers struct {
	pack *rulepack.Pack
	all  domain.RulesResponse
}

// Register mounts the rules routes
func Register(r httpkit.Router, pack *rulepack.Pack) {
	h := &handlers{pack: pack, all: domain.FromPack(pack, "")}
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{american}", h.lookup)
}

// @Summary List the expanded rule table in application order
// @Tags Rules
// @Produce json
// @Param label query string false "only rules with this label, e.g. -or to -our"
// @Success 200 {object} domain.RulesResponse
// @Router /rules [get]
func (h *handlers) list(r *http.Request) (any, error) {
	if label := r.URL.Query().Get("label"); label != "" {
		return domain.FromPack(h.pack, label), nil
	}
	return h.all, nil
}

// @Summary Look up the rule for one case-sensitive American word
// @Tags Rules
// @Produce json
// @Param american path string true "American spelling" example(Color)
// @Success 200 {object} domain.Rule
// @Failure 404 {object} httpkit.Envelope
// @Router /rules/{american} [get]
func (h *handlers) lookup(r *http.Request) (any, error) {
	word := httpkit.Param(r, "american")
	rule, ok := h.pack.Lookup(word)
	if !ok {
		return nil, perr.WithField(perr.NotFoundf("no rule converts %q", word), "american")
	}
	return domain.FromRule(rule), nil
}
