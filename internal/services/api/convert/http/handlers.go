// Package http exposes the line rewriter over JSON
package http

import (
	"net/http"

	"bbcenglish/internal/core/rewrite"
	"bbcenglish/internal/modkit/httpkit"
	"bbcenglish/internal/platform/logger"
	str "bbcenglish/internal/platform/strings"

	"bbcenglish/internal/services/api/convert/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Converter domain.ConverterPort
	MaxBytes  int64
}

type handlers struct {
	deps Deps
}

// Register mounts the convert routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.PostJSON(r, "/", h.convert, d.MaxBytes)
}

// @Summary Rewrite American spellings in the comment lines of a document
// @Tags Convert
// @Accept json
// @Produce json
// @Param body body domain.ConvertRequest true "document"
// @Success 200 {object} domain.ConvertResponse
// @Router /convert [post]
func (h *handlers) convert(r *http.Request, in domain.ConvertRequest) (any, error) {
	path := str.Or(in.Path, domain.DefaultPath)
	res := h.deps.Converter.Convert(path, in.Text)

	out := domain.ConvertResponse{
		Text:    res.Text,
		Changed: res.Changed(),
		Changes: res.Changes,
		Report:  make([]string, 0, len(res.Changes)),
	}
	if out.Changes == nil {
		out.Changes = []rewrite.Change{}
	}
	for _, c := range res.Changes {
		out.Report = append(out.Report, c.String())
	}

	logger.C(r.Context()).Debug().
		Str("path", path).
		Int("bytes", len(in.Text)).
		Int("changes", len(res.Changes)).
		Msg("converted")
	return out, nil
}
