// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"slices"

	"github.com/leanttro/leanttro-web/internal/logger"
	"github.com/leanttro/leanttro-web/internal/session"
	"github.com/leanttro/leanttro-web/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names, one per file under templates/.
const (
	pageIndex              = "index.html"
	pageSOS                = "sos.html"
	pageCourierSignup      = "cadastro.html"
	pageCourierLogin       = "login.html"
	pageCourierForgot      = "esqueceu_senha.html"
	pageCourierReset       = "redefinir_senha.html"
	pageCourierPanel       = "painel.html"
	pageStoreSignup        = "criar_loja.html"
	pageStorefront         = "loja.html"
	pageStoreAdminLogin    = "loja_admin.html"
	pageStoreDashboard     = "loja_painel.html"
	pageStoreForgot        = "loja_recuperar_senha.html"
	pageStoreReset         = "loja_nova_senha.html"
	pageNotFound           = "404.html"
	layoutTemplate         = "layout.html"
	layoutTemplateEntrance = "layout"
)

var pageNames = []string{
	pageIndex,
	pageSOS,
	pageCourierSignup,
	pageCourierLogin,
	pageCourierForgot,
	pageCourierReset,
	pageCourierPanel,
	pageStoreSignup,
	pageStorefront,
	pageStoreAdminLogin,
	pageStoreDashboard,
	pageStoreForgot,
	pageStoreReset,
	pageNotFound,
}

// pageData is the root value every template is executed with.
type pageData struct {
	Flashes []models.Flash
	Data    any
}

// pages holds one parsed template set per page, each sharing the layout.
type pages struct {
	byName map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"has": slices.Contains[[]string],
}

func parsePages() (*pages, error) {
	p := &pages{byName: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(templateFuncs).
			ParseFS(templatesFS, "templates/"+layoutTemplate, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		p.byName[name] = t
	}
	return p, nil
}

// mustParsePages panics on a broken embedded template: the binary cannot
// serve anything useful without them.
func mustParsePages() *pages {
	p, err := parsePages()
	if err != nil {
		panic(err)
	}
	return p
}

// render pops the pending flash messages, persists the session and writes
// the page. The page is executed into a buffer first so that a template
// failure still produces a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	log := logger.FromRequest(r)

	t, ok := h.pages.byName[name]
	if !ok {
		log.Error().Str("func", "*Handler.render").Str("page", name).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	sess := session.FromContext(r.Context())
	root := pageData{Flashes: sess.PopFlashes(), Data: data}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutTemplateEntrance, root); err != nil {
		log.Err(err).Str("func", "*Handler.render").Str("page", name).Msg("error executing template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.commitSession(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// redirect persists the session and answers with 302 Found.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, url string) {
	h.commitSession(w, r)
	http.Redirect(w, r, url, http.StatusFound)
}

// commitSession writes the session cookie when the session changed during
// the request.
func (h *Handler) commitSession(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if !sess.Modified() {
		return
	}
	if err := h.sessions.Save(w, r, sess); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.commitSession").Msg("error saving session")
	}
}

func flash(r *http.Request, category, message string) {
	session.FromContext(r.Context()).AddFlash(category, message)
}
