package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bbcenglish/internal/modkit/module"
	"bbcenglish/internal/platform/config"
	perr "bbcenglish/internal/platform/errors"
	phttp "bbcenglish/internal/platform/net/http"
	"bbcenglish/internal/platform/net/middleware"
	fixermod "bbcenglish/internal/services/fixer/module"

	"github.com/go-chi/chi/v5"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Code       perr.ErrorCode  `json:"code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	RequestID  string          `json:"request_id"`
	Data       json.RawMessage `json:"data"`
}

func server(t *testing.T, mutate func(*Options)) http.Handler {
	t.Helper()
	mux := chi.NewRouter()
	mux.Use(middleware.Defaults(5 * time.Second)...)
	opt := OptionsFromConfig(config.New().Prefix("UNSET_"))
	opt.EnableSwagger = true
	if mutate != nil {
		mutate(&opt)
	}
	if err := Mount(phttp.AdaptChi(mux), opt); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return mux
}

func call(t *testing.T, h http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: body is not an envelope: %v\n%s", method, path, err, rec.Body.String())
	}
	return rec.Code, env
}

func TestConvert(t *testing.T) {
	h := server(t, nil)
	body := `{"text":"// Let's optimize the color centering\n/// ` + "```" + `\n// color\n/// ` + "```" + `\nlet color = 1;\n","path":"src/lib.rs"}`

	code, env := call(t, h, http.MethodPost, "/api/v1/convert", body)
	if code != http.StatusOK {
		t.Fatalf("status = %d (%s)", code, env.Error)
	}
	if env.RequestID == "" {
		t.Fatal("request id missing from envelope")
	}
	var out struct {
		Text    string   `json:"text"`
		Changed bool     `json:"changed"`
		Report  []string `json:"report"`
		Changes []struct {
			Line int    `json:"line"`
			From string `json:"from"`
		} `json:"changes"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatal(err)
	}
	want := "// Let's optimise the colour centring\n/// ```\n// color\n/// ```\nlet color = 1;\n"
	if out.Text != want || !out.Changed || len(out.Changes) != 3 {
		t.Fatalf("convert = %+v", out)
	}
	if out.Report[1] != "src/lib.rs:1: -or to -our | 'color' → 'colour'" {
		t.Fatalf("report = %q", out.Report)
	}
}

func TestConvert_Unchanged(t *testing.T) {
	h := server(t, nil)
	code, env := call(t, h, http.MethodPost, "/api/v1/convert", `{"text":"/// license = \"MIT\"\n"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var out struct {
		Changed bool  `json:"changed"`
		Changes []any `json:"changes"`
	}
	_ = json.Unmarshal(env.Data, &out)
	if out.Changed || out.Changes == nil || len(out.Changes) != 0 {
		t.Fatalf("unexpected = %+v (%s)", out, env.Data)
	}
}

func TestConvert_Errors(t *testing.T) {
	h := server(t, func(o *Options) { o.MaxBytes = 64 })

	cases := []struct {
		name, body string
		status     int
		code       perr.ErrorCode
	}{
		{"missing text", `{"path":"a.rs"}`, http.StatusBadRequest, perr.ErrorCodeValidation},
		{"bad json", `{"text":`, http.StatusBadRequest, perr.ErrorCodeJSON},
		{"too large", `{"text":"` + strings.Repeat("color ", 20) + `"}`, http.StatusRequestEntityTooLarge, perr.ErrorCodeTooLarge},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, env := call(t, h, http.MethodPost, "/api/v1/convert", c.body)
			if code != c.status || env.Code != c.code {
				t.Fatalf("got %d/%v want %d/%v (%s)", code, env.Code, c.status, c.code, env.Error)
			}
		})
	}
}

func TestRules(t *testing.T) {
	h := server(t, nil)

	code, env := call(t, h, http.MethodGet, "/api/v1/rules", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	var list struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
		Rules []struct {
			American string `json:"american"`
			Guarded  bool   `json:"guarded"`
		} `json:"rules"`
	}
	_ = json.Unmarshal(env.Data, &list)
	if list.Name != "bbc-english" || list.Count != len(list.Rules) || list.Rules[0].American != "authorization" {
		t.Fatalf("list = %+v", list)
	}

	total := list.Count
	code, env = call(t, h, http.MethodGet, "/api/v1/rules?label=-og+to+-ogue", "")
	list.Rules = nil
	_ = json.Unmarshal(env.Data, &list)
	if code != http.StatusOK || list.Count == 0 || list.Count >= total || list.Count != len(list.Rules) {
		t.Fatalf("filtered list = %d %d of %d", code, list.Count, total)
	}

	code, env = call(t, h, http.MethodGet, "/api/v1/rules/License", "")
	var rule struct {
		British string `json:"british"`
		Guarded bool   `json:"guarded"`
	}
	_ = json.Unmarshal(env.Data, &rule)
	if code != http.StatusOK || rule.British != "Licence" || !rule.Guarded {
		t.Fatalf("lookup = %d %+v", code, rule)
	}

	code, env = call(t, h, http.MethodGet, "/api/v1/rules/colour", "")
	if code != http.StatusNotFound || env.Field != "american" {
		t.Fatalf("missing = %d %+v", code, env)
	}
}

func TestMeta(t *testing.T) {
	h := server(t, nil)
	code, env := call(t, h, http.MethodGet, "/api/v1/meta/service", "")
	var svc struct {
		Name string `json:"name"`
		Pack struct {
			Rules      int `json:"rules"`
			Heuristics int `json:"heuristics"`
		} `json:"pack"`
	}
	_ = json.Unmarshal(env.Data, &svc)
	if code != http.StatusOK || svc.Name != "bbcenglish-api" || svc.Pack.Heuristics != 6 || svc.Pack.Rules == 0 {
		t.Fatalf("service = %d %+v", code, svc)
	}

	for _, p := range []string{"/api/v1/meta/health", "/api/v1/meta/version"} {
		if code, _ := call(t, h, http.MethodGet, p, ""); code != http.StatusOK {
			t.Fatalf("%s = %d", p, code)
		}
	}
}

func TestMount_RegistersPortsAndDocs(t *testing.T) {
	module.Reset()
	t.Cleanup(module.Reset)
	h := server(t, nil)

	if _, ok := module.PortsAs[fixermod.Ports]("fixer"); !ok {
		t.Fatal("fixer ports not registered")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/rules/{american}") {
		t.Fatalf("docs = %d", rec.Code)
	}
}

func TestMount_BadRulePack(t *testing.T) {
	mux := chi.NewRouter()
	opt := OptionsFromConfig(config.New().Prefix("UNSET_"))
	opt.Fixer.RulesPath = "/nonexistent/rules.json"
	if err := Mount(phttp.AdaptChi(mux), opt); perr.CodeOf(err) != perr.ErrorCodeIO {
		t.Fatalf("err = %v", err)
	}
}
