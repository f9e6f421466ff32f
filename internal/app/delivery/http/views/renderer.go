package views

import (
	"bytes"
	"clinic-portal/internal/pkg/constvars"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/Masterminds/sprig/v3"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageHome        = "home.html"
	PageLogin       = "login.html"
	PageDashboard   = "dashboard.html"
	PagePatientForm = "patient_form.html"
)

const layoutTemplate = "templates/layout.html"

var pages = []string{PageHome, PageLogin, PageDashboard, PagePatientForm}

// Page is the data every template receives. State carries the view state.
type Page struct {
	Title   string
	Session SessionSummary
	State   interface{}
}

type SessionSummary struct {
	Authenticated bool
	Username      string
}

// DashboardPage combines the dashboard state with the embedded patient list.
type DashboardPage struct {
	Dashboard DashboardState
	List      PatientListState
}

type Renderer struct {
	templates map[string]*template.Template
	log       *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New("layout.html").
			Funcs(templateFuncs()).
			ParseFS(templateFS, layoutTemplate, "templates/"+page)
		if err != nil {
			return nil, err
		}
		templates[page] = tmpl
	}

	return &Renderer{
		templates: templates,
		log:       logger,
	}, nil
}

func templateFuncs() template.FuncMap {
	funcs := sprig.FuncMap()
	// patientPath takes both the route parameter and models.PatientID.
	funcs["patientPath"] = func(patientID interface{}) string {
		return constvars.RoutePatient + "/" + url.PathEscape(fmt.Sprint(patientID))
	}
	return funcs
}

// Render writes nothing when the template fails, so the caller can still
// answer with an error page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) error {
	tmpl, found := r.templates[page]
	if !found {
		return errUnknownPage(page)
	}

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "layout", data)
	if err != nil {
		r.log.Error("Renderer.Render error executing template",
			zap.String(constvars.LoggingViewKey, page),
			zap.Error(err),
		)
		return err
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}
