package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/EpicMandM/laptop-desk/internal/config"
	"github.com/EpicMandM/laptop-desk/internal/logger"
	"github.com/EpicMandM/laptop-desk/internal/views"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"index", "laptops", "onboard", "recommend", "offboard", "reserve"}

// pageData is what every page template receives.
type pageData struct {
	Title   string
	Heading string
	Roles   []string
	Form    any
}

type roleInput struct {
	Value string
	Roles []string
}

var funcs = template.FuncMap{
	"roleField": func(value string, roles []string) roleInput {
		return roleInput{Value: value, Roles: roles}
	},
}

// PageHandler renders the desk pages and runs form submissions.
type PageHandler struct {
	views  *views.Views
	ui     *config.UIConfig
	pages  map[string]*template.Template
	logger *logger.Logger
}

func NewPageHandler(v *views.Views, ui *config.UIConfig, log *logger.Logger) (*PageHandler, error) {
	if ui == nil {
		ui = config.DefaultUIConfig()
	}
	if log == nil {
		log = logger.Discard()
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &PageHandler{
		views:  v,
		ui:     ui,
		pages:  pages,
		logger: log,
	}, nil
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index", "Home", nil)
}

// Laptops handles GET /laptops. The list is fetched once per render.
func (h *PageHandler) Laptops(w http.ResponseWriter, r *http.Request) {
	h.render(w, "laptops", "Laptops", h.views.Laptops(r.Context()))
}

// OnboardForm handles GET /onboard
func (h *PageHandler) OnboardForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "onboard", "Onboard Employee", &views.OnboardingForm{})
}

// Onboard handles POST /onboard
func (h *PageHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	form := views.OnboardingFromValues(r.PostForm)
	h.views.Onboard(r.Context(), form)
	h.render(w, "onboard", "Onboard Employee", form)
}

// RecommendForm handles GET /recommend
func (h *PageHandler) RecommendForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "recommend", "Get Laptop Recommendation", &views.RecommendationForm{})
}

// Recommend handles POST /recommend
func (h *PageHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	form := views.RecommendationFromValues(r.PostForm)
	h.views.Recommend(r.Context(), form)
	h.render(w, "recommend", "Get Laptop Recommendation", form)
}

// OffboardForm handles GET /offboard
func (h *PageHandler) OffboardForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "offboard", "Offboard Employee", &views.OffboardingForm{})
}

// Offboard handles POST /offboard
func (h *PageHandler) Offboard(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	form := views.OffboardingFromValues(r.PostForm)
	h.views.Offboard(r.Context(), form)
	h.render(w, "offboard", "Offboard Employee", form)
}

// ReserveForm handles GET /reserve
func (h *PageHandler) ReserveForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "reserve", "Laptop Reservations", &views.ReservationForm{})
}

// Reserve handles POST /reserve. The action field picks between reserving
// and checking; anything but "check" reserves.
func (h *PageHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	form := views.ReservationFromValues(r.PostForm)
	if r.PostForm.Get("action") == "check" {
		h.views.CheckReservation(r.Context(), form)
	} else {
		h.views.Reserve(r.Context(), form)
	}
	h.render(w, "reserve", "Laptop Reservations", form)
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *PageHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("Failed to parse form", logger.Path(r.URL.Path), logger.Error(err))
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *PageHandler) render(w http.ResponseWriter, name, heading string, form any) {
	tmpl, ok := h.pages[name]
	if !ok {
		h.logger.Error("Unknown page", logger.F("PAGE", name))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	data := pageData{
		Title:   h.ui.Title,
		Heading: heading,
		Roles:   h.ui.Roles,
		Form:    form,
	}
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("Failed to render page", logger.F("PAGE", name), logger.Error(err))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("Failed to write page", logger.F("PAGE", name), logger.Error(err))
	}
}
