package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Se02246/OrderMaster/internal/domain/apartment"
	"github.com/Se02246/OrderMaster/internal/domain/employee"
	"github.com/Se02246/OrderMaster/internal/domain/stats"
	"github.com/Se02246/OrderMaster/internal/form"
	"github.com/Se02246/OrderMaster/internal/handler/http/middleware"
	"github.com/Se02246/OrderMaster/internal/query"
	"github.com/Se02246/OrderMaster/internal/view"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageHandler renders the server-side pages: the statistics dashboard, the
// apartment board with its editing form, and the employee cards.
type PageHandler struct {
	apartmentService apartment.ApartmentService
	employeeService  employee.EmployeeService
	statsService     stats.StatsService
	caches           *query.Store
	sessions         *form.Sessions
	defaultMonths    int
	inlineCreate     bool
	templates        *template.Template
	logger           *slog.Logger
}

func NewPageHandler(
	apartmentService apartment.ApartmentService,
	employeeService employee.EmployeeService,
	statsService stats.StatsService,
	caches *query.Store,
	sessions *form.Sessions,
	defaultMonths int,
	inlineCreate bool,
) *PageHandler {
	funcs := template.FuncMap{
		"formatMonth":       view.FormatMonth,
		"formatDay":         view.FormatDay,
		"pluralOrders":      view.PluralizeOrders,
		"pluralAssignments": view.PluralizeAssignments,
		"pluralEmployees":   view.PluralizeEmployees,
		"statusColor":       view.StatusColor,
		"paymentColor":      view.PaymentColor,
		"str":               deref,
	}

	return &PageHandler{
		apartmentService: apartmentService,
		employeeService:  employeeService,
		statsService:     statsService,
		caches:           caches,
		sessions:         sessions,
		defaultMonths:    defaultMonths,
		inlineCreate:     inlineCreate,
		templates:        template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
		logger:           slog.With("component", "web"),
	}
}

// Routes wires every page and form action onto one sub-router.
func (h *PageHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Dashboard)

	r.Get("/apartments", h.Apartments)
	r.Get("/apartments/new", h.NewApartment)
	r.Get("/apartments/{id}/edit", h.EditApartment)
	r.Post("/apartments/{id}/delete", h.DeleteApartment)
	r.Post("/forms/{sessionID}", h.SubmitApartmentForm)
	r.With(middleware.FeatureEnabled(h.inlineCreate)).
		Post("/forms/{sessionID}/employees", h.InlineCreateEmployee)

	r.Get("/employees", h.Employees)
	r.Post("/employees", h.CreateEmployee)
	r.Post("/employees/{id}/delete", h.DeleteEmployee)

	return r
}

// page carries the fields shared by every template.
type page struct {
	Title  string
	Active string
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("Failed to render template", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func monthsParam(r *http.Request) int {
	months := 0
	if m := r.URL.Query().Get("months"); m != "" {
		if parsed, err := strconv.Atoi(m); err == nil {
			months = parsed
		}
	}
	return months
}
