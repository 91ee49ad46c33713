package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"little-lemon/internal/content"
	"little-lemon/internal/domain/booking"
	"little-lemon/internal/handler/middleware"
	"little-lemon/internal/navigation"
	"little-lemon/internal/usecase"
	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the view registered for one route.
type Page struct {
	Title    string
	Template string
	NavLabel string
}

type navLink struct {
	Label  string
	Path   string
	Active bool
}

type viewData struct {
	Title         string
	Path          string
	Nav           []navLink
	Site          *content.Catalogue
	Booking       *queries.BookingView
	Occasions     []booking.Occasion
	MinGuests     int
	MaxGuests     int
	Message       string
	RequestedPath string
}

// Pages renders every HTML route from one registry.
type Pages struct {
	registry *navigation.Registry[Page]
	tmpl     *template.Template
	content  queries.ContentQueries
	booking  queries.BookingQueries
	cmds     commands.BookingCommands
	logger   *slog.Logger
}

func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

func NewPages(contentQueries queries.ContentQueries, bookingQueries queries.BookingQueries, cmds commands.BookingCommands, logger *slog.Logger) (*Pages, error) {
	tmpl, err := ParseTemplates()
	if err != nil {
		return nil, err
	}

	registry := navigation.NewRegistry[Page]().
		Register(navigation.RouteHome, Page{Title: "Home", Template: "home.html", NavLabel: "Home"}).
		Register(navigation.RouteAbout, Page{Title: "About", Template: "about.html", NavLabel: "About"}).
		Register(navigation.RouteMenu, Page{Title: "Menu", Template: "menu.html", NavLabel: "Menu"}).
		Register(navigation.RouteBooking, Page{Title: "Reservations", Template: "booking.html", NavLabel: "Reservations"}).
		Register(navigation.RouteConfirmed, Page{Title: "Booking Confirmed", Template: "confirmed.html"}).
		Register(navigation.RouteOrder, Page{Title: "Order Online", Template: "stub.html", NavLabel: "Order Online"}).
		Register(navigation.RouteLogin, Page{Title: "Login", Template: "stub.html", NavLabel: "Login"})

	return &Pages{
		registry: registry,
		tmpl:     tmpl,
		content:  contentQueries,
		booking:  bookingQueries,
		cmds:     cmds,
		logger:   logger,
	}, nil
}

func (p *Pages) Paths() []string {
	return p.registry.Paths()
}

// Serve renders the page registered for the request path, or the not found
// view. The visitor's router follows the address bar without adding history.
func (p *Pages) Serve(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.String(http.StatusServiceUnavailable, "Session unavailable")
		return
	}

	path := navigation.Normalize(c.Request.URL.Path)
	sess.Router.Sync(path)

	page, found := p.registry.Resolve(path)
	if !found {
		data := p.viewData(sess, Page{Title: "Not Found"}, path)
		data.RequestedPath = c.Request.URL.Path
		p.render(c, http.StatusNotFound, "notfound.html", data)
		return
	}
	p.render(c, http.StatusOK, page.Template, p.viewData(sess, page, path))
}

// viewData builds the template input for the page shown at current, which is
// not necessarily the router's path: error re-renders after a POST leave the
// route alone.
func (p *Pages) viewData(sess *usecase.Session, page Page, current string) viewData {
	view := p.booking.Snapshot(sess)

	nav := make([]navLink, 0, len(p.registry.Paths()))
	for _, path := range p.registry.Paths() {
		pg, _ := p.registry.Resolve(path)
		if pg.NavLabel == "" {
			continue
		}
		nav = append(nav, navLink{Label: pg.NavLabel, Path: path, Active: path == current})
	}

	return viewData{
		Title:     page.Title,
		Path:      current,
		Nav:       nav,
		Site:      p.content.Catalogue(),
		Booking:   view,
		Occasions: booking.Occasions(),
		MinGuests: booking.MinGuests,
		MaxGuests: booking.MaxGuests,
		Message:   view.Message,
	}
}

func (p *Pages) render(c *gin.Context, status int, name string, data viewData) {
	c.Render(status, render.HTML{Template: p.tmpl, Name: name, Data: data})
}
