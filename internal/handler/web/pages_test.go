//go:build unit

package web_test

import (
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"little-lemon/internal/content"
	"little-lemon/internal/domain/availability"
	"little-lemon/internal/handler/middleware"
	"little-lemon/internal/handler/web"
	"little-lemon/internal/infra/placeholder"
	"little-lemon/internal/pkg/clock"
	"little-lemon/internal/pkg/config"
	"little-lemon/internal/pkg/cookie"
	"little-lemon/internal/usecase"
	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"
	"little-lemon/tests/common/builder"
	"little-lemon/tests/common/httptest"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type PagesTestSuite struct {
	suite.Suite
	router            *gin.Engine
	store             *usecase.SessionStore
	sessionMiddleware gin.HandlerFunc
	cookies           []*http.Cookie
}

func (s *PagesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.NewTestConfig()
	cfg.Booking.TimeZone = "UTC"

	clk := clock.NewMockClock(time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC))
	provider := availability.NewSeededProvider()
	s.store = usecase.NewSessionStore(cfg, provider, placeholder.NewSubmitter(logger), clk, logger)

	codec, _, err := cookie.NewSessionCodec(cfg.Session)
	s.Require().NoError(err)

	catalogue, err := content.Default()
	s.Require().NoError(err)

	pages, err := web.NewPages(queries.NewContentQueries(catalogue), queries.NewBookingQueries(provider, cfg),
		commands.NewBookingCommands(logger), logger)
	s.Require().NoError(err)

	s.sessionMiddleware = middleware.NewSessionMiddleware(codec, s.store, logger).Attach()
	s.router = gin.New()
	s.router.Use(s.sessionMiddleware)
	for _, path := range pages.Paths() {
		s.router.GET(path, pages.Serve)
	}
	s.router.POST("/booking", pages.Submit)
	s.router.POST("/booking/date", pages.ChangeDate)
	s.router.POST("/booking/new", pages.NewBooking)
	s.router.NoRoute(pages.Serve)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.cookies = httptest.ExtractCookies(rec)
	s.Require().NotEmpty(s.cookies, "first visit issues a session cookie")
}

func TestPagesSuite(t *testing.T) {
	suite.Run(t, new(PagesTestSuite))
}

func (s *PagesTestSuite) get(path string) (*nethttptest.ResponseRecorder, *goquery.Document) {
	rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, path, nil, s.cookies)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	s.Require().NoError(err)
	return rec, doc
}

func (s *PagesTestSuite) post(path string, values url.Values) (*nethttptest.ResponseRecorder, *goquery.Document) {
	rec := httptest.PerformForm(s.T(), s.router, path, values, s.cookies)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	s.Require().NoError(err)
	return rec, doc
}

func optionValues(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector + " option").Each(func(_ int, sel *goquery.Selection) {
		out = append(out, sel.AttrOr("value", ""))
	})
	return out
}

func (s *PagesTestSuite) TestHome() {
	rec, doc := s.get("/")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Little Lemon", doc.Find("#hero h1").Text())
	s.Equal(3, doc.Find("#specials .special").Length())
	s.Equal("$12.99", doc.Find(".special-price").First().Text())
	s.Equal("Home", doc.Find("header nav a.active").Text())
	s.Equal("/booking", doc.Find("#hero a.cta").AttrOr("href", ""))

	first := doc.Find("#testimonials .testimonial").First()
	s.Equal(5, first.Find(".star").Length())
	s.Contains(doc.Find("#contact .phone").Text(), "(312) 555-1234")
}

func (s *PagesTestSuite) TestStaticPages() {
	testCases := []struct {
		path    string
		heading string
		active  string
	}{
		{path: "/about", heading: "Little Lemon Chicago", active: "About"},
		{path: "/menu", heading: "Menu", active: "Menu"},
		{path: "/order", heading: "Order Online (Coming Soon)", active: "Order Online"},
		{path: "/login", heading: "Login (Coming Soon)", active: "Login"},
	}

	for _, tc := range testCases {
		s.Run(tc.path, func() {
			rec, doc := s.get(tc.path)
			s.Equal(http.StatusOK, rec.Code)
			s.Equal(tc.heading, strings.TrimSpace(doc.Find("main h1").First().Text()))
			s.Equal(tc.active, doc.Find("header nav a.active").Text())
		})
	}
}

func (s *PagesTestSuite) TestNotFound() {
	rec, doc := s.get("/nonexistent")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(doc.Find("#not-found").Text(), "/nonexistent")
	s.Equal(0, doc.Find("header nav a.active").Length())
}

func (s *PagesTestSuite) TestAddressBarDoesNotGrowHistory() {
	s.get("/menu")
	s.get("/about")

	sess := s.onlySession()
	s.Equal("/about", sess.Router.Path())
	s.Empty(sess.Router.History())
}

func (s *PagesTestSuite) TestBookingPageStartsWithTodaysTimes() {
	rec, doc := s.get("/booking")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal([]string{"", "17:00", "17:30", "20:30", "22:30"}, optionValues(doc, "select#res-time"))
	s.Equal("1", doc.Find("input#guests").AttrOr("value", ""))
	s.Equal("Birthday", doc.Find("select#occasion option[selected]").AttrOr("value", ""))

	_, disabled := doc.Find("button#submit-reservation").Attr("disabled")
	s.True(disabled, "incomplete form cannot be submitted")
}

func (s *PagesTestSuite) TestChangeDateKeepsOtherFields() {
	values := url.Values{"date": {"2026-10-01"}, "time": {""}, "guests": {"4"}, "occasion": {"Anniversary"}}
	rec, _ := s.post("/booking/date", values)

	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/booking", rec.Header().Get("Location"))

	_, doc := s.get("/booking")
	s.Equal([]string{"", "17:00", "17:30", "18:00", "20:00", "21:00", "23:30"}, optionValues(doc, "select#res-time"))
	s.Equal("2026-10-01", doc.Find("input#res-date").AttrOr("value", ""))
	s.Equal("4", doc.Find("input#guests").AttrOr("value", ""))
	s.Equal("Anniversary", doc.Find("select#occasion option[selected]").AttrOr("value", ""))
}

func (s *PagesTestSuite) TestChangeDateRejectsMalformedDate() {
	rec, doc := s.post("/booking/date", url.Values{"date": {"15/10/2026"}})

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("Please choose a valid date.", strings.TrimSpace(doc.Find(".form-message").Text()))
}

func (s *PagesTestSuite) TestSubmitAndConfirm() {
	values := builder.NewBookingBuilder().BuildFormValues()
	rec, _ := s.post("/booking", values)

	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/confirmed", rec.Header().Get("Location"))

	rec, doc := s.get("/confirmed")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("2026-10-15", doc.Find(".confirmed-date").Text())
	s.Equal("20:30", doc.Find(".confirmed-time").Text())
	s.Equal("2", doc.Find(".confirmed-guests").Text())
	s.Equal("Anniversary", doc.Find(".confirmed-occasion").Text())

	s.Equal([]string{"/confirmed"}, s.onlySession().Router.History())

	s.Run("booking page offers a new reservation", func() {
		_, doc := s.get("/booking")
		s.Equal(1, doc.Find("#already-confirmed").Length())
		s.Equal(0, doc.Find("#booking-form").Length())

		rec, _ := s.post("/booking/new", url.Values{})
		s.Equal(http.StatusSeeOther, rec.Code)

		_, doc = s.get("/booking")
		s.Equal(1, doc.Find("#booking-form").Length())
	})
}

func (s *PagesTestSuite) TestSubmitInvalidKeepsInput() {
	values := builder.NewBookingBuilder().BuildFormValues()
	values.Set("guests", "0")

	rec, doc := s.post("/booking", values)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("Please correct the highlighted fields.", strings.TrimSpace(doc.Find(".form-message").Text()))
	s.Equal(1, doc.Find(`.field-error[data-field="guests"]`).Length())
	s.Equal("0", doc.Find("input#guests").AttrOr("value", ""))
	s.Equal("20:30", doc.Find("select#res-time option[selected]").AttrOr("value", ""))
}

func (s *PagesTestSuite) TestInvalidSubmitLeavesRouteAlone() {
	s.get("/about")

	values := url.Values{"date": {""}, "time": {""}, "guests": {"0"}, "occasion": {"Birthday"}}
	rec, doc := s.post("/booking", values)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("Reservations", doc.Find("header nav a.active").Text())

	sess := s.onlySession()
	s.Equal("/about", sess.Router.Path())
	s.Empty(sess.Router.History())
}

func (s *PagesTestSuite) TestConfirmedWithoutReservation() {
	rec, doc := s.get("/confirmed")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(1, doc.Find("#no-confirmation").Length())
}

func (s *PagesTestSuite) onlySession() *usecase.Session {
	s.Require().Equal(1, s.store.Len())
	var sess *usecase.Session
	lookup := gin.New()
	lookup.Use(s.sessionMiddleware)
	lookup.GET("/session", func(c *gin.Context) {
		sess, _ = middleware.GetSession(c)
		c.Status(http.StatusNoContent)
	})
	httptest.PerformRequestWithCookies(s.T(), lookup, http.MethodGet, "/session", nil, s.cookies)
	s.Require().NotNil(sess)
	return sess
}
