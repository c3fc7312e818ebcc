package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jekabolt/sheel/internal/auth"
	"github.com/jekabolt/sheel/internal/entity"
	"github.com/jekabolt/sheel/internal/i18n"
	"github.com/jekabolt/sheel/internal/listing"
	"github.com/shopspring/decimal"
)

//go:embed templates
var templatesFS embed.FS

var templates = parsePages(
	"home",
	"create",
	"detail",
	"dashboard",
	"login",
	"signin_required",
	"error",
)

func parsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(template.New("layout.html").ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		))
	}
	return out
}

// page is what every template receives.
type page struct {
	L        *i18n.Context
	Attrs    *i18n.Attributes
	User     *auth.Identity
	Flash    *flash
	Path     string
	WhatsApp string
	Data     any
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	ctx := r.Context()
	lc := i18n.MustFromContext(ctx)

	p := page{
		L:        lc,
		Attrs:    attributesFromContext(ctx),
		User:     auth.StateFromContext(ctx).User,
		Flash:    s.popFlash(w, r),
		Path:     r.URL.RequestURI(),
		WhatsApp: whatsAppLink(s.c.WhatsAppNumber, lc.T("whatsapp.message")),
		Data:     data,
	}

	var buf bytes.Buffer
	if err := templates[name].Execute(&buf, p); err != nil {
		slog.Default().ErrorContext(ctx, "can't render page",
			slog.String("page", name),
			slog.String("err", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

type errorData struct {
	Status int
	Key    string
}

// fail renders a full error page whose message is the translation of key.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, key string) {
	s.render(w, r, status, "error", errorData{Status: status, Key: key})
}

// whatsAppLink returns the chat link for number with a prefilled message.
func whatsAppLink(number, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

// card is a listing prepared for display in the active locale.
type card struct {
	ID          string
	Title       string
	Description string
	Location    string
	Price       string
	Image       string
	TypeKey     string
	CategoryKey string
	StatusKey   string
	Bedrooms    string
	Bathrooms   string
	Area        string
	Views       int
	Created     string
	Featured    bool
}

func newCard(l *entity.Listing, lc *i18n.Context) card {
	c := card{
		ID:          l.ID,
		Title:       listing.Title(l, lc.Locale()),
		Description: listing.Description(l, lc.Locale()),
		Location:    listing.Location(l, lc),
		Price:       listing.FormatPrice(l, lc),
		Image:       listing.CoverImage(l),
		TypeKey:     "property.for." + string(l.TransactionType),
		CategoryKey: "property." + string(l.Category),
		StatusKey:   "status." + string(l.Status),
		Views:       l.Views,
		Created:     l.CreatedAt.Format("2006-01-02"),
		Featured:    l.Featured,
	}
	if l.Bedrooms != nil {
		c.Bedrooms = strconv.Itoa(*l.Bedrooms)
	}
	if l.Bathrooms != nil {
		c.Bathrooms = strconv.FormatFloat(*l.Bathrooms, 'f', -1, 64)
	}
	if l.Area != nil {
		c.Area = i18n.FormatNumber(lc.Locale(), decimal.NewFromInt(int64(*l.Area)))
	}
	return c
}

func newCards(ls []entity.Listing, lc *i18n.Context) []card {
	out := make([]card, 0, len(ls))
	for i := range ls {
		out = append(out, newCard(&ls[i], lc))
	}
	return out
}
