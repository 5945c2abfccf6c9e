package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/raushankrgupta/tonies-catalog/models"
	"github.com/raushankrgupta/tonies-catalog/scrapers"
	"github.com/raushankrgupta/tonies-catalog/utils"
)

// requestTimeout bounds the database work of a single request.
const requestTimeout = 10 * time.Second

// TonieStore is the catalog persistence the handlers need
type TonieStore interface {
	List(ctx context.Context) ([]models.Tonie, error)
	Get(ctx context.Context, id string) (*models.Tonie, error)
	Create(ctx context.Context, in models.CreateTonie) (*models.Tonie, error)
	Update(ctx context.Context, in models.UpdateTonie) (*models.Tonie, error)
	Delete(ctx context.Context, id string) (*models.Tonie, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// Server holds the dependencies of the HTTP handlers. The function fields
// default to the real scraper and image bucket and are swapped out in tests.
type Server struct {
	Store TonieStore

	GetScraper         func(url string) (scrapers.Scraper, error)
	UploadImageFromURL func(ctx context.Context, imageURL string) (string, error)
	UploadImage        func(ctx context.Context, file io.Reader, filename, contentType string, size int64) (string, error)
	DeleteImageByURL   func(ctx context.Context, imageURL string) error
}

func NewServer(store TonieStore, imageTimeout time.Duration) *Server {
	return &Server{
		Store:      store,
		GetScraper: scrapers.GetScraper,
		UploadImageFromURL: func(ctx context.Context, imageURL string) (string, error) {
			return utils.UploadImageFromURL(ctx, imageURL, imageTimeout)
		},
		UploadImage:      utils.UploadImage,
		DeleteImageByURL: utils.DeleteImageByURL,
	}
}

// Routes registers every endpoint. Admin routes sit behind AuthMiddleware.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", LoginHandler)

	mux.HandleFunc("GET /tonies", s.ListToniesHandler)
	mux.HandleFunc("GET /tonies/{id}", s.GetTonieHandler)

	mux.Handle("POST /admin/tonies", AuthMiddleware(http.HandlerFunc(s.CreateTonieHandler)))
	mux.Handle("PUT /admin/tonies/{id}", AuthMiddleware(http.HandlerFunc(s.UpdateTonieHandler)))
	mux.Handle("DELETE /admin/tonies/{id}", AuthMiddleware(http.HandlerFunc(s.DeleteTonieHandler)))
	mux.Handle("POST /admin/import", AuthMiddleware(http.HandlerFunc(s.ImportHandler)))
	mux.Handle("POST /admin/images", AuthMiddleware(http.HandlerFunc(s.UploadImageHandler)))

	return utils.CORSMiddleware(utils.LatencyMiddleware(mux))
}
