package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gracemeadow/meadowlane-backend/api/controllers"
	"github.com/gracemeadow/meadowlane-backend/api/middleware"
	"github.com/gracemeadow/meadowlane-backend/internal/albums"
	"github.com/gracemeadow/meadowlane-backend/internal/carousels"
	"github.com/gracemeadow/meadowlane-backend/internal/curation"
	"github.com/gracemeadow/meadowlane-backend/internal/items"
	"github.com/gracemeadow/meadowlane-backend/internal/playlists"
	"github.com/gracemeadow/meadowlane-backend/internal/products"
	"github.com/gracemeadow/meadowlane-backend/internal/recipes"
	"github.com/gracemeadow/meadowlane-backend/pkg/config"
	"github.com/gracemeadow/meadowlane-backend/pkg/logger"
)

// Services groups everything the router hands to controllers.
type Services struct {
	Carousels carousels.Service
	Items     items.Service
	Curation  curation.Service
	Recipes   recipes.Service
	Albums    albums.Service
	Products  products.Service
	Playlists playlists.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	cacheP controllers.Pinger,
	registry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, cacheP, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	// Read path for the site frontend. No auth; everything it serves is public.
	r.Route("/api/public/v1", func(r chi.Router) {
		r.Get("/pages/{page}/carousels/{slug}", controllers.RenderCarousel(svcs.Carousels, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/pages/{page}/carousels", func(r chi.Router) {
			r.Get("/", controllers.CarouselsList(svcs.Carousels, logg))
			r.Route("/{slug}", func(r chi.Router) {
				r.Get("/", controllers.CarouselGet(svcs.Carousels, logg))
				r.Post("/", controllers.CarouselResolve(svcs.Carousels, logg))
				r.Put("/membership", controllers.CurationMembership(svcs.Curation, logg))
				r.Put("/singleton", controllers.CurationSetSingleton(svcs.Curation, logg))
				r.Delete("/singleton", controllers.CurationClearSingleton(svcs.Curation, logg))
			})
		})

		r.Route("/carousels/{carouselID}", func(r chi.Router) {
			r.Patch("/", controllers.CarouselUpdate(svcs.Carousels, logg))
			r.Delete("/", controllers.CarouselDelete(svcs.Carousels, logg))
			r.Route("/items", func(r chi.Router) {
				r.Get("/", controllers.ItemsList(svcs.Items, logg))
				r.Post("/", controllers.ItemCreate(svcs.Items, logg))
				r.Delete("/by-ref/{refID}", controllers.ItemRemoveByReference(svcs.Items, logg))
			})
		})

		r.Route("/items/{itemID}", func(r chi.Router) {
			r.Patch("/", controllers.ItemUpdate(svcs.Items, logg))
			r.Delete("/", controllers.ItemDelete(svcs.Items, logg))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", controllers.RecipesList(svcs.Recipes, logg))
			r.Post("/", controllers.RecipeCreate(svcs.Recipes, logg))
			r.Get("/{recipeID}", controllers.RecipeGet(svcs.Recipes, logg))
			r.Patch("/{recipeID}", controllers.RecipeUpdate(svcs.Recipes, logg))
			r.Delete("/{recipeID}", controllers.RecipeDelete(svcs.Recipes, logg))
		})

		r.Route("/albums", func(r chi.Router) {
			r.Get("/", controllers.AlbumsList(svcs.Albums, logg))
			r.Post("/", controllers.AlbumCreate(svcs.Albums, logg))
			r.Get("/{albumID}", controllers.AlbumGet(svcs.Albums, logg))
			r.Patch("/{albumID}", controllers.AlbumUpdate(svcs.Albums, logg))
			r.Delete("/{albumID}", controllers.AlbumDelete(svcs.Albums, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(svcs.Products, logg))
			r.Post("/", controllers.ProductCreate(svcs.Products, logg))
			r.Get("/{productID}", controllers.ProductGet(svcs.Products, logg))
			r.Patch("/{productID}", controllers.ProductUpdate(svcs.Products, logg))
			r.Delete("/{productID}", controllers.ProductDelete(svcs.Products, logg))
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Get("/", controllers.PlaylistsList(svcs.Playlists, logg))
			r.Post("/", controllers.PlaylistCreate(svcs.Playlists, logg))
			r.Get("/{playlistID}", controllers.PlaylistGet(svcs.Playlists, logg))
			r.Patch("/{playlistID}", controllers.PlaylistUpdate(svcs.Playlists, logg))
			r.Delete("/{playlistID}", controllers.PlaylistDelete(svcs.Playlists, logg))
		})
	})

	return r
}
