package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "lar-amigo/docs"
	mem "lar-amigo/internal/adapters/storage/memory"
	pg "lar-amigo/internal/adapters/storage/postgres"
	"lar-amigo/internal/config"
	"lar-amigo/internal/content"
	"lar-amigo/internal/domain/chat"
	"lar-amigo/internal/domain/favorites"
	"lar-amigo/internal/domain/forms"
	"lar-amigo/internal/domain/news"
	"lar-amigo/internal/domain/pets"
	"lar-amigo/internal/domain/phone"
	"lar-amigo/internal/middleware"
	"lar-amigo/internal/platform/logger"
)

type Options struct {
	Config config.Config
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, el catálogo se lee de Postgres. Si no, in-memory.
	// Es de quien la pasa: Close no la cierra.
	DB *sql.DB
}

// Router es el handler HTTP junto con lo que necesita en segundo plano.
// Run debe correr mientras se sirve; Close al terminar.
type Router struct {
	http.Handler

	limiter   *middleware.RateLimiter
	favorites *mem.FavoritesStore
	ownedDB   *sql.DB
}

func NewRouter(opts Options) (*Router, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	rt := &Router{
		limiter:   middleware.NewRateLimiter(opts.Config.RateLimitRPS, opts.Config.RateLimitBurst),
		favorites: mem.NewFavoritesStore(opts.Config.FavoritesTTL),
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Session())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	petRepo, err := rt.petRepository(opts, log)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}

	script, err := content.ChatScript()
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	items, err := content.News()
	if err != nil {
		_ = rt.Close()
		return nil, err
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	favoritesSvc := favorites.NewService(rt.favorites, petsSvc)
	formsSvc := forms.NewService(petsSvc)
	bot := chat.NewBot(script, opts.Config.ShelterWhatsApp)
	feed := news.NewFeed(items)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	favorites.RegisterRoutes(r, favoritesSvc)
	phone.RegisterRoutes(r)
	forms.RegisterRoutes(r, formsSvc, rt.limiter.Middleware)
	chat.RegisterRoutes(r, bot, rt.limiter.Middleware)
	news.RegisterRoutes(r, feed)

	if opts.Config.SwaggerEnabled {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	rt.Handler = r
	return rt, nil
}

// Run limpia visitantes del rate limit y sesiones de favoritos inactivas
// hasta que ctx se cancele.
func (rt *Router) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		rt.limiter.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		rt.favorites.Run(ctx)
	}()
	wg.Wait()
}

// Close cierra la conexión que el router abrió desde DB_DSN, si la hay.
func (rt *Router) Close() error {
	if rt.ownedDB == nil {
		return nil
	}
	db := rt.ownedDB
	rt.ownedDB = nil
	return db.Close()
}

// petRepository: con DB usa Postgres (ya migrado y sembrado); si no, el catálogo embebido.
func (rt *Router) petRepository(opts Options, log logger.Logger) (pets.Repository, error) {
	db := opts.DB
	if db == nil && opts.Config.DBDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), pg.ConnectTimeout)
		opened, err := pg.Open(ctx, opts.Config.DBDSN, pg.DefaultPool())
		cancel()
		if err != nil {
			// igual que antes: sin DB se sigue con el catálogo en memoria
			log.Warn("postgres unavailable, using in-memory catalog", map[string]any{"error": err})
		} else {
			db = opened
			rt.ownedDB = opened
		}
	}

	if db != nil {
		log.Info("pet catalog backed by postgres", nil)
		return pg.NewPetsRepo(db), nil
	}

	catalog, err := content.Catalog()
	if err != nil {
		return nil, fmt.Errorf("router: load catalog: %w", err)
	}
	return mem.NewPetRepo(catalog)
}
