package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	adminapp "github.com/salon-id/hair-design-review/api/internal/admin/application"
	"github.com/salon-id/hair-design-review/api/internal/config"
	dashapp "github.com/salon-id/hair-design-review/api/internal/dashboard/application"
	mongodoc "github.com/salon-id/hair-design-review/api/internal/infrastructure/mongo"
	"github.com/salon-id/hair-design-review/api/internal/ingest"
	adminhttp "github.com/salon-id/hair-design-review/api/internal/interfaces/http/admin"
	commonhttp "github.com/salon-id/hair-design-review/api/internal/interfaces/http/common"
	ownerhttp "github.com/salon-id/hair-design-review/api/internal/interfaces/http/owner"
	publichttp "github.com/salon-id/hair-design-review/api/internal/interfaces/http/public"
	stylisthttp "github.com/salon-id/hair-design-review/api/internal/interfaces/http/stylist"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Server は HTTP サーバーのライフサイクルを管理し、各ハンドラへ依存注入するコンポジションルート。
// DDD の Interface 層に相当し、アプリケーションサービスをルータへ接続する責務を担う。
type Server struct {
	logger          *log.Logger
	client          *mongo.Client
	database        *mongo.Database
	location        *time.Location
	jwtSecret       []byte
	jwtIssuer       string
	jwtAudience     string
	tokenTTL        time.Duration
	adminEmails     []string
	uploadService   adminapp.UploadService
	statusService   adminapp.StatusService
	settingsService adminapp.SettingsService
	ownerService    dashapp.OwnerService
	stylistService  dashapp.StylistService
	galleryService  dashapp.GalleryService
	stylistRepo     *mongodoc.StylistRepository
	reviewRepo      *mongodoc.ReviewRepository
	imageRepo       *mongodoc.ImageRepository
	addr            string
	allowedOrigins  []string
}

type authenticatedUser = commonhttp.AuthenticatedUser

// Run はHTTPサーバーを起動し、各ロールのルーティングやミドルウェアを組み立てる。
// インフラ初期化に限定し、ドメインロジックをここに書かないことで層の責務を守る。
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())
	router.Post("/auth/login", s.loginHandler())
	router.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/auth/verify", s.verifyHandler())
	})

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:  s.logger,
		Gallery: s.galleryService,
		Images:  s.imageRepo,
	})
	publicHandler.Register(router, s.authMiddleware)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:          s.logger,
		UploadService:   s.uploadService,
		StatusService:   s.statusService,
		SettingsService: s.settingsService,
		Stylists:        s.stylistRepo,
		Reviews:         s.reviewRepo,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Use(s.requireRole(commonhttp.RoleAdmin))
		adminHandler.Register(r)
	})

	ownerHandler := ownerhttp.NewHandler(ownerhttp.Config{
		Logger:  s.logger,
		Service: s.ownerService,
	})
	router.Route("/owner", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Use(s.requireRole(commonhttp.RoleOwner, commonhttp.RoleAdmin))
		ownerHandler.Register(r)
	})

	stylistHandler := stylisthttp.NewHandler(stylisthttp.Config{
		Logger:  s.logger,
		Service: s.stylistService,
	})
	router.Route("/me", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Use(s.requireRole(commonhttp.RoleStylist))
		stylistHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP サーバー起動: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS は許可されたオリジン情報をもとに CORS ヘッダーを付与するミドルウェアを返す。
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAllowed は指定された Origin が許可リストに含まれるか判定する。
func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler は MongoDB への疎通確認を行い、監視系からのヘルスチェック要求に応える。
// ドメインの状態ではなくインフラ状態のみを返す設計。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// writeJSON は JSON レスポンスの共通書き込み処理。
// Content-Type 設定とエラーログ出力を一元化して重複を避ける。
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("JSON エンコードに失敗: %v", err)
	}
}

// shutdown は MongoDB クライアントをタイムアウト付きで切断し、プロセス終了時のリソースリークを防ぐ。
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("MongoDB 切断時にエラー: %v", err)
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
// アプリケーションの外側で扱うべき OS 依存の関心事をここへ閉じ込める。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("サーバーが異常終了: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("シグナル %s を受信。サーバー停止処理を開始します。", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("サーバー停止時にエラー: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New は Config と Mongo クライアントを受け取り、アプリケーションサービスとハンドラを組み立てた Server を返す。
// 依存解決の起点となるファクトリとして機能する。
func New(cfg config.Config, client *mongo.Client) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("JST", 9*60*60)
		cfg.ServerLog.Printf("タイムゾーン %s の読み込みに失敗: %v, JST を使用します", cfg.Timezone, err)
	}

	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		location:       loc,
		jwtSecret:      append([]byte(nil), cfg.JWTSecret...),
		jwtIssuer:      cfg.JWTIssuer,
		jwtAudience:    cfg.JWTAudience,
		tokenTTL:       cfg.TokenTTL,
		adminEmails:    append([]string(nil), cfg.AdminEmails...),
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}

	dataStore := mongodoc.NewDataStore(srv.database, cfg.StylistCollection, cfg.ReviewCollection, cfg.ImageCollection, cfg.MappingCollection)
	settingsRepo := mongodoc.NewSettingsRepository(srv.database, cfg.SettingsCollection)
	galleryRepo := mongodoc.NewGalleryRepository(srv.database, cfg.GalleryCollection)
	srv.stylistRepo = mongodoc.NewStylistRepository(srv.database, cfg.StylistCollection)
	srv.reviewRepo = mongodoc.NewReviewRepository(srv.database, cfg.ReviewCollection)
	srv.imageRepo = mongodoc.NewImageRepository(srv.database, cfg.ImageCollection)

	pipeline := ingest.NewPipeline(dataStore, cfg.ServerLog)
	srv.uploadService = adminapp.NewUploadService(pipeline)
	srv.statusService = adminapp.NewStatusService(dataStore)
	srv.settingsService = adminapp.NewSettingsService(settingsRepo, dataStore)
	srv.ownerService = dashapp.NewOwnerService(srv.stylistRepo, srv.reviewRepo)
	srv.stylistService = dashapp.NewStylistService(srv.stylistRepo, srv.reviewRepo)
	srv.galleryService = dashapp.NewGalleryService(galleryRepo)

	return srv
}
