package main

import (
  "context"
  "fmt"
  "net/http"
  "os"
  "os/signal"
  "syscall"
  "time"
  "golang.org/x/sync/errgroup"
  "github.com/neuroscale/neuroscale-site/internal/cache"
  "github.com/neuroscale/neuroscale-site/internal/cmsclient"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/render"
  "github.com/neuroscale/neuroscale-site/internal/services"
  "github.com/neuroscale/neuroscale-site/internal/site"
  "github.com/neuroscale/neuroscale-site/internal/telegram"
  "github.com/neuroscale/neuroscale-site/internal/utils"
)

func main() {
  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  cmsEndpoint := utils.GetEnv("CMS_GRAPHQL_URL", "http://localhost:4000/api/graphql", log)
  cmsToken := utils.GetEnv("CMS_API_TOKEN", "", log)
  revalidateSecret := utils.GetEnv("REVALIDATE_SECRET", "", log)
  staticDir := utils.GetEnv("STATIC_DIR", "./static", log)

  // Cache
  var store cache.Store
  if os.Getenv("REDIS_ADDR") != "" {
    redisStore, err := cache.NewRedisStore(log)
    if err != nil {
      log.Fatal("Redis init failed", "error", err)
    }
    store = redisStore
  } else {
    log.Info("REDIS_ADDR not set, using in-memory cache")
    store = cache.NewMemoryStore()
  }

  // Clients
  cmsClient := cmsclient.New(log, cmsEndpoint, cmsToken)
  notifier := telegram.New(log, telegram.ConfigFromEnv(log))

  // Services
  log.Info("Setting up services from main...")
  contentService := services.NewSiteContentService(log, cmsClient, store)
  // A disabled notifier stays a nil interface, not a typed nil.
  var notifierIface telegram.Notifier
  if notifier != nil {
    notifierIface = notifier
  }
  leadService := services.NewLeadService(log, cmsClient, notifierIface)

  // Renderer
  renderer, err := render.New()
  if err != nil {
    log.Fatal("Template init failed", "error", err)
  }

  // Router
  siteHandlers := site.NewHandlers(log, contentService, leadService, renderer, store, revalidateSecret)
  router := site.NewRouter(siteHandlers, staticDir)

  port := utils.GetEnv("PORT", "3000", log)
  srv := &http.Server{
    Addr:    ":" + port,
    Handler: router,
  }

  ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
  defer stop()

  g, gctx := errgroup.WithContext(ctx)
  g.Go(func() error {
    log.Info("Site listening", "port", port)
    if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
      return err
    }
    return nil
  })
  g.Go(func() error {
    <-gctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    return srv.Shutdown(shutdownCtx)
  })

  if err := g.Wait(); err != nil {
    log.Fatal("Site exited with error", "error", err)
  }
}
