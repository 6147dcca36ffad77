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
  "github.com/neuroscale/neuroscale-site/internal/db"
  "github.com/neuroscale/neuroscale-site/internal/events"
  "github.com/neuroscale/neuroscale-site/internal/handlers"
  "github.com/neuroscale/neuroscale-site/internal/logger"
  "github.com/neuroscale/neuroscale-site/internal/middleware"
  "github.com/neuroscale/neuroscale-site/internal/repos"
  "github.com/neuroscale/neuroscale-site/internal/server"
  "github.com/neuroscale/neuroscale-site/internal/services"
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
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  siteURL := utils.GetEnv("SITE_URL", "", log)
  revalidateSecret := utils.GetEnv("REVALIDATE_SECRET", "", log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Fatal("Postgres init failed", "error", err)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up repos from main...")
  titleRepo := repos.NewTitleRepo(thePG, log)
  contactRepo := repos.NewContactRepo(thePG, log)
  aboutRepo := repos.NewAboutRepo(thePG, log)
  statisticRepo := repos.NewStatisticRepo(thePG, log)
  possibilitieRepo := repos.NewPossibilitieRepo(thePG, log)
  stageRepo := repos.NewStageRepo(thePG, log)
  caseRepo := repos.NewCaseRepo(thePG, log)
  faqRepo := repos.NewFaqRepo(thePG, log)
  documentRepo := repos.NewDocumentRepo(thePG, log)
  clientRepo := repos.NewClientRepo(thePG, log)
  userRepo := repos.NewUserRepo(thePG, log)

  // Events
  dispatcher := events.NewRevalidateDispatcher(log, siteURL, revalidateSecret)

  // Services
  log.Info("Setting up services from main...")
  authService := services.NewAuthService(log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
  contentService := services.NewContentService(
    thePG,
    log,
    titleRepo,
    contactRepo,
    aboutRepo,
    statisticRepo,
    possibilitieRepo,
    stageRepo,
    caseRepo,
    faqRepo,
    documentRepo,
    clientRepo,
    userRepo,
    dispatcher,
  )

  adminEmail := utils.GetEnv("ADMIN_EMAIL", "", log)
  adminPassword := utils.GetEnv("ADMIN_PASSWORD", "", log)
  adminName := utils.GetEnv("ADMIN_NAME", "", log)
  if err := authService.BootstrapAdmin(context.Background(), adminEmail, adminPassword, adminName); err != nil {
    log.Warn("Bootstrap admin failed", "error", err)
  }

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  graphQLHandler := handlers.NewGraphQLHandler(log, contentService)
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:    authHandler,
    AuthMiddleware: authMiddleware,
    GraphQLHandler: graphQLHandler,
  })

  port := utils.GetEnv("PORT", "4000", log)
  srv := &http.Server{
    Addr:    ":" + port,
    Handler: router,
  }

  ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
  defer stop()

  g, gctx := errgroup.WithContext(ctx)
  g.Go(func() error {
    log.Info("Content service listening", "port", port)
    if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
      return err
    }
    return nil
  })
  g.Go(func() error {
    err := dispatcher.Run(gctx)
    if err == context.Canceled {
      return nil
    }
    return err
  })
  g.Go(func() error {
    <-gctx.Done()
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    return srv.Shutdown(shutdownCtx)
  })

  if err := g.Wait(); err != nil {
    log.Fatal("Content service exited with error", "error", err)
  }
}
