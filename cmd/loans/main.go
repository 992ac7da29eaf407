package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/sapirHafner/Library-management-project/config"
	"github.com/sapirHafner/Library-management-project/handlers"
	"github.com/sapirHafner/Library-management-project/middleware"
	"github.com/sapirHafner/Library-management-project/service"
	"github.com/sapirHafner/Library-management-project/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("5002")
	if err != nil {
		log.Fatal("config:", err)
	}

	ctx := context.Background()
	db, err := store.NewMongoDB(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("mongodb:", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Println("mongodb disconnect:", err)
		}
	}()

	desk := &service.LoanDesk{
		DB:      db,
		Catalog: service.NewCatalogClient(cfg.BooksServiceURL),
	}
	loansHandler := &handlers.LoansHandler{Desk: desk}

	r := chi.NewRouter()
	r.Use(middleware.AllowAll())
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/loans", loansHandler.List)
	r.With(middleware.RequireJSON).Post("/loans", loansHandler.Create)
	r.Get("/loans/{id}", loansHandler.Get)
	r.Delete("/loans/{id}", loansHandler.Delete)

	server := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("loans service listening on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}
