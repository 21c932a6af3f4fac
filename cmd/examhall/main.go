package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/examhall/examhall/internal/api/http"
	"github.com/examhall/examhall/internal/auth"
	"github.com/examhall/examhall/internal/config"
	"github.com/examhall/examhall/internal/db"
	"github.com/examhall/examhall/internal/exam"
)

func main() {
	cfg := config.FromEnv()

	// --- Store ---
	var store exam.Store
	if cfg.DBDriver == "memory" {
		store = exam.NewMemStore()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = exam.NewSQLStore(dbh)
	}

	svc := exam.NewService(store, cfg.Categories, cfg.QuestionsPerCat, cfg.PassPercent)
	sessions := auth.NewService(cfg.AuthSecret, cfg.SessionTTL)

	r := api.New(cfg, store, svc, sessions)

	log.Printf("listening on %s (db=%s, categories=%v, quota=%d)",
		cfg.HTTPAddr, cfg.DBDriver, cfg.Categories, cfg.QuestionsPerCat)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
