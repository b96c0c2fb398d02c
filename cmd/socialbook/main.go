package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"socialbook/internal/common"
	"socialbook/internal/config"
	"socialbook/internal/dbmysql"
	"socialbook/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()
	log.Println("configuration loaded")

	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	app := di.InitializeApplication(db)
	log.Println("dependencies wired")

	router := mux.NewRouter()
	app.UserHandler.RegisterRoutes(router)
	app.FriendHandler.RegisterRoutes(router)
	app.PostHandler.RegisterRoutes(router)
	router.HandleFunc("/health", health).Methods(http.MethodGet)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      common.AuthMiddleware(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	log.Printf("socialbook listening on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
