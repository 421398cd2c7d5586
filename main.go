package main

import (
	"log"
	"net/http"
	"os"

	"github.com/foodhubdev/foodhub/app/cmd"
	"github.com/foodhubdev/foodhub/app/configs"
	"github.com/foodhubdev/foodhub/app/routes"
	"github.com/foodhubdev/foodhub/app/utils/sessions"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys not configured:", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	router := routes.NewRouter(db, sessionStore)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
