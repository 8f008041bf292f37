package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"orghub/pkg/lifecycle"
	"orghub/pkg/token"
)

type Server struct {
	Orchestrator *lifecycle.Orchestrator
	Issuer       *token.Issuer
	Router       *mux.Router
	DB           *gorm.DB
	srv          *http.Server
}

func NewServer(
	orchestrator *lifecycle.Orchestrator,
	issuer *token.Issuer,
	db *gorm.DB,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Orchestrator: orchestrator,
		Issuer:       issuer,
		Router:       router,
		DB:           db,
		srv:          srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
