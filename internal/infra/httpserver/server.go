package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// NewServer wires routes and middleware into an http.Server ready to listen.
func NewServer(
	port string,
	emails EmailSender,
	access AccessChecker,
	allowedOrigins []string,
	logger *logrus.Logger,
) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "API is working"})
	})

	emailHandler := NewEmailHandler(emails, logger)
	mux.HandleFunc("POST /send-email", RequireAccess(access, logger)(emailHandler.SendEmail))

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           CORS(allowedOrigins)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
