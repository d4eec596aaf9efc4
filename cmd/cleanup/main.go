package main

import (
	"log"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/config"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/database"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/media"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/recruiter"

	"github.com/joho/godotenv"
)

// Periodic housekeeping: expired sign-on tokens and images no company
// references anymore. Meant to run from cron.
func main() {
	godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("unable to load config: %+v", err)
	}
	conn, err := database.GetDbConn(
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
	)
	if err != nil {
		log.Fatalf("unable to connect to postgres: %v", err)
	}
	defer database.CloseDbConn(conn)

	recruiterRepo := recruiter.NewRepository(conn)
	mediaRepo := media.NewRepository(conn)

	if err := recruiterRepo.DeleteExpiredSignOnTokens(); err != nil {
		log.Fatalf("unable to delete expired sign on tokens: %v", err)
	}
	log.Println("deleted expired sign on tokens")

	if err := mediaRepo.DeleteStaleImages(); err != nil {
		log.Fatalf("unable to delete stale images: %v", err)
	}
	log.Println("deleted stale images")
}
