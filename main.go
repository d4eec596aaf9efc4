package main

import (
	"log"
	"net/http"

	"github.com/Dhanushburra/whitecarrot-assignment/internal/company"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/config"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/database"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/email"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/handler"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/job"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/media"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/middleware"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/recruiter"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/section"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/server"
	"github.com/Dhanushburra/whitecarrot-assignment/internal/template"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional, real deployments set the environment directly
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
	emailClient, err := email.NewClient(cfg.SmtpAPIKey, cfg.SupportEmail, cfg.NoReplyEmail, cfg.SiteName)
	if err != nil {
		log.Fatalf("unable to initialise email client: %v", err)
	}
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)

	svr := server.NewServer(
		cfg,
		conn,
		mux.NewRouter(),
		template.NewTemplate(),
		emailClient,
		sessionStore,
	)

	companyRepo := company.NewRepository(conn)
	jobRepo := job.NewRepository(conn)
	sectionRepo := section.NewRepository(conn)
	recruiterRepo := recruiter.NewRepository(conn)
	mediaRepo := media.NewRepository(conn)

	authRecruiter := func(next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
		return middleware.RecruiterAuthenticatedMiddleware(sessionStore, svr.GetJWTSigningKey(), next)
	}

	svr.RegisterRoute("/health", handler.HealthCheckHandler(svr), []string{"GET"})
	svr.RegisterRoute("/robots.txt", handler.RobotsTXTHandler(svr), []string{"GET"})
	svr.RegisterRoute("/sitemap.xml", handler.SitemapHandler(svr, companyRepo), []string{"GET"})

	// sign on
	svr.RegisterRoute("/x/auth", handler.RequestTokenSignOn(svr, recruiterRepo), []string{"POST"})
	svr.RegisterRoute("/x/auth/{token}", handler.VerifyTokenSignOn(svr, recruiterRepo), []string{"GET"})
	svr.RegisterRoute("/x/auth/signout", handler.SignOut(svr), []string{"POST"})

	// recruiter dashboard
	svr.RegisterRoute("/api/company", authRecruiter(handler.CreateCompanyHandler(svr, companyRepo)), []string{"POST"})
	svr.RegisterRoute("/api/company", authRecruiter(handler.MyCompanyHandler(svr, companyRepo)), []string{"GET"})
	svr.RegisterRoute("/api/company", authRecruiter(handler.UpdateMyCompanyHandler(svr, companyRepo)), []string{"PUT"})

	svr.RegisterRoute("/api/jobs", authRecruiter(handler.ListMyJobsHandler(svr, companyRepo, jobRepo)), []string{"GET"})
	svr.RegisterRoute("/api/jobs", authRecruiter(handler.CreateJobHandler(svr, companyRepo, jobRepo)), []string{"POST"})
	svr.RegisterRoute("/api/jobs/{id}", authRecruiter(handler.UpdateJobHandler(svr, companyRepo, jobRepo)), []string{"PUT"})
	svr.RegisterRoute("/api/jobs/{id}", authRecruiter(handler.DeleteJobHandler(svr, companyRepo, jobRepo)), []string{"DELETE"})

	svr.RegisterRoute("/api/sections", authRecruiter(handler.ListMySectionsHandler(svr, companyRepo, sectionRepo)), []string{"GET"})
	svr.RegisterRoute("/api/sections", authRecruiter(handler.CreateSectionHandler(svr, companyRepo, sectionRepo)), []string{"POST"})
	svr.RegisterRoute("/api/sections/reorder", authRecruiter(handler.ReorderSectionsHandler(svr, companyRepo, sectionRepo)), []string{"POST"})
	svr.RegisterRoute("/api/sections/{id}", authRecruiter(handler.UpdateSectionHandler(svr, companyRepo, sectionRepo)), []string{"PUT"})
	svr.RegisterRoute("/api/sections/{id}", authRecruiter(handler.DeleteSectionHandler(svr, companyRepo, sectionRepo)), []string{"DELETE"})

	svr.RegisterRoute("/api/media", authRecruiter(handler.SaveMediaHandler(svr, companyRepo, mediaRepo)), []string{"POST"})

	// public careers page
	svr.RegisterRoute("/careers/{slug}", handler.PublicCompanyHandler(svr, companyRepo), []string{"GET"})
	svr.RegisterRoute("/careers/{slug}/jobs", handler.PublicJobsHandler(svr, companyRepo, jobRepo), []string{"GET"})
	svr.RegisterRoute("/careers/{slug}/sections", handler.PublicSectionsHandler(svr, companyRepo, sectionRepo), []string{"GET"})
	svr.RegisterRoute("/careers/{slug}/jobs.rss", handler.CompanyJobsRSSHandler(svr, companyRepo, jobRepo), []string{"GET"})

	// serve uploaded media
	svr.RegisterRoute("/x/s/m/{id}", handler.RetrieveMediaHandler(svr, mediaRepo), []string{"GET"})

	log.Fatal(svr.Run())
}
