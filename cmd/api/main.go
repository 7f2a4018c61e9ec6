package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/Dylan1021/WeScholarly/db"
	"github.com/Dylan1021/WeScholarly/internal/handler"
	"github.com/Dylan1021/WeScholarly/internal/report"
	"github.com/Dylan1021/WeScholarly/internal/repository"
	"github.com/Dylan1021/WeScholarly/pkg/mptext"
	"github.com/Dylan1021/WeScholarly/pkg/proxy"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	accountRepo := repository.NewAccountRepository(db.DB)
	forwarder := proxy.NewForwarder()
	articleSource := mptext.NewClient(forwarder, os.Getenv("MPTEXT_BASE_URL"))
	generator := report.NewGenerator(accountRepo, articleSource)

	provider := os.Getenv("LLM_PROVIDER")

	accountHandler := handler.NewAccountHandler(accountRepo)
	proxyHandler := handler.NewProxyHandler(forwarder)
	reportHandler := handler.NewReportHandler(generator, provider)
	searchHandler := handler.NewSearchHandler(articleSource)
	summarizeHandler := handler.NewSummarizeHandler(provider)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/accounts", accountHandler.GetAccounts)
	r.POST("/api/accounts", accountHandler.AddAccount)
	r.DELETE("/api/accounts/:id", accountHandler.RemoveAccount)
	r.POST("/api/proxy/mptext", proxyHandler.ForwardMPText)
	r.POST("/api/proxy/download", proxyHandler.DownloadContent)
	r.POST("/api/report", reportHandler.GenerateReport)
	r.POST("/api/search", searchHandler.SearchAccounts)
	r.POST("/api/summarize", summarizeHandler.SummarizeArticle)
	r.GET("/health", accountHandler.GetHealth)

	r.StaticFile("/", "./static/index.html")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
