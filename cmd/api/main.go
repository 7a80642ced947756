package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/teizred/web-speech-api/internal/db"
	"github.com/teizred/web-speech-api/internal/llm"
	"github.com/teizred/web-speech-api/internal/losses"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{"DATABASE_URL"}
	if os.Getenv("LLM_PROVIDER") == "llama" {
		required = append(required, "LLAMA_API_KEY", "LLAMA_MODEL", "LLAMA_API_URL")
	} else {
		required = append(required, "GEMINI_API_KEY", "GEMINI_MODEL")
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// The ledger's calendar day is anchored here, not on the database
	// server's locale.
	tz := os.Getenv("STORE_TIMEZONE")
	if tz == "" {
		tz = "Europe/Paris"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("❌ Invalid STORE_TIMEZONE %q: %v", tz, err)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── WIRING ─────────────────────────
	interpreter := llm.NewClientFromEnv()
	lossRepo := losses.NewPostgresRepository(pgDB)
	lossService := losses.NewService(lossRepo, interpreter, loc)
	lossHandler := losses.NewHandler(lossService)

	// ───────────────────────── ROUTES ─────────────────────────
	api := r.Group("/api")
	{
		api.GET("/losses", lossHandler.ListToday)
		api.POST("/losses", lossHandler.RecordTranscript)
		api.POST("/losses/manual", lossHandler.CreateManual)
		api.PATCH("/losses/:id", lossHandler.UpdateQuantity)
		api.DELETE("/losses", lossHandler.ResetDay)
		api.GET("/losses/grid", lossHandler.Grid)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Printf("🚀 API running at http://localhost:%s", port)
	r.Run(":" + port)
}
