package main

import (
	"log"
	"net/http"
	"os"

	"moodlog/db"
	"moodlog/handlers"
	appmw "moodlog/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func newRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/api/register", handlers.Register)
	r.Post("/api/login", handlers.Login)

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth)
		r.Post("/api/mood-entry", handlers.AddMood)
		r.Get("/api/today-moods", handlers.TodayMoods)
		r.Post("/api/journal-entry", handlers.AddJournal)
		r.Get("/api/journals", handlers.ListJournals)
		r.Delete("/api/journal/{id}", handlers.DeleteJournal)
		r.Get("/api/activity-dates", handlers.ActivityDates)
		r.Get("/api/calendar", handlers.Calendar)
		r.Get("/api/mood-data-check", handlers.MoodDataCheck)
		r.Get("/api/recommendation", handlers.GetRecommendation)
		r.Get("/api/mood-chart", handlers.MoodChart)
		r.Get("/api/wellness-tip", handlers.WellnessTip)
	})

	return r
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using environment as-is")
	}

	db.ConnectDB()
	r := newRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3002"
	}

	log.Println("Server running on http://localhost:" + port)
	http.ListenAndServe(":"+port, r)
}
