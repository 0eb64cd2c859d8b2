package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"campus-courier-service/internal/adapters/cache"
	"campus-courier-service/internal/adapters/repositories"
	"campus-courier-service/internal/api"
	"campus-courier-service/internal/campus"
	"campus-courier-service/internal/config"
	"campus-courier-service/internal/domain"
	"campus-courier-service/internal/platform/db"
	"campus-courier-service/internal/ports"
	"campus-courier-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	startLocation := config.Get("START_LOCATION", "Capen Hall")
	mapPath := os.Getenv("CAMPUS_MAP_PATH")

	graph, err := buildGraph(mapPath)
	if err != nil {
		log.Fatal(err)
	}
	if !graph.HasLocation(startLocation) {
		log.Fatalf("START_LOCATION %q is not on the campus map", startLocation)
	}

	repo, closeDB, err := openOrderRepository()
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	registry := services.NewOrderRegistry(graph, repo)
	if err := registry.Load(context.Background()); err != nil {
		log.Fatal(err)
	}

	pathCache := openPathCache()
	pathfinder := services.NewPathfinder(graph, pathCache)
	optimizer := services.NewRouteOptimizer(registry, pathfinder)

	router := api.NewRouter(graph, registry, optimizer, startLocation)

	log.Printf("Server listening addr=:%s locations=%d", port, graph.LocationCount())
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildGraph loads the campus map from CAMPUS_MAP_PATH when set,
// otherwise uses the built-in UB North Campus data.
func buildGraph(mapPath string) (*domain.LocationGraph, error) {
	if strings.TrimSpace(mapPath) == "" {
		return campus.Default(), nil
	}
	return campus.LoadGraph(mapPath)
}

// openOrderRepository selects Postgres when DATABASE_URL is set,
// otherwise a local SQLite file.
func openOrderRepository() (ports.OrderRepository, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLOrderRepository(pg), func() { pg.Close() }, nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	lite, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := repositories.InitSchema(lite); err != nil {
		lite.Close()
		return nil, nil, err
	}

	return repositories.NewSqliteOrderRepository(lite), func() { lite.Close() }, nil
}

// openPathCache connects the Redis shortest-path cache when REDIS_ADDR
// is set. Routing works without it, just recomputes every lookup.
func openPathCache() ports.PathCache {
	addr := os.Getenv("REDIS_ADDR")
	if strings.TrimSpace(addr) == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable, path cache disabled: addr=%s err=%v", addr, err)
		return nil
	}

	return cache.NewRedisPathCache(client, 24*time.Hour)
}
