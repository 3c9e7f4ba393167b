package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"maze3d"
	"maze3d/scene"
)

type RouteRequest struct {
	Start     *maze3d.Coord `json:"start"`
	Goal      *maze3d.Coord `json:"goal"`
	Algorithm string        `json:"algorithm,omitempty"` // "bfs" (default) or "a_star"
}

type RouteResponse struct {
	Path      []maze3d.Coord `json:"path"`
	Success   bool           `json:"success"`
	Message   string         `json:"message,omitempty"`
	Steps     int            `json:"steps"`
	Expanded  int            `json:"expanded"`
	ElapsedMs float64        `json:"elapsedMs"`
}

var (
	globalEngine *maze3d.Engine
	engineMutex  sync.RWMutex
)

func currentEngine() *maze3d.Engine {
	engineMutex.RLock()
	defer engineMutex.RUnlock()
	return globalEngine
}

func setEngine(engine *maze3d.Engine) {
	engineMutex.Lock()
	globalEngine = engine
	engineMutex.Unlock()
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// POST /route - Find a path between two cells of the active grid
func routeHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Route request received")
	defer log.Println("========================================")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		writeJSON(w, http.StatusBadRequest, RouteResponse{Message: "Invalid request body: " + err.Error()})
		return
	}
	if req.Start == nil || req.Goal == nil {
		log.Println("❌ Missing start or goal")
		writeJSON(w, http.StatusBadRequest, RouteResponse{Message: "start and goal are required"})
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = maze3d.BFS.String()
	}

	log.Printf("   Start: %v\n", *req.Start)
	log.Printf("   Goal:  %v\n", *req.Goal)
	log.Printf("   Algorithm: %s\n", req.Algorithm)

	engine := currentEngine()
	if engine == nil {
		log.Println("❌ No grid loaded")
		http.Error(w, "No grid loaded. Call /scene first", http.StatusBadRequest)
		return
	}

	strategy, err := maze3d.ParseStrategy(req.Algorithm)
	if err != nil {
		log.Printf("❌ %v\n", err)
		writeJSON(w, http.StatusBadRequest, RouteResponse{Message: err.Error()})
		return
	}

	startTime := time.Now()
	result, err := engine.FindPath(*req.Start, *req.Goal, strategy)
	elapsed := time.Since(startTime)
	if err != nil {
		log.Printf("❌ Search failed: %v\n", err)
		writeJSON(w, searchErrorStatus(err), RouteResponse{Message: err.Error()})
		return
	}

	response := RouteResponse{
		Path:      result.Path,
		Success:   result.Found,
		Steps:     result.Steps(),
		Expanded:  result.ExpandedNodes,
		ElapsedMs: float64(elapsed.Microseconds()) / 1000,
	}

	if !result.Found {
		log.Println("❌ No path found between the start and goal cells")
		response.Message = "No path found between the start and goal cells"
	} else {
		log.Printf("✅ Path found with %d steps (%d cells expanded)\n", result.Steps(), result.ExpandedNodes)
		log.Printf("   ⏱️  Search time: %.3f ms\n", response.ElapsedMs)
	}

	writeJSON(w, http.StatusOK, response)
}

// searchErrorStatus maps a FindPath error to an HTTP status: bad input is
// the caller's fault, anything else is ours.
func searchErrorStatus(err error) int {
	switch {
	case errors.Is(err, maze3d.ErrInvalidCoordinate), errors.Is(err, maze3d.ErrInvalidStrategy):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// POST /scene - Replace the active grid with an HCL scene
func sceneHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("🗺️  Scene upload received")
	defer log.Println("========================================")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	src, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	parsed, err := scene.ParseHCL(src, "upload.hcl")
	if err != nil {
		log.Printf("❌ %v\n", err)
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": err.Error()})
		return
	}
	engine, err := parsed.Engine()
	if err != nil {
		log.Printf("❌ %v\n", err)
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": err.Error()})
		return
	}

	setEngine(engine)
	log.Printf("✅ Grid replaced and stored in memory\n")

	writeJSON(w, http.StatusOK, gridSummary(engine))
}

// GET /grid - Get the active grid as a snapshot
func gridHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	engine := currentEngine()
	if engine == nil {
		http.Error(w, "No grid loaded. Call /scene first", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, scene.NewSnapshot(engine))
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	engine := currentEngine()

	status := "ready"
	if engine == nil {
		status = "waiting for grid"
	}
	body := map[string]interface{}{
		"status":  status,
		"hasGrid": engine != nil,
	}
	if engine != nil {
		body["grid"] = gridSummary(engine)
	}
	writeJSON(w, http.StatusOK, body)
}

func gridSummary(engine *maze3d.Engine) map[string]interface{} {
	grid := engine.Grid()
	return map[string]interface{}{
		"success":   true,
		"size":      grid.Dims(),
		"adjacency": engine.Adjacency(),
		"cells":     grid.Len(),
		"blocked":   grid.Blocked(),
	}
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/route", corsMiddleware(routeHandler))
	mux.HandleFunc("/scene", corsMiddleware(sceneHandler))
	mux.HandleFunc("/grid", corsMiddleware(gridHandler))
	mux.HandleFunc("/health", corsMiddleware(healthHandler))
	return mux
}

// loadStartupGrid builds the initial engine from a scene or snapshot file.
// An empty path for both leaves the server waiting for /scene.
func loadStartupGrid(scenePath, snapshotPath string) (*maze3d.Engine, error) {
	switch {
	case scenePath != "":
		parsed, err := scene.LoadHCL(scenePath)
		if err != nil {
			return nil, err
		}
		return parsed.Engine()
	case snapshotPath != "":
		snapshot, err := scene.LoadSnapshot(snapshotPath)
		if err != nil {
			return nil, err
		}
		return snapshot.Engine()
	}
	return nil, nil
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	scenePath := flag.String("scene", "", "HCL scene file to load on startup")
	snapshotPath := flag.String("snapshot", "", "JSON grid snapshot to load on startup")
	savePath := flag.String("save", "", "write the startup grid to this snapshot file")
	flag.Parse()

	log.Println("========================================")
	log.Println("🚀 3D Maze Planner Server")
	log.Println("========================================")

	engine, err := loadStartupGrid(*scenePath, *snapshotPath)
	if err != nil {
		log.Fatalf("❌ Failed to load startup grid: %v", err)
	}
	if engine != nil {
		setEngine(engine)
		log.Printf("✅ Loaded startup grid %v (%d blocked cells)\n", engine.Grid().Dims(), engine.Grid().Blocked())
		if *savePath != "" {
			if err := scene.SaveSnapshot(scene.NewSnapshot(engine), *savePath); err != nil {
				log.Printf("⚠️  Failed to save snapshot: %v\n", err)
			}
		}
	} else {
		log.Println("ℹ️  No startup grid given")
		log.Println("   Call /scene to upload one")
	}
	log.Println("")

	log.Printf("Server starting on %s\n", *addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /scene   - Upload an HCL scene and build its grid")
	log.Println("  POST /route   - Find a path between two cells")
	log.Println("  GET  /grid    - Get the active grid as a JSON snapshot")
	log.Println("  GET  /health  - Check server status")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(*addr, newMux()); err != nil {
		log.Fatal(err)
	}
}
