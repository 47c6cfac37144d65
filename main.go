package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"squadup_server/routes"
	"squadup_server/services"
	"squadup_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; real deployments configure the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Redis for presence
	redisClient := redis.NewClient(&redis.Options{
		Addr: envOrDefault("REDIS_ADDR", "localhost:6379"),
	})

	// Initialize stores
	profileStore := &services.DynamoProfileStore{Dynamo: dynamoService}
	conversationStore := &services.DynamoConversationStore{Dynamo: dynamoService}
	messageStore := &services.DynamoMessageStore{Dynamo: dynamoService}
	presenceStore := &services.RedisPresenceStore{
		Client: redisClient,
		TTL:    durationEnv("PRESENCE_TTL", 90*time.Second),
	}

	// Initialize the socket server for fire-and-forget notifications
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("❌ Socket server stopped: %v", err)
		}
	}()
	defer socketServer.Close()
	dispatcher := &socket.Dispatcher{Server: socketServer}

	// Initialize the external similarity collaborator
	var similarity services.SimilarityClient
	if baseURL := os.Getenv("SIMILARITY_SERVICE_URL"); baseURL != "" {
		similarity = services.NewHTTPSimilarityClient(baseURL, durationEnv("SIMILARITY_TIMEOUT", 3*time.Second))
	} else {
		log.Println("SIMILARITY_SERVICE_URL not set; description similarity scoring disabled")
	}

	// Initialize Services
	userProfileService := &services.UserProfileService{Profiles: profileStore}
	scoringEngine := &services.ScoringEngine{Similarity: similarity}
	conversationService := &services.ConversationService{Store: conversationStore}
	matchService := &services.MatchService{
		Profiles:      profileStore,
		Scoring:       scoringEngine,
		Conversations: conversationService,
		Notifier:      dispatcher,
	}
	chatService := &services.ChatService{
		Conversations: conversationService,
		Messages:      messageStore,
		Notifier:      dispatcher,
	}
	presenceService := &services.PresenceService{Store: presenceStore}

	// Set up the server port
	port := envOrDefault("PORT", "8080")
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route and a health check endpoint
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to SquadUp")
	}).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"status":"healthy"}`)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterChatRoutes(r, chatService, conversationService)
	routes.RegisterPresenceRoutes(r, presenceService)
	routes.RegisterMediaRoutes(r)

	// Mount the socket server
	r.PathPrefix("/socket.io/").Handler(socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return parsed
}
