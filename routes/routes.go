package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stevenhalase/vetrant-api/handlers"
	"github.com/stevenhalase/vetrant-api/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(userHandler *handlers.UserHandler, postHandler *handlers.PostHandler, channelHandler *handlers.ChannelHandler, giphyHandler *handlers.GiphyHandler) http.Handler {
	router := mux.NewRouter()

	// User routes
	router.HandleFunc("/api/v1/user/", userHandler.Register).Methods("POST")
	router.HandleFunc("/api/v1/user/login/", userHandler.Login).Methods("POST")
	router.HandleFunc("/api/v1/user/avatar/", userHandler.UpdateAvatar).Methods("PUT")

	// Post, comment and reaction routes
	router.HandleFunc("/api/v1/post/", postHandler.CreatePost).Methods("POST")
	router.HandleFunc("/api/v1/comment/", postHandler.CreateComment).Methods("POST")
	router.HandleFunc("/api/v1/like/", postHandler.CreateLike).Methods("POST")
	router.HandleFunc("/api/v1/dislike/", postHandler.CreateDislike).Methods("POST")
	router.HandleFunc("/api/v1/post/user/{userId}", postHandler.ListPostsByUser).Methods("GET")
	router.HandleFunc("/api/v1/comment/user/{userId}", postHandler.ListCommentsByUser).Methods("GET")
	router.HandleFunc("/api/v1/post/channel/{channelId}", postHandler.ListPostsByChannel).Methods("GET")

	// Channel routes
	router.HandleFunc("/api/v1/channel/", channelHandler.ListChannels).Methods("GET")
	router.HandleFunc("/api/v1/channel/", channelHandler.CreateChannel).Methods("POST")

	// Giphy routes
	router.HandleFunc("/api/v1/giphy/{query}", giphyHandler.Search).Methods("GET")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	var handler http.Handler = router
	handler = handlers.WithCORS(handler)
	handler = handlers.WithRecover(handler)
	handler = handlers.WithRequestID(handler)
	return monitoring.InstrumentHandler(handler)
}
