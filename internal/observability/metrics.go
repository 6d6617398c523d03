package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain event counters, exposed through the /metrics endpoint alongside the
// per-request HTTP metrics.
var (
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glimpse_users_registered_total",
		Help: "Number of accounts created.",
	})

	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glimpse_posts_created_total",
		Help: "Number of posts created.",
	})

	LikesToggled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glimpse_likes_toggled_total",
		Help: "Number of like toggle operations applied.",
	})

	CommentsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glimpse_comments_added_total",
		Help: "Number of comments added.",
	})
)
