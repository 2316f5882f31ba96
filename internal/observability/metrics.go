package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests grouped by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "exercise_tracker",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency grouped by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	usersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "users",
		Name:      "created_total",
		Help:      "Number of users registered.",
	})

	exercisesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "exercises",
		Name:      "logged_total",
		Help:      "Number of exercises recorded.",
	})

	eventPublishFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Number of exercise.logged events that could not be published.",
	})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, usersCreated, exercisesLogged, eventPublishFailures)
}

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordUserCreated() { usersCreated.Inc() }

func RecordExerciseLogged() { exercisesLogged.Inc() }

func RecordPublishFailure() { eventPublishFailures.Inc() }
