package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// LikesTotal counts like operations that committed a membership change.
	LikesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "product_likes_total",
			Help: "Total number of successful product like operations",
		},
	)

	// UnlikesTotal counts unlike operations that committed a membership change.
	UnlikesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "product_unlikes_total",
			Help: "Total number of successful product unlike operations",
		},
	)

	// LikeConflictsTotal counts like/unlike operations that gave up after the
	// transactional retry budget was exhausted.
	LikeConflictsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "product_like_conflicts_total",
			Help: "Total number of like operations aborted by write conflicts",
		},
	)
)

func init() {
	prometheus.MustRegister(LikesTotal)
	prometheus.MustRegister(UnlikesTotal)
	prometheus.MustRegister(LikeConflictsTotal)
}
