package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tradevalues/internal/domain/value"
)

const namespace = "tradevalues"

// Recorder counts domain events. It satisfies the Metrics interfaces of the
// valuation, voting and alert services.
type Recorder struct {
	votesCast       *prometheus.CounterVec
	voteConflicts   prometheus.Counter
	tradesSubmitted prometheus.Counter
	alertsTriggered prometheus.Counter
	evaluations     *prometheus.CounterVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		votesCast: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_cast_total",
			Help:      "Votes that changed a trade tally.",
		}, []string{"vote"}),
		voteConflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vote_conflicts_total",
			Help:      "Optimistic version conflicts while saving a vote.",
		}),
		tradesSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_submitted_total",
			Help:      "Trades submitted for community voting.",
		}),
		alertsTriggered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_triggered_total",
			Help:      "Price alerts marked as triggered.",
		}),
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Trade evaluations by resulting status.",
		}, []string{"status"}),
	}
}

func (r *Recorder) Evaluated(status value.Status) {
	r.evaluations.WithLabelValues(string(status)).Inc()
}

func (r *Recorder) TradeSubmitted() {
	r.tradesSubmitted.Inc()
}

func (r *Recorder) VoteCast(vote value.Vote) {
	r.votesCast.WithLabelValues(vote.String()).Inc()
}

func (r *Recorder) VoteConflict() {
	r.voteConflicts.Inc()
}

func (r *Recorder) AlertTriggered() {
	r.alertsTriggered.Inc()
}
