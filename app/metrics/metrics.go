package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once
	messagesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lzgateway",
			Subsystem: "oapp",
			Name:      "messages_sent_total",
			Help:      "Messages handed to the endpoint, by kind (send, callback)",
		},
		[]string{"kind"},
	)

	messagesReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lzgateway",
			Subsystem: "oapp",
			Name:      "messages_received_total",
			Help:      "Inbound deliveries classified by result",
		},
		[]string{"result"},
	)

	callbackFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lzgateway",
			Subsystem: "oapp",
			Name:      "callback_failures_total",
			Help:      "Automatic callbacks that could not be sent",
		},
		[]string{"reason"},
	)

	quoteNativeFee = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lzgateway",
			Subsystem: "oapp",
			Name:      "quote_native_fee",
			Help:      "Native fee returned by endpoint quotes",
			Buckets:   prometheus.ExponentialBuckets(1_000, 10, 10),
		},
	)
)

func ensureRegistered() {
	registerOnce.Do(func() {
		prometheus.MustRegister(messagesSent, messagesReceived, callbackFailures, quoteNativeFee)
	})
}

func MessagesSent() *prometheus.CounterVec {
	ensureRegistered()
	return messagesSent
}

func MessagesReceived() *prometheus.CounterVec {
	ensureRegistered()
	return messagesReceived
}

func CallbackFailures() *prometheus.CounterVec {
	ensureRegistered()
	return callbackFailures
}

func QuoteObserver() prometheus.Observer {
	ensureRegistered()
	return quoteNativeFee
}
