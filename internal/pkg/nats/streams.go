package nats

import (
	"sort"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/ridepay/internal/pkg/constants"
)

// DefaultStreamConfigs returns the streams every service expects to exist
func DefaultStreamConfigs() []jetstream.StreamConfig {
	names := make([]string, 0, len(constants.StreamSubjects))
	for name := range constants.StreamSubjects {
		names = append(names, name)
	}
	sort.Strings(names)

	configs := make([]jetstream.StreamConfig, 0, len(names))
	for _, name := range names {
		configs = append(configs, jetstream.StreamConfig{
			Name:       name,
			Subjects:   constants.StreamSubjects[name],
			Retention:  jetstream.LimitsPolicy,
			Storage:    jetstream.FileStorage,
			Replicas:   1,
			MaxAge:     7 * 24 * time.Hour,
			Discard:    jetstream.DiscardOld,
			Duplicates: 2 * time.Minute,
		})
	}
	return configs
}

// ConsumerConfig builds a durable explicit-ack consumer for one subject
func ConsumerConfig(durable, subject string, maxDeliver int) jetstream.ConsumerConfig {
	if maxDeliver <= 0 {
		maxDeliver = 5
	}
	return jetstream.ConsumerConfig{
		Durable:       durable,
		FilterSubject: subject,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    maxDeliver,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
		MaxAckPending: 1000,
	}
}

// StreamForSubject returns the stream capturing subject, or "" when none does
func StreamForSubject(subject string) string {
	for name, subjects := range constants.StreamSubjects {
		for _, pattern := range subjects {
			if subjectMatches(pattern, subject) {
				return name
			}
		}
	}
	return ""
}

// subjectMatches implements NATS wildcard matching for "*" and a trailing ">"
func subjectMatches(pattern, subject string) bool {
	p := strings.Split(pattern, ".")
	s := strings.Split(subject, ".")
	for i, tok := range p {
		if tok == ">" {
			return len(s) > i
		}
		if i >= len(s) {
			return false
		}
		if tok != "*" && tok != s[i] {
			return false
		}
	}
	return len(p) == len(s)
}
