// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-trade-desk/internal/config"
	"github.com/MKhiriev/go-trade-desk/models"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// messageWriter is the part of *kafka.Writer the mailer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaMailer publishes mail events for a separate mail service to deliver.
type KafkaMailer struct {
	writer messageWriter
}

// NewKafkaMailer returns a Mailer writing JSON events to cfg.Kafka.Topic.
// SASL/PLAIN over TLS is used when a username is configured.
func NewKafkaMailer(cfg config.Mail) (*KafkaMailer, error) {
	if cfg.Kafka.Broker == "" || cfg.Kafka.Topic == "" {
		return nil, fmt.Errorf("%w: kafka broker and topic are required", ErrMailNotConfigured)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Broker),
		Topic:        cfg.Kafka.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: cfg.Kafka.WriteTimeout,
	}
	if cfg.Kafka.Username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: cfg.Kafka.Username, Password: cfg.Kafka.Password},
			TLS:  &tls.Config{MinVersion: tls.VersionTLS12},
		}
	}

	return &KafkaMailer{writer: writer}, nil
}

// SendPasswordReset publishes mail keyed by recipient so that events for one
// address keep their order.
func (k *KafkaMailer) SendPasswordReset(ctx context.Context, mail models.PasswordResetMail) error {
	value, err := json.Marshal(mail)
	if err != nil {
		return fmt.Errorf("encode mail event: %w", err)
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(mail.To),
		Value: value,
		Time:  mail.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("publish mail event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (k *KafkaMailer) Close() error {
	return k.writer.Close()
}
