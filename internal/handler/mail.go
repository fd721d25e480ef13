package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"
)

func (h *Handler) publishMailMessage(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		domain.MailQueueName,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// notifyMail enqueues a notification without failing the surrounding request.
// Decision endpoints have already committed their state change by the time the
// mail is prepared.
func (h *Handler) notifyMail(msg domain.MailMessage) {
	if err := h.publishMailMessage(msg); err != nil {
		slog.Error("failed to enqueue notification mail", "type", msg.Type, "to", msg.To, "error", err)
	}
}
