package main

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/config"
	"github.com/MeoKool/Capstone-project-order-pizza-manager-sub001/internal/domain"

	"github.com/joho/godotenv"
)

//go:embed templates/*.html
var templatesFS embed.FS

// mailKinds maps a queued message type to its template and subject line.
var mailKinds = map[string]struct {
	template string
	subject  string
}{
	"staff_account":         {"templates/staff_account_email.html", "Pizza Shift Manager - Your Account"},
	"reset_password":        {"templates/reset_password_otp_email.html", "Pizza Shift Manager - Password Reset"},
	"registration_decision": {"templates/registration_decision_email.html", "Pizza Shift Manager - Registration Update"},
	"swap_decision":         {"templates/swap_decision_email.html", "Pizza Shift Manager - Swap Request Update"},
}

func main() {
	/**********************************************
	 * create logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * load configuration
	 **********************************************/
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Error("failed to load .env file", slog.String("error", err.Error()))
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * create the mail client
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("failed to create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("failed to connect to the mail server", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * connect to rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open a rabbitmq channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		domain.MailQueueName,
		true,  // durable
		false, // keep the queue around with no consumers
		false, // not exclusive
		false, // wait for the broker to confirm
		nil,
	)
	if err != nil {
		logger.Error("failed to declare the mail queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // broker-assigned consumer tag
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to start consuming", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("message received", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("failed to decode mail message", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				kind, ok := mailKinds[mailMessage.Type]
				if !ok {
					logger.Error("unsupported mail type", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("failed to set mail sender", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("failed to set mail recipient", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				tmpl, err := template.ParseFS(templatesFS, kind.template)
				if err != nil {
					logger.Error("failed to parse mail template", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
					logger.Error("failed to render mail body", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				m.Subject(kind.subject)

				if err := client.DialAndSend(m); err != nil {
					logger.Error("failed to send mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // requeue for another attempt
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("waiting for messages... (press CTRL+C to exit)")
	<-sigChan

	slog.Info("shutting down mail worker...")
	cancel()
	wg.Wait()
	slog.Info("mail worker stopped")
}
