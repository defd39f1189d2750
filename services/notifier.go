package services

import (
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier is the user-facing toast channel: every operation boundary that
// surfaces a result to the operator emits exactly one notification.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type notification struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// AMQPNotifier publishes notifications to a RabbitMQ queue consumed by the
// back-office UI and ops tooling.
type AMQPNotifier struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewAMQPNotifier(url, queue string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPNotifier{conn: conn, ch: ch, queue: queue}, nil
}

func (n *AMQPNotifier) publish(level, message string) {
	body, err := json.Marshal(notification{Level: level, Message: message, Timestamp: time.Now()})
	if err != nil {
		return
	}

	err = n.ch.Publish("", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Println("Failed to publish notification:", err)
	}
}

func (n *AMQPNotifier) Success(message string) { n.publish("success", message) }
func (n *AMQPNotifier) Error(message string)   { n.publish("error", message) }

func (n *AMQPNotifier) Close() {
	if n.ch != nil {
		n.ch.Close()
	}
	if n.conn != nil {
		n.conn.Close()
	}
}

// LogNotifier is the fallback when RabbitMQ is not configured.
type LogNotifier struct{}

func (LogNotifier) Success(message string) { log.Println("[notify] success:", message) }
func (LogNotifier) Error(message string)   { log.Println("[notify] error:", message) }
