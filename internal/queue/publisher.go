package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события в durable-очередь RabbitMQ.
// Публикация не должна прерывать основной поток обработки: любая ошибка
// логируется и возвращается, вызывающий код может её игнорировать
type Publisher struct {
	url   string
	queue string
	log   Logger
}

// NewPublisher создает издателя событий
func NewPublisher(url, queue string, log Logger) *Publisher {
	return &Publisher{url: url, queue: queue, log: log}
}

// PublishReservationConfirmed публикует событие подтвержденной брони.
// Соединение устанавливается на каждую публикацию: объем событий мал
// (одно на принятую бронь), а переподключение при обрыве не требуется
func (p *Publisher) PublishReservationConfirmed(ctx context.Context, event ReservationConfirmedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error("queue: dial broker failed: %v", err)
		return fmt.Errorf("queue: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error("queue: open channel failed: %v", err)
		return fmt.Errorf("queue: channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Объявление идемпотентно; durable, чтобы события переживали рестарт брокера
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		p.log.Error("queue: declare %q failed: %v", p.queue, err)
		return fmt.Errorf("queue: declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("queue: marshal event failed: %v", err)
		return fmt.Errorf("queue: marshal: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.log.Error("queue: publish to %q failed: %v", p.queue, err)
		return fmt.Errorf("queue: publish: %w", err)
	}

	p.log.Info("queue: reservation.confirmed published: reservation_id=%d", event.ReservationID)
	return nil
}
