// Package notify публикует события бронирований в очередь уведомлений.
// Доставка писем - забота внешнего сервиса рассылки; здесь только
// fire-and-forget публикация. Ошибки публикации логируются и никогда
// не влияют на результат операции, из которой отправлено уведомление.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher издатель событий бронирований в RabbitMQ
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  Logger
}

// NewPublisher подключается к брокеру и объявляет durable-очередь.
// Пустой URL отключает уведомления: издатель создаётся, но все публикации
// пропускаются с записью в лог. Сервис бронирований остаётся работоспособным.
func NewPublisher(url, queue string, logger Logger) (*Publisher, error) {
	if url == "" {
		logger.Warn("notify: rabbitmq url is empty, notifications disabled")
		return &Publisher{queue: queue, logger: logger}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("notify: dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("notify: open channel: %w", err)
	}

	// Очередь durable, сообщения персистентные - переживают рестарт брокера
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("notify: declare queue %s: %w", queue, err)
	}

	return &Publisher{
		conn:    conn,
		channel: channel,
		queue:   queue,
		logger:  logger,
	}, nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// BookingCreated уведомляет фотографа о новой заявке
func (p *Publisher) BookingCreated(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, buildEvent(b, KindBookingCreated, domain.RolePhotographer))
}

// BookingConfirmed уведомляет клиента о подтверждении
func (p *Publisher) BookingConfirmed(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, buildEvent(b, KindBookingConfirmed, domain.RoleClient))
}

// BookingDeclined уведомляет клиента об отклонении заявки
func (p *Publisher) BookingDeclined(ctx context.Context, b *domain.Booking) {
	p.publish(ctx, buildEvent(b, KindBookingDeclined, domain.RoleClient))
}

// BookingCancelled уведомляет контрагента отменившей стороны
func (p *Publisher) BookingCancelled(ctx context.Context, b *domain.Booking, recipient domain.Role) {
	p.publish(ctx, buildEvent(b, KindBookingCancelled, recipient))
}

// publish сериализует и отправляет событие.
// Любая ошибка проглатывается: жизненный цикл бронирования не должен
// откатываться из-за недоставленного письма.
func (p *Publisher) publish(ctx context.Context, event BookingEvent) {
	if p.channel == nil {
		p.logger.Info("notify: skipped %s for booking id=%s (notifications disabled)", event.Kind, event.BookingID)
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("notify: marshal %s for booking id=%s: %v", event.Kind, event.BookingID, err)
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.channel.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.logger.Error("notify: publish %s for booking id=%s: %v", event.Kind, event.BookingID, err)
		return
	}

	p.logger.Info("notify: published %s for booking id=%s, recipient=%s", event.Kind, event.BookingID, event.RecipientRole)
}

func buildEvent(b *domain.Booking, kind EventKind, recipient domain.Role) BookingEvent {
	return BookingEvent{
		BookingID:      b.ID,
		Kind:           string(kind),
		RecipientRole:  string(recipient),
		ClientID:       b.ClientID,
		PhotographerID: b.PhotographerID,
		EventType:      b.EventType,
		EventDate:      b.EventDate.Format(domain.DateFormat),
		EventTime:      b.EventTime.String(),
		EventLocation:  b.EventLocation,
		TotalAmount:    b.TotalAmount,
		OccurredAt:     time.Now().UTC().Format(time.RFC3339),
	}
}
