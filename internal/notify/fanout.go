package notify

import (
	"context"
	"errors"

	"github.com/shenikar/disaster_response_system/internal/models"
)

// Publisher - получатель событий (реестр сокетов, очередь вебхуков)
type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
}

// Fanout передает событие каждому получателю. Ошибка одного не мешает остальным.
type Fanout struct {
	publishers []Publisher
}

func NewFanout(publishers ...Publisher) *Fanout {
	return &Fanout{publishers: publishers}
}

func (f *Fanout) Publish(ctx context.Context, event models.Event) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
