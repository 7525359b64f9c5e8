package services

import (
	"context"
	"sync"

	"nextignition_backend/internal/email"
	"nextignition_backend/internal/logger"
	"nextignition_backend/internal/metrics"
)

// Notifier отправляет письма в фоне: ошибка отправки только логируется
type Notifier struct {
	provider email.Provider
	wg       sync.WaitGroup
}

func NewNotifier(provider email.Provider) *Notifier {
	if provider == nil {
		provider = email.NewNoopProvider()
	}
	return &Notifier{provider: provider}
}

// Notify не блокирует запрос; контекст отвязан от отмены, но сохраняет request_id
func (n *Notifier) Notify(ctx context.Context, to, subject, template string, data email.TemplateData) {
	if to == "" {
		return
	}
	ctx = context.WithoutCancel(ctx)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		err := n.provider.SendTemplate([]string{to}, subject, template, data)
		metrics.EmailsTotal.WithLabelValues(template, metrics.Result(err)).Inc()
		if err != nil {
			logger.CtxWithError(ctx, "failed to send email", err, "template", template)
			return
		}
		logger.CtxDebug(ctx, "email sent", "template", template)
	}()
}

// Wait дожидается писем в полете (graceful shutdown, тесты)
func (n *Notifier) Wait() {
	n.wg.Wait()
}
