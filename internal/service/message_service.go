package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"dm-chat/internal/domain"
	"dm-chat/internal/repository"
)

// MessageService aplica el chequeo de pertenencia antes de leer o escribir mensajes.
type MessageService struct {
	logger   *zap.Logger
	messages repository.MessageRepository
}

func NewMessageService(logger *zap.Logger, messages repository.MessageRepository) *MessageService {
	return &MessageService{logger: logger, messages: messages}
}

// ListFor devuelve los mensajes recibidos por targetID junto al username del
// remitente, en orden de inserción. Solo el dueño del buzón puede leerlo:
// la comparación es int64 contra int64, sin coerción de tipos.
func (s *MessageService) ListFor(ctx context.Context, callerID, targetID int64) ([]domain.InboxEntry, error) {
	if s.messages == nil {
		return nil, errors.New("message service not configured")
	}
	if callerID != targetID {
		return nil, ErrForbidden
	}

	entries, err := s.messages.ListByReceiverID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		// Buzón vacío no es error.
		entries = []domain.InboxEntry{}
	}
	return entries, nil
}

// Send inserta un mensaje con el caller como remitente y el id del path como
// receptor. No hay deduplicación: envíos repetidos crean filas repetidas.
func (s *MessageService) Send(ctx context.Context, callerID, targetID int64, body string) error {
	if s.messages == nil {
		return errors.New("message service not configured")
	}
	if callerID != targetID {
		return ErrForbidden
	}
	if strings.TrimSpace(body) == "" {
		return ErrEmptyMessage
	}

	msg := domain.Message{
		SenderID:   callerID,
		ReceiverID: targetID,
		Body:       body,
		CreatedAt:  time.Now().UTC(),
	}
	return s.messages.Create(ctx, msg)
}
