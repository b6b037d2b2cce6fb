// Package worker provides the NATS transport for skill turns: a
// request/reply subscriber that decodes platform events and answers with
// serialized response envelopes.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/book-expert/logger"
	"github.com/book-expert/wod-skill-service/internal/alexa"
	"github.com/book-expert/wod-skill-service/internal/interaction"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// handleMessageTimeout bounds one turn; a skill turn is a single synchronous
// lookup plus string work.
const handleMessageTimeout = 10 * time.Second

// SkillWorker listens for platform events on a NATS subject and replies
// with response envelopes.
type SkillWorker struct {
	natsConnection *nats.Conn
	subject        string
	model          *interaction.Model
	applicationID  string
	log            *logger.Logger
}

// New creates a new skill worker.
func New(
	natsConnection *nats.Conn,
	subject string,
	model *interaction.Model,
	applicationID string,
	log *logger.Logger,
) *SkillWorker {
	return &SkillWorker{
		natsConnection: natsConnection,
		subject:        subject,
		model:          model,
		applicationID:  applicationID,
		log:            log,
	}
}

// Run starts the worker and blocks until the context is canceled.
func (w *SkillWorker) Run(ctx context.Context) error {
	subscription, err := w.natsConnection.Subscribe(w.subject, w.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", w.subject, err)
	}

	<-ctx.Done()

	drainErr := subscription.Drain()
	if drainErr != nil {
		return fmt.Errorf("failed to drain subscription: %w", drainErr)
	}

	return nil
}

func (w *SkillWorker) handleMessage(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), handleMessageTimeout)
	defer cancel()

	turnID := uuid.NewString()

	envelope, err := alexa.ParseEnvelope(msg.Data)
	if err != nil {
		w.log.Error("turn %s: failed to parse envelope: %v", turnID, err)
		w.respondError(msg, err)

		return
	}

	err = envelope.VerifyApplication(w.applicationID)
	if err != nil {
		w.log.Error("turn %s: %v", turnID, err)
		w.respondError(msg, err)

		return
	}

	response, err := w.model.HandleEvent(ctx, envelope)
	if err != nil {
		w.log.Error("turn %s: failed to handle %s: %v", turnID, envelope.Request.Type, err)
		w.respondError(msg, err)

		return
	}

	data, err := json.Marshal(response.Envelope())
	if err != nil {
		w.log.Error("turn %s: failed to encode response: %v", turnID, err)
		w.respondError(msg, err)

		return
	}

	respondErr := msg.Respond(data)
	if respondErr != nil {
		w.log.Error("turn %s: failed to respond: %v", turnID, respondErr)
	}
}

// respondError answers with an error payload so the requesting gateway does
// not block on a reply that will never come.
func (w *SkillWorker) respondError(msg *nats.Msg, cause error) {
	payload, err := json.Marshal(map[string]string{"error": cause.Error()})
	if err != nil {
		return
	}

	respondErr := msg.Respond(payload)
	if respondErr != nil {
		w.log.Error("failed to respond with error payload: %v", respondErr)
	}
}
