package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/garsue/watermillzap"

	"musafir/internal/audit"
	"musafir/internal/config"
	"musafir/internal/domain/common"
	"musafir/internal/events"
	"musafir/internal/logging"
)

// Consumer subscribes to the inbound domain-event topic and resolves
// one message at a time: decode, dispatch through the registry, then
// unconditionally write one audit record. Messages are always acked —
// a malformed or permanently failing message must not block the
// partition, so the audit log is the safety net, not redelivery.
type Consumer struct {
	registry *Registry
	recorder audit.Recorder
	logger   logging.Logger
	router   *message.Router
}

func New(
	cfg config.KafkaConfig,
	registry *Registry,
	recorder audit.Recorder,
	baseLogger logging.Logger,
) (*Consumer, error) {
	c := &Consumer{
		registry: registry,
		recorder: recorder,
		logger:   baseLogger.With("component", "event_consumer"),
	}

	if !cfg.Enabled {
		// No router in environments without Kafka; Process stays
		// reachable for direct use.
		return c, nil
	}

	wmlogger := watermillzap.NewLogger(logging.AsZap(baseLogger))

	router, err := message.NewRouter(message.RouterConfig{}, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	subCfg := kafka.SubscriberConfig{
		Brokers:       cfg.Brokers,
		Unmarshaler:   kafka.DefaultMarshaler{},
		ConsumerGroup: cfg.GroupID,
		OverwriteSaramaConfig: func() *sarama.Config {
			sc := kafka.DefaultSaramaSubscriberConfig()
			sc.ClientID = cfg.ClientID
			return sc
		}(),
		NackResendSleep:     5 * time.Second,
		ReconnectRetrySleep: 10 * time.Second,
	}

	subscriber, err := kafka.NewSubscriber(subCfg, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create kafka subscriber: %w", err)
	}

	router.AddNoPublisherHandler(
		"domain-events-handler",
		cfg.Topic,
		subscriber,
		c.handle,
	)

	c.router = router
	return c, nil
}

// Run blocks until ctx is cancelled. On shutdown the router lets the
// in-flight message finish its decode-dispatch-audit sequence before
// returning, so storage can be torn down safely afterwards.
func (c *Consumer) Run(ctx context.Context) error {
	if c.router == nil {
		return nil // Kafka disabled
	}
	return c.router.Run(ctx)
}

func (c *Consumer) Close() error {
	if c.router == nil {
		return nil
	}
	return c.router.Close()
}

// handle always returns nil: the processing outcome lives in the
// audit log, never in the ack decision.
func (c *Consumer) handle(msg *message.Message) error {
	c.Process(msg.Context(), msg.Payload)
	return nil
}

// Process resolves one raw bus message. Exactly one audit record is
// written per call, whatever happens in between.
func (c *Consumer) Process(ctx context.Context, raw []byte) {
	entry := audit.Entry{Event: "unknown", Message: raw}
	defer func() {
		c.recorder.Record(ctx, entry)
	}()

	env, err := events.DecodeEnvelope(raw)
	if err != nil {
		entry.Err = err
		c.logger.Error("failed to decode envelope", "error", err)
		return
	}

	entry.Event = env.EventType
	entry.Payload = env.Payload
	ctx = events.WithCorrelationID(ctx, env.CorrelationID)

	handler, ok := c.registry.Lookup(env.EventType)
	if !ok {
		c.logger.Info("skipping unhandled event type",
			"type", env.EventType,
			"message_id", env.MessageID,
		)
		return
	}

	if err := c.dispatch(ctx, handler, env); err != nil {
		if common.IsDuplicateKey(err) {
			// Redelivery of an already-applied create. The row is
			// there, so this is a success with no error detail.
			c.logger.Debug("duplicate delivery ignored",
				"type", env.EventType,
				"message_id", env.MessageID,
				"idempotency_key", env.IdempotencyKey,
			)
			return
		}
		entry.Err = err
		c.logger.Error("failed to apply event",
			"type", env.EventType,
			"message_id", env.MessageID,
			"error", err,
		)
	}
}

// dispatch shields the pipeline from a panicking handler: the panic
// becomes error detail on the audit record instead of killing the
// worker.
func (c *Consumer) dispatch(ctx context.Context, handler HandlerFunc, env events.Envelope) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("handler panic for %s: %v", env.EventType, p)
		}
	}()
	return handler(ctx, env)
}
