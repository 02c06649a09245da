package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aescanero/dago-bank-assistant/internal/agent"
	"github.com/aescanero/dago-bank-assistant/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// QueryProcessor answers a single customer query
type QueryProcessor interface {
	ProcessQuery(ctx context.Context, text string) agent.QueryResult
}

// Worker consumes customer queries from a Redis stream and publishes results
type Worker struct {
	id            string
	redisClient   *redis.Client
	processor     QueryProcessor
	logger        *zap.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	done          chan struct{}
	streamKey     string
	consumerGroup string
	resultStream  string
	blockTime     time.Duration
}

// NewWorker creates a new worker
func NewWorker(
	cfg *config.Config,
	redisClient *redis.Client,
	processor QueryProcessor,
	logger *zap.Logger,
) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	return &Worker{
		id:            cfg.WorkerID,
		redisClient:   redisClient,
		processor:     processor,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
		streamKey:     cfg.StreamKey,
		consumerGroup: cfg.ConsumerGroup,
		resultStream:  cfg.ResultStream,
		blockTime:     cfg.BlockTime,
	}
}

// Start starts the worker
func (w *Worker) Start() error {
	w.logger.Info("starting assistant worker",
		zap.String("worker_id", w.id),
		zap.String("stream_key", w.streamKey),
		zap.String("consumer_group", w.consumerGroup),
	)

	// Create consumer group if it doesn't exist
	if err := w.ensureConsumerGroup(); err != nil {
		return fmt.Errorf("failed to ensure consumer group: %w", err)
	}

	go w.processWork()

	w.logger.Info("assistant worker started", zap.String("worker_id", w.id))
	return nil
}

// Stop stops the worker, waiting for the in-flight query to finish
func (w *Worker) Stop() error {
	w.logger.Info("stopping assistant worker", zap.String("worker_id", w.id))

	w.cancel()

	select {
	case <-w.done:
	case <-time.After(5 * time.Second):
		w.logger.Warn("timed out waiting for work loop to stop")
	}

	w.logger.Info("assistant worker stopped", zap.String("worker_id", w.id))
	return nil
}

// ensureConsumerGroup creates the consumer group if it doesn't exist
func (w *Worker) ensureConsumerGroup() error {
	err := w.redisClient.XGroupCreateMkStream(w.ctx, w.streamKey, w.consumerGroup, "0").Err()
	if err != nil {
		// BUSYGROUP means the group already exists
		if strings.HasPrefix(err.Error(), "BUSYGROUP") {
			w.logger.Debug("consumer group already exists",
				zap.String("group", w.consumerGroup),
			)
			return nil
		}
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	w.logger.Info("created consumer group",
		zap.String("group", w.consumerGroup),
		zap.String("stream", w.streamKey),
	)
	return nil
}

// processWork reads the stream one message at a time; queries are dispatched sequentially
func (w *Worker) processWork() {
	defer close(w.done)
	w.logger.Info("starting work processing loop")

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info("work processing loop stopped")
			return
		default:
			streams, err := w.redisClient.XReadGroup(w.ctx, &redis.XReadGroupArgs{
				Group:    w.consumerGroup,
				Consumer: w.id,
				Streams:  []string{w.streamKey, ">"},
				Count:    1,
				Block:    w.blockTime,
			}).Result()

			if err != nil {
				if errors.Is(err, redis.Nil) {
					continue
				}
				if w.ctx.Err() != nil {
					continue
				}
				w.logger.Error("failed to read from stream", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			for _, stream := range streams {
				for _, message := range stream.Messages {
					w.handleMessage(message)
				}
			}
		}
	}
}

// QueryRequest is the payload of a stream message's data field
type QueryRequest struct {
	ID    string `json:"id"`
	Query string `json:"query"`
}

// QueryResponse is published to the result stream for every processed request
type QueryResponse struct {
	ID        string            `json:"id"`
	WorkerID  string            `json:"worker_id"`
	Result    agent.QueryResult `json:"result"`
	Timestamp time.Time         `json:"timestamp"`
}

// handleMessage processes one message and always acknowledges it
func (w *Worker) handleMessage(message redis.XMessage) {
	messageID := message.ID
	defer w.acknowledgeMessage(messageID)

	request, err := w.parseQueryRequest(message.Values)
	if err != nil {
		MalformedMessages.Inc()
		w.logger.Error("failed to parse query request",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
		w.publishError(messageID, err)
		return
	}

	w.logger.Info("processing query request",
		zap.String("message_id", messageID),
		zap.String("request_id", request.ID),
	)

	start := time.Now()
	result := w.processor.ProcessQuery(w.ctx, request.Query)

	QueriesProcessed.WithLabelValues(result.QueryType).Inc()
	QueryDuration.WithLabelValues(result.QueryType).Observe(time.Since(start).Seconds())
	if result.Error != "" {
		QueriesFailed.WithLabelValues(result.QueryType).Inc()
	}

	if err := w.publishResult(request, result); err != nil {
		w.logger.Error("failed to publish query result",
			zap.String("message_id", messageID),
			zap.String("request_id", request.ID),
			zap.Error(err),
		)
		w.publishError(messageID, err)
	}
}

// parseQueryRequest decodes the data field. A missing id gets a generated one.
func (w *Worker) parseQueryRequest(values map[string]interface{}) (*QueryRequest, error) {
	dataStr, ok := values["data"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var request QueryRequest
	if err := json.Unmarshal([]byte(dataStr), &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal query request: %w", err)
	}

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	return &request, nil
}

// publishResult publishes the query result
func (w *Worker) publishResult(request *QueryRequest, result agent.QueryResult) error {
	data, err := json.Marshal(QueryResponse{
		ID:        request.ID,
		WorkerID:  w.id,
		Result:    result,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = w.redisClient.XAdd(context.Background(), &redis.XAddArgs{
		Stream: w.resultStream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	w.logger.Info("published query result",
		zap.String("request_id", request.ID),
		zap.String("query_type", result.QueryType),
		zap.Bool("success", result.Success),
	)

	return nil
}

// publishError publishes an error event to the result stream's .errors companion
func (w *Worker) publishError(messageID string, err error) {
	errorEvent := map[string]interface{}{
		"message_id": messageID,
		"worker_id":  w.id,
		"error":      err.Error(),
		"timestamp":  time.Now().UTC(),
	}

	data, marshalErr := json.Marshal(errorEvent)
	if marshalErr != nil {
		w.logger.Error("failed to marshal error event", zap.Error(marshalErr))
		return
	}

	_, publishErr := w.redisClient.XAdd(context.Background(), &redis.XAddArgs{
		Stream: w.resultStream + ".errors",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()

	if publishErr != nil {
		w.logger.Error("failed to publish error event", zap.Error(publishErr))
	}
}

// acknowledgeMessage acknowledges a message from the stream
func (w *Worker) acknowledgeMessage(messageID string) {
	err := w.redisClient.XAck(context.Background(), w.streamKey, w.consumerGroup, messageID).Err()
	if err != nil {
		w.logger.Error("failed to acknowledge message",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
	}
}
