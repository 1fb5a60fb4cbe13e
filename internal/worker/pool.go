package worker

import (
	"context"
	"encoding/json"
	"time"

	"viewspos/internal/dto"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueReportes = "jobs:reportes"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists; the worker pool dequeues
// them via BRPOP. It implements service.CierreNotifier.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// NotificarCierre enqueues the close-report job. Best effort: a queue
// failure is logged and swallowed, a close never rolls back over reporting.
func (d *Dispatcher) NotificarCierre(ctx context.Context, rep dto.ReporteCierre) {
	if d == nil || d.rdb == nil {
		return
	}
	if err := d.enqueue(ctx, QueueReportes, "reporte_cierre", rep); err != nil {
		log.Error().Err(err).Str("fecha", rep.Fecha).Msg("no se pudo encolar reporte de cierre")
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Handlers routes a dequeued job to its processor.
type Handlers struct {
	Reporte *ReporteWorker
}

// StartWorkerPool launches numWorkers goroutines consuming the queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers *Handlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *Handlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueReportes).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, handlers, result[1])
		}
	}
}

func processJob(ctx context.Context, handlers *Handlers, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal job")
		return
	}
	switch job.Type {
	case "reporte_cierre":
		if handlers.Reporte != nil {
			handlers.Reporte.Process(ctx, job.Payload)
		}
	default:
		log.Warn().Str("type", job.Type).Msg("unknown job type")
	}
}
