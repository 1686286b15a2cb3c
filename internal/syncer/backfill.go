package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-engine/infrastructure/repository"
	"github.com/vfg2006/ads-insights-engine/internal/config"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
	"github.com/vfg2006/ads-insights-engine/pkg/metrics"
	"github.com/vfg2006/ads-insights-engine/pkg/utils"
)

// PeriodAggregator materializa agregados semanais e mensais para um intervalo
// de datas já sincronizado.
type PeriodAggregator interface {
	AggregatePeriodsInRange(ctx context.Context, startDate, endDate time.Time, level domain.EntityLevel) error
}

// BackfillRequest descreve uma solicitação de reprocessamento histórico.
type BackfillRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Level     domain.EntityLevel
	// Force regrava dias que já possuem métricas persistidas.
	Force bool
	// DelaySeconds substitui o intervalo padrão entre dias quando maior que zero.
	DelaySeconds int
}

// BackfillOrchestrator percorre um intervalo histórico dia a dia, delegando
// cada dia ao serviço de sincronização diária. Apenas um backfill roda por
// vez; o progresso fica disponível para consulta durante a execução.
type BackfillOrchestrator struct {
	syncService *DailySyncService
	dailyRepo   repository.DailyMetricRepository
	attemptRepo repository.SyncAttemptRepository
	aggregator  PeriodAggregator
	appConfig   *config.Config

	mu       sync.Mutex
	running  bool
	progress domain.BackfillProgress
}

func NewBackfillOrchestrator(
	syncService *DailySyncService,
	dailyRepo repository.DailyMetricRepository,
	attemptRepo repository.SyncAttemptRepository,
	aggregator PeriodAggregator,
	appConfig *config.Config,
) *BackfillOrchestrator {
	return &BackfillOrchestrator{
		syncService: syncService,
		dailyRepo:   dailyRepo,
		attemptRepo: attemptRepo,
		aggregator:  aggregator,
		appConfig:   appConfig,
		progress: domain.BackfillProgress{
			Status: domain.BackfillStatusNotStarted,
		},
	}
}

var (
	ErrBackfillAlreadyRunning = fmt.Errorf("backfill já em andamento")
	ErrBackfillRangeInvalid   = fmt.Errorf("intervalo de backfill inválido")
)

// Start valida a solicitação e dispara o backfill em uma goroutine própria.
// Retorna erro imediatamente se já houver um backfill em andamento ou se o
// intervalo for inválido.
func (o *BackfillOrchestrator) Start(ctx context.Context, req BackfillRequest) error {
	if !domain.ValidLevel(req.Level) {
		return fmt.Errorf("%w: nível de entidade desconhecido: %s", ErrBackfillRangeInvalid, req.Level)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: data final anterior à data inicial", ErrBackfillRangeInvalid)
	}

	totalDays := utils.DaysBetween(req.StartDate, req.EndDate)
	if maxDays := o.appConfig.Backfill.MaxRangeDays; maxDays > 0 && totalDays > maxDays {
		return fmt.Errorf("%w: intervalo de %d dias excede o limite de %d dias por solicitação", ErrBackfillRangeInvalid, totalDays, maxDays)
	}

	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return ErrBackfillAlreadyRunning
	}
	o.running = true
	now := time.Now().UTC()
	o.progress = domain.BackfillProgress{
		Status:    domain.BackfillStatusRunning,
		TotalDays: totalDays,
		StartedAt: &now,
	}
	o.mu.Unlock()

	go o.run(ctx, req, totalDays)

	return nil
}

func (o *BackfillOrchestrator) run(ctx context.Context, req BackfillRequest, totalDays int) {
	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	logrus.WithFields(logrus.Fields{
		"start_date": req.StartDate.Format(time.DateOnly),
		"end_date":   req.EndDate.Format(time.DateOnly),
		"level":      req.Level,
		"total_days": totalDays,
		"force":      req.Force,
	}).Info("Iniciando backfill histórico de métricas")

	attemptID, err := o.attemptRepo.Create(&domain.SyncAttempt{
		SyncType:  domain.SyncTypeBackfill,
		Level:     req.Level,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao registrar tentativa de backfill")
		o.finish(domain.BackfillStatusFailed)
		return
	}

	var dayErrors []string
	entitiesSynced := 0
	delaySeconds := o.appConfig.Backfill.DefaultDelaySeconds
	if req.DelaySeconds > 0 {
		delaySeconds = req.DelaySeconds
	}
	delay := time.Duration(delaySeconds) * time.Second

	for _, date := range utils.DateRange(req.StartDate, req.EndDate) {
		select {
		case <-ctx.Done():
			o.abort(ctx, attemptID, entitiesSynced, dayErrors)
			return
		default:
		}

		o.setCurrentDate(date)

		synced, err := o.syncSingleDay(ctx, date, req)
		if err != nil {
			// Um dia com erro não interrompe o backfill: o erro fica
			// registrado e o dia pode ser reprocessado depois.
			dayErrors = append(dayErrors, fmt.Sprintf("%s: %s", date.Format(time.DateOnly), err.Error()))
			metrics.BackfillErrorsTotal.Inc()
			o.appendError(fmt.Sprintf("%s: %s", date.Format(time.DateOnly), err.Error()))

			logrus.WithFields(logrus.Fields{
				"date":  date.Format(time.DateOnly),
				"level": req.Level,
				"error": err.Error(),
			}).Error("Erro ao sincronizar dia durante backfill")
		} else {
			entitiesSynced += synced
		}

		o.advanceDay()

		if delay > 0 {
			select {
			case <-ctx.Done():
				o.abort(ctx, attemptID, entitiesSynced, dayErrors)
				return
			case <-time.After(delay):
			}
		}
	}

	if o.aggregator != nil {
		if err := o.aggregator.AggregatePeriodsInRange(ctx, req.StartDate, req.EndDate, req.Level); err != nil {
			dayErrors = append(dayErrors, fmt.Sprintf("agregação pós-backfill: %s", err.Error()))
			logrus.WithError(err).Error("Erro ao materializar agregados após o backfill")
		}
	}

	status := domain.SyncStatusSucceeded
	backfillStatus := domain.BackfillStatusCompleted
	if len(dayErrors) > 0 {
		status = domain.SyncStatusPartial
	}

	o.finishAttempt(attemptID, status, entitiesSynced, dayErrors)
	o.finish(backfillStatus)

	logrus.WithFields(logrus.Fields{
		"start_date":      req.StartDate.Format(time.DateOnly),
		"end_date":        req.EndDate.Format(time.DateOnly),
		"level":           req.Level,
		"entities_synced": entitiesSynced,
		"days_with_error": len(dayErrors),
	}).Info("Backfill histórico concluído")
}

func (o *BackfillOrchestrator) syncSingleDay(ctx context.Context, date time.Time, req BackfillRequest) (int, error) {
	if !req.Force {
		exists, err := o.dailyRepo.ExistsForDate(date, req.Level)
		if err != nil {
			return 0, fmt.Errorf("erro ao verificar métricas existentes: %w", err)
		}
		if exists {
			logrus.WithFields(logrus.Fields{
				"date":  date.Format(time.DateOnly),
				"level": req.Level,
			}).Info("Dia já sincronizado, pulando")
			return 0, nil
		}
	}

	result, err := o.syncService.SyncDay(ctx, date, req.Level)
	if err != nil {
		return 0, err
	}

	return result.EntitiesSynced, nil
}

// Status devolve uma cópia do progresso atual, segura para leitura concorrente.
func (o *BackfillOrchestrator) Status() domain.BackfillProgress {
	o.mu.Lock()
	defer o.mu.Unlock()

	progress := o.progress
	progress.Errors = append([]string(nil), o.progress.Errors...)

	return progress
}

func (o *BackfillOrchestrator) setCurrentDate(date time.Time) {
	o.mu.Lock()
	o.progress.CurrentDate = date.Format(time.DateOnly)
	o.mu.Unlock()
}

func (o *BackfillOrchestrator) advanceDay() {
	o.mu.Lock()
	o.progress.CompletedDays++
	o.mu.Unlock()
}

func (o *BackfillOrchestrator) appendError(msg string) {
	o.mu.Lock()
	o.progress.Errors = append(o.progress.Errors, msg)
	o.mu.Unlock()
}

func (o *BackfillOrchestrator) finish(status domain.BackfillStatus) {
	o.mu.Lock()
	o.progress.Status = status
	o.mu.Unlock()
}

// abort encerra o backfill como falho após o cancelamento do contexto,
// preservando o progresso acumulado e registrando o motivo no snapshot.
func (o *BackfillOrchestrator) abort(ctx context.Context, attemptID string, entitiesSynced int, dayErrors []string) {
	msg := fmt.Sprintf("backfill cancelado: %s", ctx.Err())

	logrus.WithField("error", msg).Warn("Backfill interrompido por cancelamento de contexto")

	o.appendError(msg)
	o.finishAttempt(attemptID, domain.SyncStatusFailed, entitiesSynced, append(dayErrors, msg))
	o.finish(domain.BackfillStatusFailed)
}

func (o *BackfillOrchestrator) finishAttempt(attemptID string, status domain.SyncStatus, entitiesSynced int, errs []string) {
	if err := o.attemptRepo.Finish(attemptID, status, entitiesSynced, errs); err != nil {
		logrus.WithError(err).Error("Erro ao finalizar tentativa de backfill")
	}
}
