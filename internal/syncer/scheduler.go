package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-engine/internal/config"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
)

// DailySyncSchedulerConfig representa a configuração do agendador da
// sincronização diária.
type DailySyncSchedulerConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	SyncEnabled         bool
}

// DailySyncScheduler agenda a execução noturna da sincronização diária de
// métricas para todos os níveis de entidade.
type DailySyncScheduler struct {
	scheduler           *gocron.Scheduler
	config              DailySyncSchedulerConfig
	syncService         *DailySyncService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailySyncScheduler(
	syncService *DailySyncService,
	appConfig *config.Config,
) *DailySyncScheduler {
	schedulerConfig := DailySyncSchedulerConfig{
		CronSchedule:        appConfig.DailySync.CronSchedule,
		LookbackDays:        appConfig.DailySync.LookbackDays,
		RequestDelaySeconds: appConfig.DailySync.RequestDelaySeconds,
		SyncEnabled:         appConfig.DailySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         schedulerConfig.CronSchedule,
		"lookback_days":         schedulerConfig.LookbackDays,
		"request_delay_seconds": schedulerConfig.RequestDelaySeconds,
		"sync_enabled":          schedulerConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização diária carregada")

	return &DailySyncScheduler{
		scheduler:   scheduler,
		config:      schedulerConfig,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DailySyncScheduler) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização diária desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização diária")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllLevels(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização diária: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização diária")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllLevels sincroniza os dias da janela de lookback para todos os níveis
func (s *DailySyncScheduler) syncAllLevels(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização diária já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	dates := s.getDatesToProcess()
	levels := []domain.EntityLevel{domain.LevelAccount, domain.LevelCampaign, domain.LevelAd}

	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para sincronização diária de métricas")

	for _, level := range levels {
		for _, date := range dates {
			if _, err := s.syncService.SyncDay(ctx, date, level); err != nil {
				logrus.WithFields(logrus.Fields{
					"date":  date.Format(time.DateOnly),
					"level": level,
					"error": err.Error(),
				}).Error("Erro na sincronização diária agendada")
			}

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"days":     s.config.LookbackDays,
	}).Info("Sincronização diária agendada concluída")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// getDatesToProcess cria um conjunto de datas para processar
func (s *DailySyncScheduler) getDatesToProcess() []time.Time {
	lookback := s.config.LookbackDays
	if lookback < 1 {
		lookback = 1
	}

	dates := make([]time.Time, lookback)
	for i := 0; i < lookback; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1) // Começar de ontem e ir para trás
	}
	return dates
}

// TriggerManualSync inicia manualmente uma sincronização diária. A execução
// não fica atrelada ao contexto da requisição que a disparou.
func (s *DailySyncScheduler) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização diária já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização diária manual")
	go s.syncAllLevels(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DailySyncScheduler) GetStatus() map[string]any {
	s.syncMutex.Lock()
	lastStarted := s.lastSyncStartedAt
	lastCompleted := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   lastStarted,
		"last_sync_completed_at": lastCompleted,
	}
}
