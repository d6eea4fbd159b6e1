package service

import (
	"github.com/MKhiriev/cadet-sync/internal/adapter"
	"github.com/MKhiriev/cadet-sync/internal/config"
	"github.com/MKhiriev/cadet-sync/internal/logger"
	"github.com/MKhiriev/cadet-sync/internal/metrics"
	"github.com/MKhiriev/cadet-sync/internal/store"
	"github.com/MKhiriev/cadet-sync/internal/utils"
	"github.com/MKhiriev/cadet-sync/internal/validators"
)

type ClientServices struct {
	QueueService ClientQueueService
	CacheService ClientCacheService
	SyncEngine   ClientSyncEngine
	Controller   ClientController
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	monitor ConnectivityMonitor,
	recorder metrics.Recorder,
	cfg config.ClientWorkers,
	log *logger.Logger,
) *ClientServices {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	validator := validators.NewRecordValidator()
	ids := utils.NewUUIDGenerator()

	queueSvc := NewClientQueueService(storages, validator, ids, log)
	cacheSvc := NewClientCacheService(storages, serverAdapter, recorder, log)
	engine := NewClientSyncEngine(queueSvc, serverAdapter, monitor, storages, recorder, cfg.MaxAttempts, log)

	controller := NewClientController(ControllerDeps{
		Monitor:   monitor,
		Queue:     queueSvc,
		Cache:     cacheSvc,
		Engine:    engine,
		Adapter:   serverAdapter,
		Validator: validator,
		IDs:       ids,
		Metrics:   recorder,
	}, cfg, log)

	return &ClientServices{
		QueueService: queueSvc,
		CacheService: cacheSvc,
		SyncEngine:   engine,
		Controller:   controller,
	}
}
