package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/poseform/coach/internal/influx"
	"github.com/poseform/coach/internal/logging"
	"github.com/poseform/coach/pkg/core"
)

// Dependencies holds all dependencies for the monitor service
type Dependencies struct {
	LogManager *logging.SlogManager
	Influx     *influx.Manager
	StatusDir  string
}

// Counters is the snapshot written to the status file.
type Counters struct {
	Time               time.Time `json:"time"`
	AnalysesCompleted  uint64    `json:"analysesCompleted"`
	AnalysesFailed     uint64    `json:"analysesFailed"`
	ValidationWarnings uint64    `json:"validationWarnings"`
	LastAccuracy       float64   `json:"lastAccuracy"`
	LastAnalysisID     string    `json:"lastAnalysisID"`
}

// Service tracks analysis activity and periodically publishes status
type Service struct {
	deps      Dependencies
	counters  Counters
	isRunning bool
	mu        sync.RWMutex
	stopChan  chan struct{}
}

// NewService creates a new monitor service
func NewService(deps Dependencies) *Service {
	return &Service{
		deps:     deps,
		stopChan: make(chan struct{}),
	}
}

// IsRunning returns whether the status monitor is running
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// RecordAnalysis records a completed analysis and forwards its metrics
// to InfluxDB when a manager is configured.
func (s *Service) RecordAnalysis(ctx context.Context, analysisID string, cmp core.Comparison) {
	s.mu.Lock()
	s.counters.AnalysesCompleted++
	s.counters.LastAccuracy = cmp.Accuracy
	s.counters.LastAnalysisID = analysisID
	s.mu.Unlock()

	if s.deps.Influx != nil {
		bucket, point := influx.AnalysisPoint(analysisID, cmp)
		if err := s.deps.Influx.WritePoint(ctx, bucket, point); err != nil {
			s.deps.LogManager.WriteLog("monitor:RecordAnalysis",
				fmt.Sprintf("Error writing analysis point: %s", err), "WARN")
		}
	}
}

// RecordFailure records an analysis that did not produce stored feedback.
func (s *Service) RecordFailure() {
	s.mu.Lock()
	s.counters.AnalysesFailed++
	s.mu.Unlock()
}

// RecordWarning records a soft validation warning.
func (s *Service) RecordWarning(ctx context.Context, analysisID, check, detail string) {
	s.mu.Lock()
	s.counters.ValidationWarnings++
	s.mu.Unlock()

	if s.deps.Influx != nil {
		bucket, point := influx.WarningPoint(analysisID, check, detail)
		if err := s.deps.Influx.WritePoint(ctx, bucket, point); err != nil {
			s.deps.LogManager.WriteLog("monitor:RecordWarning",
				fmt.Sprintf("Error writing warning point: %s", err), "WARN")
		}
	}
}

// RecordCompletion forwards LLM round trip metrics to InfluxDB.
func (s *Service) RecordCompletion(ctx context.Context, analysisID, model string, latency time.Duration, promptChars, responseWords int) {
	if s.deps.Influx == nil {
		return
	}
	bucket, point := influx.LLMPoint(analysisID, model, latency, promptChars, responseWords)
	if err := s.deps.Influx.WritePoint(ctx, bucket, point); err != nil {
		s.deps.LogManager.WriteLog("monitor:RecordCompletion",
			fmt.Sprintf("Error writing completion point: %s", err), "WARN")
	}
}

// Snapshot returns a copy of the current counters.
func (s *Service) Snapshot() Counters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := s.counters
	c.Time = time.Now()
	return c
}

// Start starts the status monitor goroutine
func (s *Service) Start() error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			s.isRunning = false
			s.mu.Unlock()
		}()

		logger := s.deps.LogManager.Logger()
		logger.Debug("Starting status monitor goroutine", "function", "startStatusMonitor")

		statusFile, err := os.Create(s.deps.StatusDir + "/status.json")
		if err != nil {
			logger.Error("Error creating status file", "error", err)
		}
		defer statusFile.Close()

		for {
			select {
			case <-s.stopChan:
				return
			default:
				time.Sleep(1000 * time.Millisecond)

				snap := s.Snapshot()
				data, err := json.MarshalIndent(snap, "", "  ")
				if err != nil {
					data = []byte(fmt.Sprintf(`{"error": "%s"}`, err))
				}

				if statusFile != nil {
					statusFile.Truncate(0)
					statusFile.Seek(0, 0)
					statusFile.Write(append(data, '\n'))
				}
			}
		}
	}()

	return nil
}

// Stop stops the status monitor
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		close(s.stopChan)
	}
}
