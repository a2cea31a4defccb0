package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/poseform/coach/internal/analyzer"
	"github.com/poseform/coach/internal/config"
	"github.com/poseform/coach/internal/influx"
	"github.com/poseform/coach/internal/llm"
	"github.com/poseform/coach/internal/logging"
	"github.com/poseform/coach/internal/mockpose"
	"github.com/poseform/coach/internal/model/convert"
	"github.com/poseform/coach/internal/monitor"
	intOtel "github.com/poseform/coach/internal/otel"
	"github.com/poseform/coach/internal/pose"
	"github.com/poseform/coach/internal/storage"
	"github.com/poseform/coach/internal/storage/factory"
	"github.com/poseform/coach/internal/validate"
	"github.com/poseform/coach/pkg/core"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

var (
	CurrentVersion string = "0.0.1"
	BuildDate      string = "unknown"

	AppName string = "posecoach"
)

var (
	SessionStartTime time.Time = time.Now()

	LogFilePath string
	LogFile     *os.File

	// SlogManager handles all slog-based logging
	SlogManager *logging.SlogManager

	// Logger is the slog logger (convenience reference)
	Logger *slog.Logger

	// OTelProvider handles OpenTelemetry
	OTelProvider *intOtel.Provider

	InfluxManager  *influx.Manager
	monitorService *monitor.Service

	feedbackStore storage.Store
	pipeline      *analyzer.Analyzer
)

func setup() {
	var err error

	SlogManager = logging.NewSlogManager()
	SlogManager.Setup(nil, "info", nil)
	Logger = SlogManager.Logger()

	err = config.Load(".")
	if err != nil {
		Logger.Warn("Failed to load config, using defaults!", "error", err)
	} else {
		Logger.Info("Loaded config")
	}

	logsDir := viper.GetString("logsDir")
	if _, err := os.Stat(logsDir); os.IsNotExist(err) {
		os.Mkdir(logsDir, 0755)
	}

	LogFilePath = filepath.Join(logsDir, fmt.Sprintf(
		"%s.%s.log", AppName, SessionStartTime.Format("20060102_150405"),
	))
	LogFile, err = os.OpenFile(LogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		Logger.Error("Failed to create/open log file!", "error", err, "path", LogFilePath)
	}

	// Initialize OTel provider if enabled (after log file is created)
	if viper.GetBool("otel.enabled") {
		OTelProvider, err = intOtel.New(intOtel.Config{
			Enabled:      true,
			ServiceName:  AppName,
			BatchTimeout: 5 * time.Second,
			LogWriter:    LogFile,
			Endpoint:     viper.GetString("otel.endpoint"),
			Insecure:     viper.GetBool("otel.insecure"),
		})
		if err != nil {
			Logger.Error("Failed to initialize OTel provider", "error", err)
		} else {
			Logger.Info("OTel provider initialized", "file", LogFilePath)
		}
	}

	// Re-setup logging with file output, optional Graylog fanout and OTel
	var logSink io.Writer = LogFile
	if viper.GetBool("graylog.enabled") {
		graylogWriter, err := logging.NewGraylogWriter(viper.GetString("graylog.address"))
		if err != nil {
			Logger.Error("Failed to connect to Graylog", "error", err)
		} else {
			logSink = io.MultiWriter(LogFile, graylogWriter)
		}
	}
	var otelLogProvider *sdklog.LoggerProvider
	if OTelProvider != nil {
		otelLogProvider = OTelProvider.LoggerProvider()
	}
	SlogManager.Setup(logSink, viper.GetString("logLevel"), otelLogProvider)
	Logger = SlogManager.Logger()
	Logger.Info("Logging to file", "path", LogFilePath)

	// InfluxDB metrics are optional; the manager falls back to a gzip
	// backup file when the server is unreachable.
	if viper.GetBool("influx.enabled") {
		zl := zerolog.New(LogFile).With().Timestamp().Logger()
		InfluxManager = influx.NewManager(zl, filepath.Join(logsDir, "influx_backup.gz"))
		if err := InfluxManager.Connect(); err != nil {
			Logger.Warn("InfluxDB disabled", "error", err)
			InfluxManager = nil
		}
	}

	monitorService = monitor.NewService(monitor.Dependencies{
		LogManager: SlogManager,
		Influx:     InfluxManager,
		StatusDir:  logsDir,
	})
	if err := monitorService.Start(); err != nil {
		Logger.Error("Failed to start status monitor", "error", err)
	}

	feedbackStore, err = factory.NewStore(config.Storage(), SlogManager)
	if err != nil {
		panic(fmt.Errorf("failed to create feedback store: %w", err))
	}
	if err := feedbackStore.Init(); err != nil {
		panic(fmt.Errorf("failed to initialize feedback store: %w", err))
	}

	completer := llm.New(
		viper.GetString("llm.endpoint"),
		viper.GetString("llm.apiKey"),
		viper.GetString("llm.model"),
		time.Duration(viper.GetInt("llm.timeoutSeconds"))*time.Second,
	)

	pipeline = analyzer.New(analyzer.Dependencies{
		Store:     feedbackStore,
		Completer: completer,
		Validator: validate.New(completer, Logger, viper.GetInt("validation.maxWords")),
		Monitor:   monitorService,
		Logger:    Logger,
		Model:     viper.GetString("llm.model"),
	})
}

func teardown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	monitorService.Stop()
	if err := feedbackStore.Close(); err != nil {
		Logger.Error("Error closing feedback store", "error", err)
	}
	SlogManager.Flush(ctx)
	if OTelProvider != nil {
		OTelProvider.Shutdown(ctx)
	}
	if LogFile != nil {
		LogFile.Close()
	}
}

func main() {
	setup()
	defer teardown()

	Logger.Info("Starting up...", "version", CurrentVersion, "buildDate", BuildDate)

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Println("Usage: posecoach analyze <reference.json> <practice.json> | demo | get <id>")
		return
	}

	var err error
	switch strings.ToLower(args[0]) {
	case "analyze":
		if len(args) < 3 {
			fmt.Println("analyze requires a reference file and a practice file.")
			return
		}
		err = runAnalyze(args[1], args[2])
	case "demo":
		err = runDemo()
	case "get":
		if len(args) < 2 {
			fmt.Println("No feedback IDs provided.")
			return
		}
		err = runGet(args[1:])
	default:
		fmt.Println("Unknown command: ", args[0])
	}
	if err != nil {
		panic(err)
	}
}

// loadFrame reads a snapshot JSON file and derives its angle sequence.
// The frame ID is the file name without extension.
func loadFrame(path string, sequence int) (core.Frame, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return core.Frame{}, fmt.Errorf("error reading snapshot file: %w", err)
	}
	snap, err := convert.SnapshotFromJSON(raw)
	if err != nil {
		return core.Frame{}, fmt.Errorf("error parsing %s: %w", path, err)
	}

	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return pose.NewFrame(id, snap, sequence), nil
}

func runAnalyze(referencePath, practicePath string) (err error) {
	reference, err := loadFrame(referencePath, 0)
	if err != nil {
		return err
	}
	practice, err := loadFrame(practicePath, 0)
	if err != nil {
		return err
	}

	txStart := time.Now()
	id, err := pipeline.Analyze(context.Background(), reference, practice)
	if err != nil {
		return err
	}
	fmt.Println("Analysis finished in ", time.Since(txStart))

	feedback, accuracy, err := pipeline.GetFeedback(id)
	if err != nil {
		return err
	}
	fmt.Println("Feedback ID: ", id)
	fmt.Printf("Accuracy: %.2f\n", accuracy)
	fmt.Println("")
	fmt.Println(feedback)
	return nil
}

func runDemo() (err error) {
	reference := pose.NewFrame("demo-reference", mockpose.ReferencePose(), 0)
	practices := mockpose.PracticeSequence(3, SessionStartTime.UnixNano())

	for _, practice := range practices {
		id, err := pipeline.Analyze(context.Background(), reference, practice)
		if err != nil {
			return fmt.Errorf("demo analysis %s failed: %w", practice.ID, err)
		}

		_, accuracy, err := pipeline.GetFeedback(id)
		if err != nil {
			return err
		}
		fmt.Printf("%s -> %s (accuracy %.2f)\n", practice.ID, id, accuracy)
	}
	return nil
}

func runGet(ids []string) (err error) {
	for _, id := range ids {
		feedback, accuracy, err := pipeline.GetFeedback(id)
		if err != nil {
			return fmt.Errorf("error getting feedback %s: %w", id, err)
		}
		fmt.Println("Feedback ID: ", id)
		fmt.Printf("Accuracy: %.2f\n", accuracy)
		fmt.Println("")
		fmt.Println(feedback)
		fmt.Println("----------------------------------------")
	}
	return nil
}
