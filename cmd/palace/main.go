package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ebumping/keegans-mind-palace-sub000/internal/audio"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/config"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/logger"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/material"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/progression"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/room"
	"github.com/ebumping/keegans-mind-palace-sub000/internal/session"
)

func main() {
	configFile := flag.String("config", "data/engine.yaml", "Path to engine config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	seed := flag.Int64("seed", 0, "Walkthrough seed (default: random based on current time)")
	rooms := flag.Int("rooms", 30, "How many rooms to walk through")
	audioSource := flag.String("audio", "synth", "Audio source: silence, synth, or ws")
	wsURL := flag.String("ws-url", "ws://127.0.0.1:8787/bands", "Analyzer WebSocket URL (for -audio ws)")
	bpm := flag.Float64("bpm", 120, "Synthetic audio tempo (for -audio synth)")
	tracePath := flag.String("trace", "", "Path to session trace database (empty disables tracing)")
	realtime := flag.Bool("realtime", false, "Sleep between frames to run at wall-clock speed")
	flag.Parse()

	logCfg, err := logger.LoadConfig(*loggingConfig)
	if err != nil {
		log.Fatalf("Failed to load logging config: %v", err)
	}
	if err := logger.Initialize(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Error("Failed to load engine config", "error", err)
		os.Exit(1)
	}

	// Content defects fail here, with a diagnostic, never mid-walk.
	if err := room.ValidateRegistry(); err != nil {
		logger.Error("Room registry failed validation", "error", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logger.Info("Starting walkthrough",
		"seed", *seed,
		"rooms", *rooms,
		"registry_size", room.Count(),
		"audio", *audioSource)

	source, cleanup, err := buildSource(*audioSource, *wsURL, *bpm)
	if err != nil {
		logger.Error("Failed to set up audio source", "error", err)
		os.Exit(1)
	}
	defer cleanup()
	bus := audio.NewBus(source, cfg.Audio.Smoothing)

	selector, err := progression.NewSelector(room.Registry(), cfg.Progression.AbnormalityStep)
	if err != nil {
		logger.Error("Failed to build selector", "error", err)
		os.Exit(1)
	}

	factory := material.NewFactory(cfg.Material)
	manager := progression.NewManager(selector, factory, *seed)
	defer manager.Close()

	if *tracePath != "" {
		store, err := session.Open(*tracePath)
		if err != nil {
			logger.Error("Failed to open trace store", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		sessionID, err := store.StartSession(*seed)
		if err != nil {
			logger.Error("Failed to start trace session", "error", err)
			os.Exit(1)
		}
		logger.Info("Tracing walkthrough", "session", sessionID, "path", *tracePath)
		manager.SetRecorder(store)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	delta := 1.0 / float64(cfg.Host.FPS)
	framesPerRoom := int(cfg.Host.RoomDwellSeconds * float64(cfg.Host.FPS))
	elapsed := 0.0

walk:
	for i := 1; i <= *rooms; i++ {
		inst, err := manager.EnterRoom(i)
		if err != nil {
			logger.Error("Failed to enter room", "index", i, "error", err)
			os.Exit(1)
		}

		for f := 0; f < framesPerRoom; f++ {
			select {
			case <-sigChan:
				logger.Info("Walkthrough interrupted")
				break walk
			default:
			}

			elapsed += delta
			bus.Advance(elapsed)
			manager.Update(bus.Current(), delta)

			if *realtime {
				time.Sleep(time.Duration(delta * float64(time.Second)))
			}
		}

		fmt.Printf("room %2d  %-22s abnormality=%.2f  geometries=%d materials=%d\n",
			i, inst.Template().ID, inst.Abnormality(),
			len(inst.Geometries()), len(inst.Materials()))
	}

	logger.Info("Walkthrough complete", "rooms_visited", manager.CurrentIndex(), "sim_seconds", elapsed)
}

// buildSource wires the requested audio source. The returned cleanup is
// always safe to call.
func buildSource(kind, wsURL string, bpm float64) (audio.Source, func(), error) {
	switch kind {
	case "silence":
		return audio.SilenceSource{}, func() {}, nil
	case "synth":
		return audio.NewSynthSource(bpm), func() {}, nil
	case "ws":
		src, err := audio.DialSocketSource(wsURL)
		if err != nil {
			return nil, func() {}, err
		}
		return src, func() { src.Close() }, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown audio source %q", kind)
	}
}
