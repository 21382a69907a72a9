package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"gridworld/internal/engine"
	"gridworld/internal/server"
	"gridworld/internal/version"
	"gridworld/pkg/atlas"
	"gridworld/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var configPath string
	var port string
	flag.StringVar(&configPath, "config", "", "Path to engine config YAML (empty for defaults)")
	flag.StringVar(&port, "port", "", "HTTP port (overrides GW_PORT)")
	flag.Parse()

	logger.Log.Info("Starting Gridworld server...")
	logger.Log.Info(version.String())

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}

	// Мир: либо авторская карта из YAML, либо встроенная
	bp := atlas.Default()
	if cfg.BlueprintPath != "" {
		bp, err = atlas.Load(cfg.BlueprintPath)
		if err != nil {
			logger.Log.Fatal("Blueprint error: ", err)
		}
		logger.Log.Infof("Loaded blueprint %q (%dx%dx%d)", bp.Name, bp.Width, bp.Height, bp.Depth)
	}

	if port == "" {
		port = os.Getenv("GW_PORT")
	}
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра
	svc, err := engine.NewService(cfg, bp)
	if err != nil {
		logger.Log.Fatal("Engine init error: ", err)
	}
	svc.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(svc, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	select {
	case <-stop:
		logger.Log.Info("Shutting down...")
		svc.Stop()
		<-svc.Done()
	case <-svc.Done():
		// Симуляция завершилась сама (команда QUIT от ведущего клиента)
		logger.Log.Info("Simulation finished.")
	}

	logger.Log.Info("Done.")
}
