package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/padmeamd/uroom/internal/bootstrap"
)

func main() {
	app, err := bootstrap.NewApp(bootstrap.LoadConfig())
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	app.Start()

	// 等待退出信号后优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutdown signal received...")
	app.Shutdown()
}
