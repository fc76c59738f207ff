// Package logger exposes a process-wide zap logger. Init is idempotent and
// should be called once from main; L falls back to a development logger so
// tests need no setup.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

func Init(env string) {
	once.Do(func() {
		instance = build(env)
	})
}

func build(env string) *zap.Logger {
	if env == "production" {
		l, err := zap.NewProduction()
		if err == nil {
			return l
		}
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func L() *zap.Logger {
	if instance == nil {
		Init("development")
	}
	return instance
}

func Named(name string) *zap.Logger {
	return L().Named(name)
}

func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}
