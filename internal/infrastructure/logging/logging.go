package logging

import (
	"io"
	"log"
	"os"

	"autopaint_quotation/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup points the standard logger and gin's request log at stdout and, when
// LOG_FILE is set, at a size-rotated file as well. The returned func flushes
// and closes the file.
func Setup(cfg config.LogConfig) func() error {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	out := Writer(cfg, os.Stdout)
	log.SetOutput(out)
	gin.DefaultWriter = out
	gin.DefaultErrorWriter = out

	if tw, ok := out.(teeWriter); ok {
		return tw.file.Close
	}
	return func() error { return nil }
}

// Writer returns stdout alone, or stdout tee'd into a lumberjack logger.
func Writer(cfg config.LogConfig, stdout io.Writer) io.Writer {
	if cfg.File == "" {
		return stdout
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	return teeWriter{Writer: io.MultiWriter(stdout, lj), file: lj}
}

type teeWriter struct {
	io.Writer
	file *lumberjack.Logger
}
