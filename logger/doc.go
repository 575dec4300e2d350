// Package logger provides structured logging for openaikit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The zero value of the
// library is silent: code that is not handed a logger uses Nop.
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "openai").WithComponent("cli")
//	log.Info("request sent", logger.Fields("operation", "createCompletion"))
package logger
