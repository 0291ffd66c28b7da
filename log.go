package ircbot

import (
	"log"
)

// Logger is a simple levelled logger interface designed for use with logrus
// and other similar systems. The engine reports every diagnostic through it
// and never depends on its presence.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}

// SimpleLogger writes everything to the standard library logger with a level
// prefix.
type SimpleLogger struct{}

func (l *SimpleLogger) Debug(args ...interface{}) {
	data := append([]interface{}{"DEBUG "}, args...)
	log.Print(data...)
}

func (l *SimpleLogger) Info(args ...interface{}) {
	data := append([]interface{}{"INFO "}, args...)
	log.Print(data...)
}

func (l *SimpleLogger) Warn(args ...interface{}) {
	data := append([]interface{}{"WARN "}, args...)
	log.Print(data...)
}

func (l *SimpleLogger) Error(args ...interface{}) {
	data := append([]interface{}{"ERROR "}, args...)
	log.Print(data...)
}

// NopLogger discards everything. It is the default for a new Bot.
type NopLogger struct{}

func (NopLogger) Debug(args ...interface{}) {}
func (NopLogger) Info(args ...interface{})  {}
func (NopLogger) Warn(args ...interface{})  {}
func (NopLogger) Error(args ...interface{}) {}
