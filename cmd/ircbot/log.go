package main

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/spirilis/ircbot"
)

// hclogLogger lets the bot log through an hclog.Logger.
type hclogLogger struct {
	logger hclog.Logger
}

var _ ircbot.Logger = hclogLogger{}

func (l hclogLogger) Debug(args ...interface{}) { l.logger.Debug(fmt.Sprint(args...)) }
func (l hclogLogger) Info(args ...interface{})  { l.logger.Info(fmt.Sprint(args...)) }
func (l hclogLogger) Warn(args ...interface{})  { l.logger.Warn(fmt.Sprint(args...)) }
func (l hclogLogger) Error(args ...interface{}) { l.logger.Error(fmt.Sprint(args...)) }
