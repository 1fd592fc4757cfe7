/* cefsim - Cefore scenario builder for ns-3/DCE
 *
 * Copyright (C) 2026 The cefsim authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

var shouldPrintTraceLogs = false
var logLevel = log.InfoLevel

// InitializeLogger directs log output to w and sets the level from a level name.
// Unknown names fall back to INFO.
func InitializeLogger(w io.Writer, levelString string) {
	log.SetHandler(text.New(w))

	shouldPrintTraceLogs = false
	level, err := log.ParseLevel(strings.ToLower(levelString))
	switch {
	case err == nil:
		logLevel = level
	case strings.EqualFold(levelString, "TRACE"):
		// Apex has no TRACE level, so trace messages are DEBUG messages gated by a flag
		logLevel = log.DebugLevel
		shouldPrintTraceLogs = true
	default:
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)
}

func generateLogMessage(module interface{}, components ...interface{}) string {
	var message strings.Builder
	message.WriteString(fmt.Sprintf("[%v] ", module))
	for _, component := range components {
		switch v := component.(type) {
		case string:
			message.WriteString(v)
		case int:
			message.WriteString(strconv.Itoa(v))
		case int64:
			message.WriteString(strconv.FormatInt(v, 10))
		case uint64:
			message.WriteString(strconv.FormatUint(v, 10))
		case float64:
			message.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		case bool:
			message.WriteString(strconv.FormatBool(v))
		case error:
			message.WriteString(v.Error())
		case fmt.Stringer:
			message.WriteString(v.String())
		default:
			message.WriteString(fmt.Sprintf("%v", component))
		}
	}
	return message.String()
}

// LogFatal logs a message at the FATAL level and exits the program.
func LogFatal(module interface{}, components ...interface{}) {
	log.Fatal(generateLogMessage(module, components...))
}

// LogError logs a message at the ERROR level.
func LogError(module interface{}, components ...interface{}) {
	if logLevel <= log.ErrorLevel {
		log.Error(generateLogMessage(module, components...))
	}
}

// LogWarn logs a message at the WARN level.
func LogWarn(module interface{}, components ...interface{}) {
	if logLevel <= log.WarnLevel {
		log.Warn(generateLogMessage(module, components...))
	}
}

// LogInfo logs a message at the INFO level.
func LogInfo(module interface{}, components ...interface{}) {
	if logLevel <= log.InfoLevel {
		log.Info(generateLogMessage(module, components...))
	}
}

// LogDebug logs a message at the DEBUG level.
func LogDebug(module interface{}, components ...interface{}) {
	if logLevel <= log.DebugLevel {
		log.Debug(generateLogMessage(module, components...))
	}
}

// LogTrace logs a message at the TRACE level (really just additional DEBUG messages).
func LogTrace(module interface{}, components ...interface{}) {
	if shouldPrintTraceLogs {
		log.Debug(generateLogMessage(module, components...))
	}
}
