// Copyright 2018 The CubeFS Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package log provides the structured logger shared by the arena, the
// server, and the memarenad entrypoint. It wraps logrus the way the rest of the
// codebase wraps its ambient dependencies: a single package-level instance,
// configured once at startup, never passed around as a parameter.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var base = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Level mirrors the four levels the wire protocol's diagnostics care about.
type Level = logrus.Level

const (
	DebugLevel = logrus.DebugLevel
	InfoLevel  = logrus.InfoLevel
	WarnLevel  = logrus.WarnLevel
	ErrorLevel = logrus.ErrorLevel
)

// Init configures the package logger's level and output. Called once from
// main before any other package logs.
func Init(level Level, out io.Writer) {
	base.SetLevel(level)
	if out != nil {
		base.SetOutput(out)
	}
}

// ParseLevel maps a config string ("debug", "info", "warn", "error") to a
// Level, defaulting to InfoLevel on anything unrecognized.
func ParseLevel(s string) Level {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return InfoLevel
	}
	return lvl
}

func WithField(key string, value interface{}) *logrus.Entry {
	return base.WithField(key, value)
}

func Debugf(format string, args ...interface{}) { base.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { base.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { base.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { base.Errorf(format, args...) }
