// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging configures the process-wide slog logger for the brewbook
// binaries.
//
// Logs are JSON on stderr and always carry the binary name ("module") and
// its build version. At debug level the source location is added.
//
// Level names are case-insensitive: debug, info, warn (or warning) and
// error. Anything else, including an empty value, is info.
//
// # Usage
//
// brewbookd takes its level from the LOG_LEVEL environment variable:
//
//	logging.SetDefaultStructuredLogger("brewbookd", version)
//
// The CLI passes the value of its --log-level flag explicitly:
//
//	logging.SetDefaultStructuredLoggerWithLevel("brewbook", version, cmd.String("log-level"))
//
// http.Server.ErrorLog still takes a *log.Logger, so the server bridges it:
//
//	ErrorLog: logging.NewLogLogger(slog.LevelError, false)
//
// Code logs through the slog package functions with key/value context:
//
//	slog.Warn("dataset reload failed, keeping current catalog",
//	    "path", path,
//	    "error", err,
//	)
package logging
