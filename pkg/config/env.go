// Copyright 2025 walteh LLC
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
package config

import (
	"github.com/kelseyhightower/envconfig"
	"gitlab.com/tozd/go/errors"
)

// 🌍 Env holds the REBIND_* environment overrides
type Env struct {
	// Config files, comma separated (REBIND_CONFIG)
	Config []string `envconfig:"CONFIG"`
	// Debug enables debug logging (REBIND_DEBUG)
	Debug bool `envconfig:"DEBUG"`
	// Cwd resolves relative document names (REBIND_CWD)
	Cwd string `envconfig:"CWD"`
}

// LoadEnv reads the REBIND_* variables
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("rebind", &env); err != nil {
		return nil, errors.Errorf("reading environment: %w", err)
	}
	return &env, nil
}
