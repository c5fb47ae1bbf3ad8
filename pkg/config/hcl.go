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
	"context"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return hasExt(filename, ".hcl")
}

type hclConfig struct {
	Adapters []struct {
		Name       string   `hcl:"name,label"`
		Scheme     string   `hcl:"scheme"`
		TransferTo []string `hcl:"transfer_to,optional"`
		RawPaths   bool     `hcl:"raw_paths,optional"`
	} `hcl:"adapter,block"`
	Aliases   map[string]string `hcl:"aliases,optional"`
	Workspace *struct {
		Cwd       string `hcl:"cwd,optional"`
		Documents []struct {
			Name    string   `hcl:"name,label"`
			Kind    string   `hcl:"kind,optional"`
			Loaded  bool     `hcl:"loaded,optional"`
			Dirty   bool     `hcl:"dirty,optional"`
			Listed  bool     `hcl:"listed,optional"`
			Lines   []string `hcl:"lines,optional"`
			Windows int      `hcl:"windows,optional"`
		} `hcl:"document,block"`
	} `hcl:"workspace,block"`
}

// 📝 Parse parses the config from HCL. The environment is available as env.NAME.
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(),
		},
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{Aliases: hclCfg.Aliases}
	for _, a := range hclCfg.Adapters {
		cfg.Adapters = append(cfg.Adapters, AdapterConfig{
			Name:       a.Name,
			Scheme:     a.Scheme,
			TransferTo: a.TransferTo,
			RawPaths:   a.RawPaths,
		})
	}

	if hclCfg.Workspace != nil {
		cfg.Workspace = &Workspace{Cwd: hclCfg.Workspace.Cwd}
		for _, d := range hclCfg.Workspace.Documents {
			cfg.Workspace.Documents = append(cfg.Workspace.Documents, DocumentConfig{
				Name:    d.Name,
				Kind:    d.Kind,
				Loaded:  d.Loaded,
				Dirty:   d.Dirty,
				Listed:  d.Listed,
				Lines:   d.Lines,
				Windows: d.Windows,
			})
		}
	}

	return cfg, nil
}

func envObject() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !utf8.ValidString(k) || !utf8.ValidString(v) {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return cty.ObjectVal(vars)
}
