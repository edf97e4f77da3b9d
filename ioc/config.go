// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"github.com/ecodeclub/portfolio/config"
	"github.com/ecodeclub/portfolio/internal/auth"
	"github.com/ecodeclub/portfolio/internal/pkg/pdf"
	"github.com/ecodeclub/portfolio/internal/viewstate"
	"github.com/gotomicro/ego/core/econf"
)

func InitAuthConfig() auth.Config {
	var cfg auth.Config
	if err := econf.UnmarshalKey("admin", &cfg); err != nil {
		panic(err)
	}
	cfg.SecretCode = adminSecretCode()
	return cfg
}

// InitOwner 站点主人就是管理员，公开页面只展示他的数据
func InitOwner(cfg auth.Config) int64 {
	return cfg.Uid
}

func InitCookieConfig() viewstate.CookieConfig {
	var cfg config.ViewStateConfig
	if err := econf.UnmarshalKey("viewState", &cfg); err != nil {
		panic(err)
	}
	if cfg.CookieMaxAge <= 0 {
		// 一年
		cfg.CookieMaxAge = 365 * 24 * 3600
	}
	return viewstate.CookieConfig{
		MaxAge: cfg.CookieMaxAge,
		Secure: cfg.Secure,
	}
}

func InitPrinter() pdf.Printer {
	var pcfg config.PDFConfig
	if err := econf.UnmarshalKey("pdf", &pcfg); err != nil {
		panic(err)
	}
	var ecfg config.ExportConfig
	if err := econf.UnmarshalKey("export", &ecfg); err != nil {
		panic(err)
	}
	margins := pdf.MarginsNormal
	if ecfg.Margins == "none" {
		margins = pdf.MarginsNone
	}
	return pdf.NewChromePrinter(pcfg.RemoteURL, pcfg.Timeout,
		pdf.Paper(ecfg.Paper),
		margins,
		pdf.WithLandscape(ecfg.Landscape))
}
