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

package config

import "time"

// DBConfig db.*，driver 为 sqlite 的时候不需要 MySQL
type DBConfig struct {
	Driver string `yaml:"driver"`
	// SQLitePath 数据库文件的路径
	SQLitePath string `yaml:"sqlitePath"`
}

// SessionConfig 管理员登录态
type SessionConfig struct {
	SessionEncryptedKey string        `yaml:"sessionEncryptedKey"`
	Expiration          time.Duration `yaml:"expiration"`
	Cookie              struct {
		Name   string `yaml:"name"`
		Domain string `yaml:"domain"`
		Secure bool   `yaml:"secure"`
	} `yaml:"cookie"`
}

// ExportConfig export.*
type ExportConfig struct {
	Paper     string `yaml:"paper"`
	Landscape bool   `yaml:"landscape"`
	// Margins normal 或者 none
	Margins string `yaml:"margins"`
}

// PDFConfig pdf.*，remoteURL 为空的时候只能使用 PDF 下载地址
type PDFConfig struct {
	RemoteURL string        `yaml:"remoteURL"`
	Timeout   time.Duration `yaml:"timeout"`
}

type ViewStateConfig struct {
	CookieMaxAge int  `yaml:"cookieMaxAge"`
	Secure       bool `yaml:"secure"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}
