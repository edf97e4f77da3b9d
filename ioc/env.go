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
	"errors"
	"io/fs"
	"os"

	"github.com/gotomicro/ego/core/elog"
	"github.com/joho/godotenv"
)

const (
	secretCodeEnv     = "ADMIN_SECRET_CODE"
	defaultSecretCode = "ADMIN2024"
)

// LoadEnv 读取工作目录下的 .env，已经存在的环境变量不会被覆盖
func LoadEnv(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		err := godotenv.Load(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			panic(err)
		}
	}
}

func adminSecretCode() string {
	code := os.Getenv(secretCodeEnv)
	if code == "" {
		elog.DefaultLogger.Warn("没有设置 " + secretCodeEnv + "，使用默认的访问码")
		return defaultSecretCode
	}
	return code
}
