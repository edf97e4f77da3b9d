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
	"github.com/ecodeclub/portfolio/internal/pkg/database"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func InitDB() *egorm.Component {
	var cfg config.DBConfig
	if err := econf.UnmarshalKey("db", &cfg); err != nil {
		panic(err)
	}
	var db *egorm.Component
	switch cfg.Driver {
	case "sqlite":
		db = initSQLite(cfg.SQLitePath)
	default:
		database.WaitForDBSetup(econf.GetString("mysql.dsn"))
		db = egorm.Load("mysql").Build()
	}
	if err := db.Use(database.NewTracingPlugin()); err != nil {
		panic(err)
	}
	return db
}

// initSQLite 本地运行使用，不依赖 MySQL
func initSQLite(path string) *egorm.Component {
	if path == "" {
		path = "portfolio.db"
	}
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: "sqlite",
		DSN:        path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}
	return db
}
