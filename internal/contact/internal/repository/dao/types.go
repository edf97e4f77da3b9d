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

package dao

import "github.com/ego-component/egorm"

type ContactSubmission struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Ref     string `gorm:"type:char(26);uniqueIndex:unq_ref;comment:ULID"`
	Name    string `gorm:"type:varchar(256);not null"`
	Email   string `gorm:"type:varchar(256);not null"`
	Subject string `gorm:"type:varchar(512)"`
	Message string `gorm:"type:text;not null"`
	Status  string `gorm:"type:varchar(16);not null;index:idx_status;comment:unread, read, archived"`
	Ctime   int64
	Utime   int64
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&ContactSubmission{})
}
