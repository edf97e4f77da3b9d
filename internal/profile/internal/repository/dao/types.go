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

import "github.com/ecodeclub/ekit/sqlx"

// Meta 是所有排序记录共有的字段
// 索引使用 composite 命名，内嵌到不同的表里面不会重名
type Meta struct {
	Id           int64 `gorm:"primaryKey,autoIncrement"`
	Uid          int64 `gorm:"not null;index:,composite:uid_order,priority:1;comment:owner ID"`
	DisplayOrder int   `gorm:"not null;default:0;index:,composite:uid_order,priority:2;comment:展示顺序"`
	Ctime        int64
	Utime        int64
}

func (m *Meta) meta() *Meta {
	return m
}

type PersonalInfo struct {
	Id                 int64  `gorm:"primaryKey,autoIncrement"`
	Uid                int64  `gorm:"not null;uniqueIndex:unq_uid;comment:owner ID"`
	FullName           string `gorm:"type:varchar(256)"`
	Title              string `gorm:"type:varchar(256)"`
	Email              string `gorm:"type:varchar(256);not null"`
	Phone              string `gorm:"type:varchar(64)"`
	Location           string `gorm:"type:varchar(256)"`
	Bio                string `gorm:"type:text"`
	WebsiteURL         string `gorm:"column:website_url;type:varchar(512)"`
	LinkedinURL        string `gorm:"column:linkedin_url;type:varchar(512)"`
	GithubURL          string `gorm:"column:github_url;type:varchar(512)"`
	AvatarURL          string `gorm:"column:avatar_url;type:varchar(512)"`
	PDFDownloadURL     string `gorm:"column:pdf_download_url;type:varchar(512);comment:预先上传的 PDF"`
	ClientSatisfaction string `gorm:"type:varchar(64)"`
	AvgResponseTime    string `gorm:"type:varchar(64)"`
	StartingRate       string `gorm:"type:varchar(64)"`
	Ctime              int64
	Utime              int64
}

func (PersonalInfo) TableName() string {
	return "personal_info"
}

type Experience struct {
	Meta
	Title        string                    `gorm:"type:varchar(256)"`
	Company      string                    `gorm:"type:varchar(256)"`
	Location     string                    `gorm:"type:varchar(256)"`
	StartTime    int64                     `gorm:"comment:开始时间，毫秒"`
	EndTime      int64                     `gorm:"comment:结束时间，0 代表没有"`
	IsCurrent    bool                      `gorm:"not null;default:false"`
	Description  string                    `gorm:"type:text"`
	Achievements sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Technologies sqlx.JsonColumn[[]string] `gorm:"type:text"`
}

func (Experience) TableName() string {
	return "experiences"
}

type Education struct {
	Meta
	Degree       string `gorm:"type:varchar(256)"`
	School       string `gorm:"type:varchar(256)"`
	Location     string `gorm:"type:varchar(256)"`
	StartTime    int64  `gorm:"not null"`
	EndTime      int64
	IsCurrent    bool                      `gorm:"not null;default:false"`
	GPA          string                    `gorm:"column:gpa;type:varchar(32)"`
	Description  string                    `gorm:"type:text"`
	Achievements sqlx.JsonColumn[[]string] `gorm:"type:text"`
}

func (Education) TableName() string {
	return "education"
}

type Skill struct {
	Meta
	Name     string `gorm:"type:varchar(128)"`
	Category string `gorm:"type:varchar(128)"`
	Level    int    `gorm:"not null;comment:1-10"`
}

func (Skill) TableName() string {
	return "skills"
}

type Project struct {
	Meta
	Title           string                    `gorm:"type:varchar(256)"`
	Description     string                    `gorm:"type:text"`
	LongDescription string                    `gorm:"type:text"`
	Technologies    sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Highlights      sqlx.JsonColumn[[]string] `gorm:"type:text"`
	ImageURL        string                    `gorm:"column:image_url;type:varchar(512)"`
	URL             string                    `gorm:"column:url;type:varchar(512);comment:演示地址"`
	GithubURL       string                    `gorm:"column:github_url;type:varchar(512)"`
	IsFeatured      bool                      `gorm:"not null;default:false"`
	StartTime       int64
	EndTime         int64
}

func (Project) TableName() string {
	return "projects"
}

type Service struct {
	Meta
	Title        string                    `gorm:"type:varchar(256)"`
	Description  string                    `gorm:"type:text"`
	Deliverables sqlx.JsonColumn[[]string] `gorm:"type:text"`
	Icon         string                    `gorm:"type:varchar(64)"`
}

func (Service) TableName() string {
	return "services"
}

type Testimonial struct {
	Meta
	Name      string `gorm:"type:varchar(128)"`
	Role      string `gorm:"type:varchar(128)"`
	Company   string `gorm:"type:varchar(128)"`
	Content   string `gorm:"type:text"`
	AvatarURL string `gorm:"column:avatar_url;type:varchar(512)"`
	Rating    int    `gorm:"not null;comment:1-5"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
