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

package domain

import "time"

type Project struct {
	Id          int64
	Uid         int64
	Title       string
	Description string
	// LongDescription 详情页展示
	LongDescription string
	Technologies    []string
	Highlights      []string
	ImageURL        string
	// URL 是演示地址
	URL          string
	GithubURL    string
	IsFeatured   bool
	Start        time.Time
	End          time.Time
	DisplayOrder int
	Ctime        time.Time
	Utime        time.Time
}

func (p Project) Owner() int64 {
	return p.Uid
}

func (p Project) Validate() error {
	return required("title", p.Title, "description", p.Description)
}

// Link 优先使用演示地址
func (p Project) Link() string {
	if p.URL != "" {
		return p.URL
	}
	return p.GithubURL
}

// RepoLink 优先使用仓库地址
func (p Project) RepoLink() string {
	if p.GithubURL != "" {
		return p.GithubURL
	}
	return p.URL
}
