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

type PersonalInfo struct {
	Id       int64
	Uid      int64
	FullName string
	Title    string
	Email    string
	Phone    string
	Location string
	Bio      string

	WebsiteURL     string
	LinkedinURL    string
	GithubURL      string
	AvatarURL      string
	PDFDownloadURL string

	// 客户模式下展示的数据，为空的时候使用默认值
	ClientSatisfaction string
	AvgResponseTime    string
	StartingRate       string

	Ctime time.Time
	Utime time.Time
}

func (p PersonalInfo) Owner() int64 {
	return p.Uid
}

func (p PersonalInfo) Validate() error {
	return required("email", p.Email)
}
