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

type Experience struct {
	Id       int64
	Uid      int64
	Title    string
	Company  string
	Location string
	Start    time.Time
	// 零值代表没有结束时间
	End          time.Time
	IsCurrent    bool
	Description  string
	Achievements []string
	Technologies []string
	DisplayOrder int
	Ctime        time.Time
	Utime        time.Time
}

func (e Experience) Owner() int64 {
	return e.Uid
}

func (e Experience) Validate() error {
	if err := required("title", e.Title, "company", e.Company); err != nil {
		return err
	}
	if e.Start.IsZero() {
		return invalid("start date is required")
	}
	return nil
}

// EndDate 返回实际的结束时间，在职的时候忽略存储的结束时间
func (e Experience) EndDate() (time.Time, bool) {
	if e.IsCurrent || e.End.IsZero() {
		return time.Time{}, false
	}
	return e.End, true
}
