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

type Education struct {
	Id           int64
	Uid          int64
	Degree       string
	School       string
	Location     string
	Start        time.Time
	End          time.Time
	IsCurrent    bool
	GPA          string
	Description  string
	Achievements []string
	DisplayOrder int
	Ctime        time.Time
	Utime        time.Time
}

func (e Education) Owner() int64 {
	return e.Uid
}

func (e Education) Validate() error {
	if err := required("degree", e.Degree, "school", e.School); err != nil {
		return err
	}
	if e.Start.IsZero() {
		return invalid("start date is required")
	}
	return nil
}

func (e Education) EndDate() (time.Time, bool) {
	if e.IsCurrent || e.End.IsZero() {
		return time.Time{}, false
	}
	return e.End, true
}
